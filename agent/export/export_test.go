package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/types"
)

func sampleRecommendation() (*types.AgentRequirements, *types.AgentRecommendations, []types.TemplateScore) {
	req := &types.AgentRequirements{
		Name:             "Insight Bot",
		Description:      "Summarises sales data",
		PrimaryOutcome:   "Generate weekly reports",
		TargetAudience:   []string{"analysts"},
		InteractionStyle: types.StyleTaskFocused,
	}
	rec := &types.AgentRecommendations{
		AgentType:            "data-analyst",
		RequiredDependencies: []string{"@anthropic-ai/claude-agent-sdk"},
		MCPServers: []types.MCPServerConfig{{
			Name:           "filesystem",
			Description:    "Reads | writes files",
			URL:            "https://example.com/fs",
			Authentication: types.AuthNone,
		}},
		SystemPrompt:        "# Insight Bot\n\nUse ```sql``` blocks.",
		ToolConfigurations:  []types.ToolConfiguration{{Name: "read_csv", Description: "Load CSV", RequiredPermissions: []string{"file:read"}}},
		EstimatedComplexity: types.ComplexityLow,
		ImplementationSteps: []string{"Set up", "Ship"},
		Notes:               "Selected data-analyst template with 100% confidence.",
	}
	scores := []types.TemplateScore{
		{TemplateID: "data-analyst", Score: 100, Reasoning: "Matched capabilities: reporting"},
		{TemplateID: "automation-agent", Score: 44.95, Reasoning: "Basic template match"},
	}
	return req, rec, scores
}

func TestMarkdown_FullDocument(t *testing.T) {
	doc := Markdown(sampleRecommendation())

	assert.True(t, strings.HasPrefix(doc, "# Insight Bot\n\nSummarises sales data\n"))
	assert.Contains(t, doc, "- **Primary outcome:** Generate weekly reports\n")
	assert.Contains(t, doc, "- **Template:** data-analyst\n")
	assert.Contains(t, doc, "- **Estimated complexity:** low\n")
	assert.Contains(t, doc, "````markdown\n# Insight Bot\n\nUse ```sql``` blocks.\n````")
	assert.Contains(t, doc, `| [filesystem](https://example.com/fs) | Reads \| writes files | none |`)
	assert.Contains(t, doc, "- `read_csv`: Load CSV (permissions: file:read)\n")
	assert.Contains(t, doc, "1. Set up\n2. Ship\n")
	assert.Contains(t, doc, "| 2 | automation-agent | 44.95 | Basic template match |")
	assert.True(t, strings.HasSuffix(doc, "## Notes\n\nSelected data-analyst template with 100% confidence.\n"))
	assert.NotContains(t, doc, "\n\n\n")
}

func TestMarkdown_OmitsEmptySections(t *testing.T) {
	doc := Markdown(nil, nil, nil)

	assert.True(t, strings.HasPrefix(doc, "# Untitled Agent\n"))
	for _, heading := range []string{"## System Prompt", "## MCP Servers", "## Tools", "## Dependencies", "## Implementation Steps", "## Template Ranking", "## Notes"} {
		assert.NotContains(t, doc, heading)
	}
}

func TestHTML(t *testing.T) {
	html, err := HTML(Markdown(sampleRecommendation()))
	require.NoError(t, err)

	assert.Contains(t, html, "<h1 id=\"insight-bot\">Insight Bot</h1>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<th>Authentication</th>")
	assert.Contains(t, html, `<code class="language-markdown">`)
	assert.Contains(t, html, "<ol>")

	raw, err := HTML("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, raw, "<script>")
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Insight Bot", "insight-bot-plan.md"},
		{"  Data/Report  Agent!! ", "data-report-agent-plan.md"},
		{"", "agent-plan.md"},
		{"エージェント", "agent-plan.md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.name))
		})
	}
}
