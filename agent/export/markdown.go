package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/types"
)

const untitledAgent = "Untitled Agent"

// Markdown renders the planning document for a recommendation.
// req and scores may be nil; sections without content are omitted.
func Markdown(req *types.AgentRequirements, rec *types.AgentRecommendations, scores []types.TemplateScore) string {
	if req == nil {
		req = &types.AgentRequirements{}
	}
	if rec == nil {
		rec = &types.AgentRecommendations{}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title(req.Name))
	if desc := strings.TrimSpace(req.Description); desc != "" {
		b.WriteString(desc + "\n\n")
	}

	writeFields(&b, "Overview",
		"Primary outcome", req.PrimaryOutcome,
		"Target audience", strings.Join(req.TargetAudience, ", "),
		"Interaction style", string(req.InteractionStyle),
		"Delivery channels", strings.Join(req.DeliveryChannels, ", "),
	)
	writeFields(&b, "Recommendation",
		"Template", rec.AgentType,
		"Estimated complexity", string(rec.EstimatedComplexity),
	)

	if rec.SystemPrompt != "" {
		fence := fenceFor(rec.SystemPrompt)
		fmt.Fprintf(&b, "## System Prompt\n\n%smarkdown\n%s\n%s\n\n", fence, rec.SystemPrompt, fence)
	}

	if len(rec.MCPServers) > 0 {
		b.WriteString("## MCP Servers\n\n| Name | Description | Authentication |\n| --- | --- | --- |\n")
		for _, s := range rec.MCPServers {
			name := cell(s.Name)
			if s.URL != "" {
				name = fmt.Sprintf("[%s](%s)", name, s.URL)
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", name, cell(s.Description), cell(string(s.Authentication)))
		}
		b.WriteString("\n")
	}

	if len(rec.ToolConfigurations) > 0 {
		b.WriteString("## Tools\n\n")
		for _, tool := range rec.ToolConfigurations {
			line := "- `" + tool.Name + "`"
			if tool.Description != "" {
				line += ": " + tool.Description
			}
			if len(tool.RequiredPermissions) > 0 {
				line += " (permissions: " + strings.Join(tool.RequiredPermissions, ", ") + ")"
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	if len(rec.RequiredDependencies) > 0 {
		b.WriteString("## Dependencies\n\n")
		for _, dep := range rec.RequiredDependencies {
			b.WriteString("- `" + dep + "`\n")
		}
		b.WriteString("\n")
	}

	if len(rec.ImplementationSteps) > 0 {
		b.WriteString("## Implementation Steps\n\n")
		for i, step := range rec.ImplementationSteps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
		b.WriteString("\n")
	}

	if len(scores) > 0 {
		b.WriteString("## Template Ranking\n\n| Rank | Template | Score | Reasoning |\n| --- | --- | --- | --- |\n")
		for i, s := range scores {
			fmt.Fprintf(&b, "| %d | %s | %.2f | %s |\n", i+1, cell(s.TemplateID), s.Score, cell(s.Reasoning))
		}
		b.WriteString("\n")
	}

	if rec.Notes != "" {
		b.WriteString("## Notes\n\n" + rec.Notes + "\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func title(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return untitledAgent
}

// writeFields writes a bulleted label/value section, skipping blank values.
// The section is omitted when every value is blank.
func writeFields(b *strings.Builder, heading string, pairs ...string) {
	var lines []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if value := strings.TrimSpace(pairs[i+1]); value != "" {
			lines = append(lines, fmt.Sprintf("- **%s:** %s", pairs[i], value))
		}
	}
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n%s\n\n", heading, strings.Join(lines, "\n"))
}

var backtickRun = regexp.MustCompile("`+")

// fenceFor returns a code fence longer than any backtick run in content.
func fenceFor(content string) string {
	longest := 0
	for _, run := range backtickRun.FindAllString(content, -1) {
		longest = max(longest, len(run))
	}
	return strings.Repeat("`", max(3, longest+1))
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

func cell(s string) string {
	return cellEscaper.Replace(s)
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Filename returns a download name such as "insight-bot-plan.md".
func Filename(name string) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		slug = "agent"
	}
	return slug + "-plan.md"
}
