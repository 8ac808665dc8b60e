package classifier

import (
	"fmt"
	"math"
	"strings"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/types"
)

const mcpServersRepo = "https://github.com/modelcontextprotocol/servers"

var (
	fetchServer = types.MCPServerConfig{
		Name:           "fetch",
		Description:    "Fetches web pages and converts them to model-friendly text",
		URL:            mcpServersRepo + "/tree/main/src/fetch",
		Authentication: types.AuthNone,
	}
	filesystemServer = types.MCPServerConfig{
		Name:           "filesystem",
		Description:    "Reads and writes files inside allowed directories",
		URL:            mcpServersRepo + "/tree/main/src/filesystem",
		Authentication: types.AuthNone,
	}
	dataToolsServer = types.MCPServerConfig{
		Name:           "data-tools",
		Description:    "Query and transform tabular data sources",
		URL:            mcpServersRepo,
		Authentication: types.AuthNone,
	}
	memoryServer = types.MCPServerConfig{
		Name:           "memory",
		Description:    "Persists a knowledge graph across sessions",
		URL:            mcpServersRepo + "/tree/main/src/memory",
		Authentication: types.AuthNone,
	}
)

// recommendMCPServers checks web, file, data and memory needs in that order.
func recommendMCPServers(req *types.AgentRequirements) []types.MCPServerConfig {
	servers := make([]types.MCPServerConfig, 0, 4)
	caps := req.Capabilities

	if caps.WebAccess {
		servers = append(servers, fetchServer)
	}
	if caps.FileAccess {
		servers = append(servers, filesystemServer)
	}
	if caps.DataAnalysis {
		servers = append(servers, dataToolsServer)
	}
	if caps.Memory == types.MemoryLongTerm {
		servers = append(servers, memoryServer)
	}
	return servers
}

var styleDirectives = map[types.InteractionStyle]string{
	types.StyleConversational: "Maintain a friendly, conversational tone and ask clarifying questions when a request is ambiguous.",
	types.StyleTaskFocused:    "Stay focused on completing tasks efficiently and report results concisely.",
	types.StyleCollaborative:  "Work collaboratively with the user, proposing options and inviting feedback before committing to a direction.",
}

const defaultStyleDirective = "Adapt your communication style to the user's needs."

func customizePrompt(t *types.AgentTemplate, req *types.AgentRequirements) string {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = t.Name
	}

	header := "# " + name
	if desc := strings.TrimSpace(req.Description); desc != "" {
		header += "\n\n" + desc
	}

	sections := []string{header, t.SystemPrompt}

	if len(req.TargetAudience) > 0 {
		sections = append(sections, "## Target Audience\n"+strings.Join(req.TargetAudience, ", "))
	}

	objective := strings.TrimSpace(req.PrimaryOutcome)
	if objective == "" {
		objective = "Not specified."
	}
	sections = append(sections, "## Primary Objective\n"+objective)

	if len(req.SuccessMetrics) > 0 {
		sections = append(sections, "## Success Metrics\n"+bullets(req.SuccessMetrics))
	}
	if len(req.Constraints) > 0 {
		sections = append(sections, "## Constraints\n"+bullets(req.Constraints))
	}

	directive, ok := styleDirectives[normalizeStyle(req.InteractionStyle)]
	if !ok {
		directive = defaultStyleDirective
	}
	sections = append(sections, directive)

	return strings.Join(sections, "\n\n")
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

// ComplexityScore returns the additive complexity points for a template and
// requirements pair before bucketing.
func ComplexityScore(t *types.AgentTemplate, req *types.AgentRequirements) int {
	req = orEmpty(req)
	score := 0

	switch tools := len(t.DefaultTools); {
	case tools > 6:
		score += 2
	case tools > 3:
		score++
	}

	caps := req.Capabilities
	if caps.WebAccess {
		score++
	}
	if caps.FileAccess {
		score++
	}
	if caps.CodeExecution {
		score += 2
	}
	if caps.DataAnalysis {
		score++
	}

	switch caps.Memory {
	case types.MemoryLongTerm:
		score += 2
	case types.MemoryShortTerm:
		score++
	}

	switch n := len(caps.ToolIntegrations); {
	case n > 3:
		score += 2
	case n > 0:
		score++
	}

	if len(req.DeliveryChannels) > 2 {
		score++
	}

	if env := req.Environment; env != nil {
		if env.Runtime == types.RuntimeHybrid {
			score += 2
		}
		if len(env.ComplianceRequirements) > 0 {
			score += 2
		}
	}

	return score
}

func assessComplexity(t *types.AgentTemplate, req *types.AgentRequirements) types.Complexity {
	switch score := ComplexityScore(t, req); {
	case score <= 3:
		return types.ComplexityLow
	case score <= 7:
		return types.ComplexityMedium
	default:
		return types.ComplexityHigh
	}
}

func implementationSteps(t *types.AgentTemplate, req *types.AgentRequirements, complexity types.Complexity) []string {
	steps := []string{
		"Initialize a new project and install the Claude Agent SDK",
		"Configure API credentials through environment variables",
		"Create the agent entry point and load the system prompt",
		toolStep(t.DefaultTools),
	}

	caps := req.Capabilities
	if caps.FileAccess {
		steps = append(steps, "Configure file system permissions and sandbox the allowed directories")
	}
	if caps.WebAccess {
		steps = append(steps, "Set up web access with rate limiting and request timeouts")
	}
	if caps.DataAnalysis {
		steps = append(steps, "Wire up data processing libraries and validate input schemas")
	}
	switch caps.Memory {
	case types.MemoryLongTerm:
		steps = append(steps, "Provision persistent storage for long-term memory")
	case types.MemoryShortTerm:
		steps = append(steps, "Implement session-scoped memory for conversation context")
	}

	if integrations := caps.ToolIntegrations; len(integrations) > 0 {
		steps = append(steps, "Connect integrations: "+strings.Join(firstN(integrations, 3), ", "))
	}

	steps = append(steps,
		"Write a test suite covering the main workflows and edge cases",
		"Configure environment variables and deployment settings",
	)

	if complexity == types.ComplexityHigh {
		steps = append(steps,
			"Add error recovery with retries and graceful degradation",
			"Set up monitoring, logging and alerting",
		)
	}

	return append(steps, "Document usage, configuration and maintenance procedures")
}

func toolStep(tools []types.ToolConfiguration) string {
	if len(tools) == 0 {
		return "Implement tool handlers for the agent's custom tools"
	}
	names := make([]string, 0, 3)
	for _, tool := range tools[:min(len(tools), 3)] {
		names = append(names, tool.Name)
	}
	list := strings.Join(names, ", ")
	if len(tools) > 3 {
		list += ", ..."
	}
	return "Implement tool handlers: " + list
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}

// buildNotes summarises the selection. rest holds the remaining ranked scores.
func buildNotes(best types.TemplateScore, rest []types.TemplateScore, req *types.AgentRequirements) string {
	lines := []string{
		fmt.Sprintf("Selected %s template with %d%% confidence.", best.TemplateID, int(math.Round(best.Score))),
	}

	if len(best.MissingCapabilities) > 0 {
		lines = append(lines, fmt.Sprintf(
			"Note: the template lacks some requested capabilities (%s); add custom tools to cover them.",
			strings.Join(best.MissingCapabilities, ", ")))
	}

	var alternatives []string
	for _, s := range rest[:min(len(rest), 2)] {
		if s.Score > 50 {
			alternatives = append(alternatives, fmt.Sprintf("%s (%d%%)", s.TemplateID, int(math.Round(s.Score))))
		}
	}
	if len(alternatives) > 0 {
		lines = append(lines, "Alternative options: "+strings.Join(alternatives, ", "))
	}

	if notes := strings.TrimSpace(req.AdditionalNotes); notes != "" {
		lines = append(lines, "Additional context: "+notes)
	}

	return strings.Join(lines, "\n")
}
