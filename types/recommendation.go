package types

// TemplateScore is the classifier's verdict for one template.
type TemplateScore struct {
	TemplateID          string   `json:"templateId" yaml:"template_id"`
	Score               float64  `json:"score" yaml:"score"` // 0-100, at most 2 decimals
	MatchedCapabilities []string `json:"matchedCapabilities" yaml:"matched_capabilities"`
	MissingCapabilities []string `json:"missingCapabilities" yaml:"missing_capabilities"`
	Reasoning           string   `json:"reasoning" yaml:"reasoning"`
}

// AuthMode is how an MCP server authenticates its caller.
type AuthMode string

const (
	AuthNone   AuthMode = "none"
	AuthAPIKey AuthMode = "api-key"
	AuthOAuth  AuthMode = "oauth"
)

// MCPServerConfig describes a recommended Model Context Protocol server.
type MCPServerConfig struct {
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description"`
	URL            string   `json:"url" yaml:"url"`
	Authentication AuthMode `json:"authentication" yaml:"authentication"`
}

// Complexity is the coarse implementation effort bucket.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// AgentRecommendations is the full output of classification.
type AgentRecommendations struct {
	AgentType            string              `json:"agentType" yaml:"agent_type"`
	RequiredDependencies []string            `json:"requiredDependencies" yaml:"required_dependencies"`
	MCPServers           []MCPServerConfig   `json:"mcpServers" yaml:"mcp_servers"`
	SystemPrompt         string              `json:"systemPrompt" yaml:"system_prompt"`
	ToolConfigurations   []ToolConfiguration `json:"toolConfigurations" yaml:"tool_configurations"`
	EstimatedComplexity  Complexity          `json:"estimatedComplexity" yaml:"estimated_complexity"`
	ImplementationSteps  []string            `json:"implementationSteps" yaml:"implementation_steps"`
	Notes                string              `json:"notes" yaml:"notes"`
}

// PartialArchetypeResult previews the likely template from an incomplete interview.
type PartialArchetypeResult struct {
	Archetype        string  `json:"archetype" yaml:"archetype"`
	ArchetypeName    string  `json:"archetypeName" yaml:"archetype_name"`
	Confidence       float64 `json:"confidence" yaml:"confidence"`              // completeness-discounted, 0-100
	RawScore         float64 `json:"rawScore" yaml:"raw_score"`                 // top score before discount
	DataCompleteness int     `json:"dataCompleteness" yaml:"data_completeness"` // percent of key fields answered
}
