package types

// =============================================================================
// Agent Requirements
// =============================================================================
// Requirements are assembled from interview answers and handed to the
// classifier. Any field may be empty; consumers must degrade gracefully.
// =============================================================================

// MemoryType describes how much context the target agent must retain.
type MemoryType string

const (
	MemoryNone      MemoryType = "none"
	MemoryShortTerm MemoryType = "short-term"
	MemoryLongTerm  MemoryType = "long-term"
)

// InteractionStyle describes how the target agent engages with its users.
type InteractionStyle string

const (
	StyleConversational InteractionStyle = "conversational"
	StyleTaskFocused    InteractionStyle = "task-focused"
	StyleCollaborative  InteractionStyle = "collaborative"
)

// Runtime is the execution environment the agent is deployed to.
type Runtime string

const (
	RuntimeCloud  Runtime = "cloud"
	RuntimeLocal  Runtime = "local"
	RuntimeHybrid Runtime = "hybrid"
)

// AgentCapabilities flags what the target agent needs to be able to do.
type AgentCapabilities struct {
	Memory           MemoryType `json:"memory" yaml:"memory"`
	FileAccess       bool       `json:"fileAccess" yaml:"file_access"`
	WebAccess        bool       `json:"webAccess" yaml:"web_access"`
	CodeExecution    bool       `json:"codeExecution" yaml:"code_execution"`
	DataAnalysis     bool       `json:"dataAnalysis" yaml:"data_analysis"`
	ToolIntegrations []string   `json:"toolIntegrations" yaml:"tool_integrations"`
}

// Environment describes where and under which rules the agent runs.
type Environment struct {
	Runtime                Runtime  `json:"runtime" yaml:"runtime"`
	DeploymentTargets      []string `json:"deploymentTargets,omitempty" yaml:"deployment_targets,omitempty"`
	ComplianceRequirements []string `json:"complianceRequirements,omitempty" yaml:"compliance_requirements,omitempty"`
}

// AgentRequirements is the complete input to classification.
type AgentRequirements struct {
	Name                  string            `json:"name" yaml:"name"`
	Description           string            `json:"description" yaml:"description"`
	PrimaryOutcome        string            `json:"primaryOutcome" yaml:"primary_outcome"`
	TargetAudience        []string          `json:"targetAudience" yaml:"target_audience"`
	InteractionStyle      InteractionStyle  `json:"interactionStyle" yaml:"interaction_style"`
	DeliveryChannels      []string          `json:"deliveryChannels" yaml:"delivery_channels"`
	SuccessMetrics        []string          `json:"successMetrics" yaml:"success_metrics"`
	Constraints           []string          `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	PreferredTechnologies []string          `json:"preferredTechnologies,omitempty" yaml:"preferred_technologies,omitempty"`
	Capabilities          AgentCapabilities `json:"capabilities" yaml:"capabilities"`
	Environment           *Environment      `json:"environment,omitempty" yaml:"environment,omitempty"`
	AdditionalNotes       string            `json:"additionalNotes,omitempty" yaml:"additional_notes,omitempty"`
}
