package interview

// Question ids as sent by the interview UI.
const (
	QAgentName              = "agentName"
	QAgentDescription       = "agentDescription"
	QPrimaryOutcome         = "primaryOutcome"
	QTargetAudience         = "targetAudience"
	QInteractionStyle       = "interactionStyle"
	QDeliveryChannels       = "deliveryChannels"
	QSuccessMetrics         = "successMetrics"
	QConstraints            = "constraints"
	QFileAccess             = "fileAccess"
	QWebAccess              = "webAccess"
	QCodeExecution          = "codeExecution"
	QDataAnalysis           = "dataAnalysis"
	QMemoryNeeds            = "memoryNeeds"
	QToolIntegrations       = "toolIntegrations"
	QRuntime                = "runtime"
	QComplianceRequirements = "complianceRequirements"
	QAdditionalNotes        = "additionalNotes"
)

// Stage groups questions for progress display.
type Stage string

const (
	StageDiscovery    Stage = "discovery"
	StageRequirements Stage = "requirements"
	StageArchitecture Stage = "architecture"
	StageOutput       Stage = "output"
)

// Kind is the answer shape a question expects.
type Kind string

const (
	KindText    Kind = "text"
	KindList    Kind = "list"
	KindChoice  Kind = "choice"
	KindBoolean Kind = "boolean"
)

// Question is one step of the guided interview.
type Question struct {
	ID       string   `json:"id" yaml:"id"`
	Stage    Stage    `json:"stage" yaml:"stage"`
	Prompt   string   `json:"prompt" yaml:"prompt"`
	Kind     Kind     `json:"kind" yaml:"kind"`
	Options  []string `json:"options,omitempty" yaml:"options,omitempty"`
	Required bool     `json:"required" yaml:"required"`
}

var yesNo = []string{"Yes", "No"}

var questions = []Question{
	{ID: QAgentName, Stage: StageDiscovery, Prompt: "What would you like to name your agent?", Kind: KindText, Required: true},
	{ID: QAgentDescription, Stage: StageDiscovery, Prompt: "Describe what the agent does in a sentence or two.", Kind: KindText, Required: true},
	{ID: QPrimaryOutcome, Stage: StageDiscovery, Prompt: "What is the primary outcome the agent should deliver?", Kind: KindText, Required: true},
	{ID: QTargetAudience, Stage: StageDiscovery, Prompt: "Who will use the agent?", Kind: KindList},
	{ID: QInteractionStyle, Stage: StageRequirements, Prompt: "How should the agent interact with its users?", Kind: KindChoice,
		Options: []string{"Conversational", "Task-focused", "Collaborative"}, Required: true},
	{ID: QDeliveryChannels, Stage: StageRequirements, Prompt: "Where will users reach the agent (CLI, web, Slack, API)?", Kind: KindList},
	{ID: QSuccessMetrics, Stage: StageRequirements, Prompt: "How will you measure success?", Kind: KindList},
	{ID: QConstraints, Stage: StageRequirements, Prompt: "Are there constraints the agent must respect?", Kind: KindList},
	{ID: QFileAccess, Stage: StageArchitecture, Prompt: "Does the agent need to read or write files?", Kind: KindBoolean, Options: yesNo, Required: true},
	{ID: QWebAccess, Stage: StageArchitecture, Prompt: "Does the agent need to access the web?", Kind: KindBoolean, Options: yesNo, Required: true},
	{ID: QCodeExecution, Stage: StageArchitecture, Prompt: "Does the agent need to execute code?", Kind: KindBoolean, Options: yesNo, Required: true},
	{ID: QDataAnalysis, Stage: StageArchitecture, Prompt: "Will the agent analyse data?", Kind: KindBoolean, Options: yesNo, Required: true},
	{ID: QMemoryNeeds, Stage: StageArchitecture, Prompt: "What memory does the agent need?", Kind: KindChoice,
		Options: []string{"None", "Short-term (session only)", "Long-term (persistent)"}, Required: true},
	{ID: QToolIntegrations, Stage: StageArchitecture, Prompt: "Which external tools or services should it integrate with?", Kind: KindList},
	{ID: QRuntime, Stage: StageOutput, Prompt: "Where will the agent run?", Kind: KindChoice, Options: []string{"Cloud", "Local", "Hybrid"}},
	{ID: QComplianceRequirements, Stage: StageOutput, Prompt: "Any compliance requirements (GDPR, HIPAA, SOC 2)?", Kind: KindList},
	{ID: QAdditionalNotes, Stage: StageOutput, Prompt: "Anything else we should know?", Kind: KindText},
}

// Questions returns the ordered interview question list.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// Lookup returns the question with the given id.
func Lookup(id string) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
