package types

// ToolConfiguration describes a tool that ships with a template.
type ToolConfiguration struct {
	Name                string         `json:"name" yaml:"name" validate:"required"`
	Description         string         `json:"description" yaml:"description"`
	Parameters          map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequiredPermissions []string       `json:"requiredPermissions,omitempty" yaml:"required_permissions,omitempty"`
}

// AgentTemplate is a static, pre-authored agent archetype.
//
// CapabilityTags and IdealFor must be non-nil. An empty list is a legal
// template that simply matches nothing; a nil list is a catalog authoring bug
// and scoring it fails with ErrMalformedTemplate.
type AgentTemplate struct {
	ID                      string              `json:"id" yaml:"id" validate:"required,slug"`
	Name                    string              `json:"name" yaml:"name" validate:"required"`
	Description             string              `json:"description" yaml:"description"`
	CapabilityTags          []string            `json:"capabilityTags" yaml:"capability_tags"`
	IdealFor                []string            `json:"idealFor" yaml:"ideal_for"`
	SystemPrompt            string              `json:"systemPrompt" yaml:"system_prompt"`
	DefaultTools            []ToolConfiguration `json:"defaultTools" yaml:"default_tools" validate:"dive"`
	RequiredDependencies    []string            `json:"requiredDependencies" yaml:"required_dependencies"`
	RecommendedIntegrations []string            `json:"recommendedIntegrations" yaml:"recommended_integrations"`
}

// HasCapability reports whether the template natively supports tag.
func (t *AgentTemplate) HasCapability(tag string) bool {
	for _, c := range t.CapabilityTags {
		if c == tag {
			return true
		}
	}
	return false
}
