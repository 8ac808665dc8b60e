package catalog

import (
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/types"
)

// Catalog is an ordered, read-only list of agent templates.
// Order is significant: ranking ties and empty previews fall back to it.
type Catalog struct {
	templates []types.AgentTemplate
	index     map[string]int
}

// New builds a catalog from templates without validating them.
// The slice is copied; later changes by the caller are not observed.
func New(templates []types.AgentTemplate) *Catalog {
	c := &Catalog{
		templates: make([]types.AgentTemplate, len(templates)),
		index:     make(map[string]int, len(templates)),
	}
	copy(c.templates, templates)
	for i, t := range c.templates {
		if _, exists := c.index[t.ID]; !exists {
			c.index[t.ID] = i
		}
	}
	return c
}

// Templates returns a copy of the templates in catalog order.
func (c *Catalog) Templates() []types.AgentTemplate {
	if c == nil {
		return nil
	}
	out := make([]types.AgentTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}

// Get returns the template with the given id.
func (c *Catalog) Get(id string) (types.AgentTemplate, bool) {
	if c == nil {
		return types.AgentTemplate{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return types.AgentTemplate{}, false
	}
	return c.templates[i], true
}

// IDs returns template ids in catalog order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, len(c.templates))
	for i, t := range c.templates {
		ids[i] = t.ID
	}
	return ids
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.templates)
}
