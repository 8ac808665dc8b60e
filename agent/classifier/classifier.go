package classifier

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/agent/catalog"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/agent/interview"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/types"
)

// Classifier scores a fixed template catalog against agent requirements.
type Classifier struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// New creates a classifier over cat. A nil catalog behaves as an empty one.
func New(cat *catalog.Catalog, logger *zap.Logger) *Classifier {
	if cat == nil {
		cat = catalog.New(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{
		catalog: cat,
		logger:  logger.With(zap.String("component", "classifier")),
	}
}

// Catalog returns the catalog the classifier ranks.
func (c *Classifier) Catalog() *catalog.Catalog {
	return c.catalog
}

// ScoreTemplate scores a single template. It fails only for malformed templates.
func (c *Classifier) ScoreTemplate(t *types.AgentTemplate, req *types.AgentRequirements) (types.TemplateScore, error) {
	return scoreTemplate(t, orEmpty(req))
}

// ScoreAllTemplates scores every template and sorts them by descending score.
// Ties keep catalog order. An empty catalog yields an empty slice.
func (c *Classifier) ScoreAllTemplates(req *types.AgentRequirements) ([]types.TemplateScore, error) {
	req = orEmpty(req)
	templates := c.catalog.Templates()

	scores := make([]types.TemplateScore, 0, len(templates))
	for i := range templates {
		score, err := scoreTemplate(&templates[i], req)
		if err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	if len(scores) > 0 {
		c.logger.Debug("templates scored",
			zap.Int("templates", len(scores)),
			zap.String("top_template", scores[0].TemplateID),
			zap.Float64("top_score", scores[0].Score),
		)
	}

	return scores, nil
}

// Classify selects the best template and derives a full recommendation.
func (c *Classifier) Classify(req *types.AgentRequirements) (*types.AgentRecommendations, error) {
	rec, _, err := c.ClassifyRanked(req)
	return rec, err
}

// ClassifyRanked is Classify that also returns the ranking the
// recommendation was derived from.
func (c *Classifier) ClassifyRanked(req *types.AgentRequirements) (*types.AgentRecommendations, []types.TemplateScore, error) {
	if c.catalog.Len() == 0 {
		return nil, nil, types.NewError(types.ErrNoTemplates, "no templates available")
	}

	req = orEmpty(req)
	scores, err := c.ScoreAllTemplates(req)
	if err != nil {
		return nil, nil, err
	}

	best := scores[0]
	tmpl, ok := c.catalog.Get(best.TemplateID)
	if !ok {
		return nil, nil, types.NewError(types.ErrTemplateNotFound, fmt.Sprintf("template not found: %s", best.TemplateID))
	}

	complexity := assessComplexity(&tmpl, req)
	rec := &types.AgentRecommendations{
		AgentType:            tmpl.ID,
		RequiredDependencies: append([]string{}, tmpl.RequiredDependencies...),
		MCPServers:           recommendMCPServers(req),
		SystemPrompt:         customizePrompt(&tmpl, req),
		ToolConfigurations:   append([]types.ToolConfiguration{}, tmpl.DefaultTools...),
		EstimatedComplexity:  complexity,
		ImplementationSteps:  implementationSteps(&tmpl, req, complexity),
		Notes:                buildNotes(best, scores[1:], req),
	}

	c.logger.Info("agent classified",
		zap.String("agent_type", rec.AgentType),
		zap.Float64("score", best.Score),
		zap.String("complexity", string(complexity)),
	)

	return rec, scores, nil
}

// PartialArchetype previews the likely template for an incomplete interview.
//
// An empty catalog yields nil. An empty response map yields the first catalog
// template with zero confidence. Otherwise confidence is the top score scaled
// by the share of key fields answered and rounded, so it never exceeds RawScore.
func (c *Classifier) PartialArchetype(responses interview.Responses) (*types.PartialArchetypeResult, error) {
	if c.catalog.Len() == 0 {
		return nil, nil
	}

	if len(responses) == 0 {
		first := c.catalog.Templates()[0]
		return &types.PartialArchetypeResult{
			Archetype:     first.ID,
			ArchetypeName: first.Name,
		}, nil
	}

	req := interview.BuildRequirements(responses)
	scores, err := c.ScoreAllTemplates(&req)
	if err != nil {
		return nil, err
	}

	top := scores[0]
	tmpl, _ := c.catalog.Get(top.TemplateID)
	completeness := interview.Completeness(responses)

	return &types.PartialArchetypeResult{
		Archetype:        top.TemplateID,
		ArchetypeName:    tmpl.Name,
		Confidence:       math.Round(top.Score * float64(completeness) / 100),
		RawScore:         math.Round(top.Score),
		DataCompleteness: completeness,
	}, nil
}

func orEmpty(req *types.AgentRequirements) *types.AgentRequirements {
	if req == nil {
		return &types.AgentRequirements{}
	}
	return req
}
