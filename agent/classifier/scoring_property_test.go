package classifier

import (
	"math"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/agent/catalog"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/agent/interview"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/types"
)

var outcomeWords = []string{
	"analyze", "data", "csv", "report", "blog", "seo", "content", "review", "code",
	"test", "research", "web", "scrape", "schedule", "workflow", "automate", "the",
	"customer", "support", "tulips", "dashboards", "metrics", "fact", "checking",
}

var styles = []types.InteractionStyle{
	types.StyleConversational, types.StyleTaskFocused, types.StyleCollaborative, "", "Unknown",
}

func genRequirements() *rapid.Generator[*types.AgentRequirements] {
	return rapid.Custom(func(t *rapid.T) *types.AgentRequirements {
		words := rapid.SliceOfN(rapid.SampledFrom(outcomeWords), 0, 8).Draw(t, "words")
		return &types.AgentRequirements{
			PrimaryOutcome:   strings.Join(words, " "),
			InteractionStyle: rapid.SampledFrom(styles).Draw(t, "style"),
			Capabilities: types.AgentCapabilities{
				FileAccess:    rapid.Bool().Draw(t, "file"),
				WebAccess:     rapid.Bool().Draw(t, "web"),
				CodeExecution: rapid.Bool().Draw(t, "code"),
				DataAnalysis:  rapid.Bool().Draw(t, "data"),
			},
		}
	})
}

func TestProperty_ScoresAreBounded(t *testing.T) {
	c := New(catalog.Default(), zap.NewNop())

	rapid.Check(t, func(rt *rapid.T) {
		req := genRequirements().Draw(rt, "req")
		if rapid.Bool().Draw(rt, "arbitraryText") {
			req.PrimaryOutcome = rapid.String().Draw(rt, "outcome")
		}

		scores, err := c.ScoreAllTemplates(req)
		require.NoError(rt, err)
		require.Len(rt, scores, catalog.Default().Len())

		for i, s := range scores {
			require.False(rt, math.IsNaN(s.Score) || math.IsInf(s.Score, 0), "score must be finite")
			require.GreaterOrEqual(rt, s.Score, 0.0)
			require.LessOrEqual(rt, s.Score, 100.0)
			require.InDelta(rt, math.Round(s.Score*100), s.Score*100, 1e-6, "at most two decimals")
			require.NotEmpty(rt, s.Reasoning)
			if i > 0 {
				require.GreaterOrEqual(rt, scores[i-1].Score, s.Score)
			}
		}
	})
}

func TestProperty_SupportedFlagNeverLowersScore(t *testing.T) {
	c := New(catalog.Default(), zap.NewNop())
	templates := catalog.Default().Templates()

	rapid.Check(t, func(rt *rapid.T) {
		req := genRequirements().Draw(rt, "req")
		tmpl := rapid.SampledFrom(templates).Draw(rt, "template")

		// Single-tag flags only. DataAnalysis adds a four-tag bundle and can
		// lower a partially supporting template's score.
		flags := []struct {
			tag string
			set func(*types.AgentRequirements, bool)
		}{
			{"file-access", func(r *types.AgentRequirements, v bool) { r.Capabilities.FileAccess = v }},
			{"web-access", func(r *types.AgentRequirements, v bool) { r.Capabilities.WebAccess = v }},
		}

		for _, f := range flags {
			if !tmpl.HasCapability(f.tag) {
				continue
			}
			off, on := *req, *req
			f.set(&off, false)
			f.set(&on, true)

			without, err := c.ScoreTemplate(&tmpl, &off)
			require.NoError(rt, err)
			with, err := c.ScoreTemplate(&tmpl, &on)
			require.NoError(rt, err)
			require.GreaterOrEqual(rt, with.Score, without.Score, "flag %s on %s", f.tag, tmpl.ID)
		}
	})
}

func TestProperty_PartialConfidenceNeverExceedsRawScore(t *testing.T) {
	c := New(catalog.Default(), zap.NewNop())
	keys := interview.KeyFields

	rapid.Check(t, func(rt *rapid.T) {
		responses := interview.Responses{}
		for _, key := range keys {
			if rapid.Bool().Draw(rt, "answer_"+key) {
				responses[key] = rapid.SampledFrom([]any{"Yes", "No", true, false, "data reports", "Conversational"}).Draw(rt, "value_"+key)
			}
		}

		result, err := c.PartialArchetype(responses)
		require.NoError(rt, err)
		require.NotNil(rt, result)
		require.LessOrEqual(rt, result.Confidence, result.RawScore)
		if result.DataCompleteness == 100 {
			require.Equal(rt, result.RawScore, result.Confidence)
		}
	})
}

func TestProperty_ScoringIsDeterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	c := New(catalog.Default(), zap.NewNop())

	properties.Property("repeated ranking yields identical results", prop.ForAll(
		func(outcome string, file, web, data bool) bool {
			req := &types.AgentRequirements{
				PrimaryOutcome:   outcome,
				InteractionStyle: types.StyleTaskFocused,
				Capabilities: types.AgentCapabilities{
					FileAccess:   file,
					WebAccess:    web,
					DataAnalysis: data,
				},
			}

			first, err := c.ScoreAllTemplates(req)
			if err != nil {
				return false
			}
			for i := 0; i < 5; i++ {
				again, err := c.ScoreAllTemplates(req)
				if err != nil || len(again) != len(first) {
					return false
				}
				for j := range first {
					if again[j].TemplateID != first[j].TemplateID ||
						again[j].Score != first[j].Score ||
						again[j].Reasoning != first[j].Reasoning {
						return false
					}
				}
			}
			return true
		},
		gen.AlphaString(),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.Property("ranking ignores outcome case", prop.ForAll(
		func(outcome string) bool {
			lower, err := c.ScoreAllTemplates(&types.AgentRequirements{PrimaryOutcome: strings.ToLower(outcome)})
			if err != nil {
				return false
			}
			upper, err := c.ScoreAllTemplates(&types.AgentRequirements{PrimaryOutcome: strings.ToUpper(outcome)})
			if err != nil {
				return false
			}
			for i := range lower {
				if lower[i].TemplateID != upper[i].TemplateID || lower[i].Score != upper[i].Score {
					return false
				}
			}
			return true
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
