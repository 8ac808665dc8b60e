package classifier

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/agent/catalog"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/types"
)

// Scoring weights.
const (
	capabilityWeight  = 10.0
	useCaseWeight     = 15.0
	maxUseCaseMatches = 2
	styleWeight       = 15.0
	requirementWeight = 7.0
)

// styleCompatibility lists the templates that naturally fit each style.
// Styles missing from the table are compatible with every template.
var styleCompatibility = map[types.InteractionStyle][]string{
	types.StyleConversational: {"content-creator", "research-agent"},
	types.StyleTaskFocused:    {"data-analyst", "code-assistant", "automation-agent"},
	types.StyleCollaborative:  {"code-assistant", "content-creator"},
}

var (
	dataAnalysisTags  = []string{"data-processing", "statistics", "visualization", "reporting"}
	codeExecutionTags = []string{"code-review", "testing"}
)

type keywordFamily struct {
	pattern *regexp.Regexp
	tags    []string
}

// keywordFamilies are matched against the lower-cased primary outcome, in order.
var keywordFamilies = []keywordFamily{
	{
		pattern: regexp.MustCompile(`report|statistic|visualiz|chart|graph|metric|data|analys`),
		tags:    dataAnalysisTags,
	},
	{
		pattern: regexp.MustCompile(`blog|article|seo|market|document|content|writ`),
		tags:    []string{"content-creation", "seo", "formatting"},
	},
	{
		pattern: regexp.MustCompile(`review|test|refactor|debug|quality|code|develop`),
		tags:    []string{"code-review", "testing", "refactoring"},
	},
	{
		pattern: regexp.MustCompile(`web|scrape|extract|verify|fact|research|search`),
		tags:    []string{"research", "web-search", "web-scraping", "fact-checking"},
	},
	{
		pattern: regexp.MustCompile(`schedule|orchestrat|queue|task|job|automat|workflow`),
		tags:    []string{"automation", "scheduling", "orchestration"},
	},
}

// capabilityRequirement awards points when an enabled flag is natively supported.
type capabilityRequirement struct {
	enabled func(types.AgentCapabilities) bool
	tag     string
	reason  string
}

var capabilityRequirements = []capabilityRequirement{
	{enabled: func(c types.AgentCapabilities) bool { return c.FileAccess }, tag: "file-access", reason: "Supports file access"},
	{enabled: func(c types.AgentCapabilities) bool { return c.WebAccess }, tag: "web-access", reason: "Supports web access"},
	{enabled: func(c types.AgentCapabilities) bool { return c.DataAnalysis }, tag: "data-processing", reason: "Supports data analysis"},
}

// requiredCapabilities derives the deduplicated capability tags the requirements call for.
// Flag-derived tags come first, then keyword families; first occurrence wins.
func requiredCapabilities(req *types.AgentRequirements) []string {
	var tags []string
	caps := req.Capabilities

	if caps.FileAccess {
		tags = append(tags, "file-access")
	}
	if caps.WebAccess {
		tags = append(tags, "web-access")
	}
	if caps.DataAnalysis {
		tags = append(tags, dataAnalysisTags...)
	}
	if caps.CodeExecution {
		tags = append(tags, codeExecutionTags...)
	}

	outcome := strings.ToLower(req.PrimaryOutcome)
	for _, family := range keywordFamilies {
		if family.pattern.MatchString(outcome) {
			tags = append(tags, family.tags...)
		}
	}

	return dedupe(tags)
}

func scoreTemplate(t *types.AgentTemplate, req *types.AgentRequirements) (types.TemplateScore, error) {
	if err := catalog.CheckTemplate(t); err != nil {
		return types.TemplateScore{}, err
	}

	var raw, total float64
	var reasons []string

	// 1. Capability match
	matched := make([]string, 0)
	missing := make([]string, 0)
	for _, tag := range requiredCapabilities(req) {
		total += capabilityWeight
		if t.HasCapability(tag) {
			raw += capabilityWeight
			matched = append(matched, tag)
		} else {
			missing = append(missing, tag)
		}
	}

	// 2. Use-case alignment
	total += useCaseWeight * maxUseCaseMatches
	if useCases := matchUseCases(t.IdealFor, req.PrimaryOutcome); len(useCases) > 0 {
		raw += useCaseWeight * float64(len(useCases))
		reasons = append(reasons, "Matches use cases: "+strings.Join(useCases, ", "))
	}

	// 3. Interaction style
	total += styleWeight
	if styleCompatible(req.InteractionStyle, t.ID) {
		raw += styleWeight
		reasons = append(reasons, fmt.Sprintf("Compatible with %s interaction style", styleLabel(req.InteractionStyle)))
	}

	// 4. Capability requirements
	for _, cr := range capabilityRequirements {
		if !cr.enabled(req.Capabilities) {
			continue
		}
		total += requirementWeight
		if t.HasCapability(cr.tag) {
			raw += requirementWeight
			reasons = append(reasons, cr.reason)
		}
	}

	return types.TemplateScore{
		TemplateID:          t.ID,
		Score:               normalize(raw, total),
		MatchedCapabilities: matched,
		MissingCapabilities: missing,
		Reasoning:           buildReasoning(matched, missing, reasons),
	}, nil
}

// matchUseCases returns up to maxUseCaseMatches phrases that contain, or are
// contained in, the outcome. Blank strings never match.
func matchUseCases(idealFor []string, primaryOutcome string) []string {
	outcome := strings.ToLower(strings.TrimSpace(primaryOutcome))
	if outcome == "" {
		return nil
	}

	var matches []string
	for _, phrase := range idealFor {
		p := strings.ToLower(strings.TrimSpace(phrase))
		if p == "" {
			continue
		}
		if strings.Contains(outcome, p) || strings.Contains(p, outcome) {
			matches = append(matches, phrase)
			if len(matches) == maxUseCaseMatches {
				break
			}
		}
	}
	return matches
}

func styleCompatible(style types.InteractionStyle, templateID string) bool {
	fits, ok := styleCompatibility[normalizeStyle(style)]
	if !ok {
		return true
	}
	for _, id := range fits {
		if id == templateID {
			return true
		}
	}
	return false
}

func normalizeStyle(style types.InteractionStyle) types.InteractionStyle {
	return types.InteractionStyle(strings.ToLower(strings.TrimSpace(string(style))))
}

func styleLabel(style types.InteractionStyle) string {
	if s := normalizeStyle(style); s != "" {
		return string(s)
	}
	return "unspecified"
}

// normalize maps raw/total onto 0-100 rounded to two decimals; a zero total scores 0.
func normalize(raw, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(raw/total*100*100) / 100
}

func buildReasoning(matched, missing, reasons []string) string {
	parts := make([]string, 0, len(reasons)+2)
	if len(matched) > 0 {
		parts = append(parts, "Matched capabilities: "+strings.Join(matched, ", "))
	}
	if len(missing) > 0 {
		parts = append(parts, "Missing capabilities: "+strings.Join(missing, ", "))
	}
	parts = append(parts, reasons...)

	if len(parts) == 0 {
		return "Basic template match"
	}
	return strings.Join(parts, ". ")
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
