package interview

import (
	"fmt"
	"math"
	"strings"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/types"
)

// UnnamedAgent is the name used when the interview has not captured one yet.
const UnnamedAgent = "Unnamed Agent"

// Responses holds raw interview answers keyed by question id.
// Values are loosely typed: strings, booleans, string lists or []any decoded from JSON.
type Responses map[string]any

// KeyFields are the answers that carry most of the classification signal.
var KeyFields = []string{
	QAgentName,
	QAgentDescription,
	QPrimaryOutcome,
	QInteractionStyle,
	QFileAccess,
	QWebAccess,
	QCodeExecution,
	QDataAnalysis,
	QMemoryNeeds,
}

// BuildRequirements coerces a (possibly partial) response map into requirements.
// It never fails: every missing or oddly typed answer falls back to a default.
func BuildRequirements(r Responses) types.AgentRequirements {
	name := r.text(QAgentName)
	if name == "" {
		name = UnnamedAgent
	}

	req := types.AgentRequirements{
		Name:             name,
		Description:      r.text(QAgentDescription),
		PrimaryOutcome:   r.text(QPrimaryOutcome),
		TargetAudience:   r.list(QTargetAudience),
		InteractionStyle: ParseInteractionStyle(r.text(QInteractionStyle)),
		DeliveryChannels: r.list(QDeliveryChannels),
		SuccessMetrics:   r.list(QSuccessMetrics),
		Constraints:      r.list(QConstraints),
		Capabilities: types.AgentCapabilities{
			Memory:           ParseMemoryType(r.text(QMemoryNeeds)),
			FileAccess:       r.flag(QFileAccess),
			WebAccess:        r.flag(QWebAccess),
			CodeExecution:    r.flag(QCodeExecution),
			DataAnalysis:     r.flag(QDataAnalysis),
			ToolIntegrations: r.list(QToolIntegrations),
		},
		AdditionalNotes: r.text(QAdditionalNotes),
	}

	runtime := ParseRuntime(r.text(QRuntime))
	compliance := r.list(QComplianceRequirements)
	if runtime != "" || len(compliance) > 0 {
		req.Environment = &types.Environment{
			Runtime:                runtime,
			ComplianceRequirements: compliance,
		}
	}

	return req
}

// Completeness returns the rounded percentage of KeyFields that were answered.
// A boolean false counts as an answer; nil, blank strings and empty lists do not.
func Completeness(r Responses) int {
	answered := 0
	for _, key := range KeyFields {
		if r.answered(key) {
			answered++
		}
	}
	return int(math.Round(float64(answered) / float64(len(KeyFields)) * 100))
}

// ParseInteractionStyle infers the style from free text, defaulting to task-focused.
func ParseInteractionStyle(s string) types.InteractionStyle {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "conversation"):
		return types.StyleConversational
	case strings.Contains(lower, "collaborat"):
		return types.StyleCollaborative
	default:
		return types.StyleTaskFocused
	}
}

// ParseMemoryType infers the memory requirement from free text.
func ParseMemoryType(s string) types.MemoryType {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "long"):
		return types.MemoryLongTerm
	case strings.Contains(lower, "short"), strings.Contains(lower, "session"):
		return types.MemoryShortTerm
	default:
		return types.MemoryNone
	}
}

// ParseRuntime infers the runtime from free text; unknown text yields "".
func ParseRuntime(s string) types.Runtime {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "hybrid"):
		return types.RuntimeHybrid
	case strings.Contains(lower, "local"):
		return types.RuntimeLocal
	case strings.Contains(lower, "cloud"):
		return types.RuntimeCloud
	default:
		return ""
	}
}

func (r Responses) text(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []string:
		return strings.Join(v, ", ")
	case []any:
		return strings.Join(toStrings(v), ", ")
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func (r Responses) list(key string) []string {
	switch v := r[key].(type) {
	case nil:
		return []string{}
	case []string:
		return compact(v)
	case []any:
		return compact(toStrings(v))
	case string:
		return compact(strings.FieldsFunc(v, func(c rune) bool { return c == ',' || c == '\n' }))
	default:
		return compact([]string{fmt.Sprint(v)})
	}
}

// flag accepts true or "yes" in any case.
func (r Responses) flag(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "yes")
	default:
		return false
	}
}

func (r Responses) answered(key string) bool {
	switch v := r[key].(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case []string:
		return len(v) > 0
	case []any:
		return len(v) > 0
	default:
		return true
	}
}

func toStrings(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprint(v))
	}
	return out
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
