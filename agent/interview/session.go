package interview

import (
	"fmt"
	"strings"
)

// Session walks the question list linearly, with back navigation.
// It is not safe for concurrent use; each interview owns its session.
type Session struct {
	questions []Question
	index     int
	responses Responses
}

// NewSession starts an interview at the first question.
func NewSession() *Session {
	return &Session{
		questions: Questions(),
		responses: make(Responses),
	}
}

// Resume starts a session from previously captured answers and positions it
// at the first unanswered question.
func Resume(prior Responses) *Session {
	s := NewSession()
	for k, v := range prior {
		s.responses[k] = v
	}
	for s.index < len(s.questions) && s.responses.answered(s.questions[s.index].ID) {
		s.index++
	}
	return s
}

// Current returns the question awaiting an answer, or false when done.
func (s *Session) Current() (Question, bool) {
	if s.Done() {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// Answer records the answer to the current question and advances.
func (s *Session) Answer(value any) error {
	q, ok := s.Current()
	if !ok {
		return fmt.Errorf("interview already complete")
	}
	if q.Required && !(Responses{q.ID: value}).answered(q.ID) {
		return fmt.Errorf("question %q requires an answer", q.ID)
	}
	if q.Kind == KindChoice && len(q.Options) > 0 {
		if str, isStr := value.(string); isStr && !matchesOption(str, q.Options) {
			return fmt.Errorf("question %q: %q is not one of %s", q.ID, str, strings.Join(q.Options, ", "))
		}
	}
	s.responses[q.ID] = value
	s.index++
	return nil
}

// Skip advances past an optional question without recording an answer.
func (s *Session) Skip() error {
	q, ok := s.Current()
	if !ok {
		return fmt.Errorf("interview already complete")
	}
	if q.Required {
		return fmt.Errorf("question %q cannot be skipped", q.ID)
	}
	s.index++
	return nil
}

// Back returns to the previous question. Earlier answers are kept.
func (s *Session) Back() bool {
	if s.index == 0 {
		return false
	}
	s.index--
	return true
}

// Done reports whether every question has been visited.
func (s *Session) Done() bool {
	return s.index >= len(s.questions)
}

// Progress returns the number of visited questions and the total.
func (s *Session) Progress() (int, int) {
	return s.index, len(s.questions)
}

// Responses returns a copy of the answers captured so far.
func (s *Session) Responses() Responses {
	out := make(Responses, len(s.responses))
	for k, v := range s.responses {
		out[k] = v
	}
	return out
}

func matchesOption(value string, options []string) bool {
	for _, o := range options {
		if strings.EqualFold(strings.TrimSpace(value), o) {
			return true
		}
	}
	return false
}
