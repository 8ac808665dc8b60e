package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestions_CoverKeyFields(t *testing.T) {
	qs := Questions()
	require.NotEmpty(t, qs)

	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		assert.False(t, seen[q.ID], "duplicate question id %s", q.ID)
		seen[q.ID] = true
	}
	for _, key := range KeyFields {
		assert.True(t, seen[key], "key field %s has no question", key)
	}

	// Mutating the returned slice must not affect the package list.
	qs[0].ID = "mutated"
	q, ok := Lookup(QAgentName)
	require.True(t, ok)
	assert.Equal(t, QAgentName, q.ID)
}

func TestSession_LinearNavigation(t *testing.T) {
	s := NewSession()

	q, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, QAgentName, q.ID)
	assert.False(t, s.Back(), "cannot go back from the first question")

	require.NoError(t, s.Answer("Scout"))
	q, _ = s.Current()
	assert.Equal(t, QAgentDescription, q.ID)

	require.True(t, s.Back())
	q, _ = s.Current()
	assert.Equal(t, QAgentName, q.ID)
	assert.Equal(t, "Scout", s.Responses()[QAgentName], "answers survive back navigation")

	done, total := s.Progress()
	assert.Equal(t, 0, done)
	assert.Equal(t, len(Questions()), total)
}

func TestSession_RequiredAndChoiceValidation(t *testing.T) {
	s := NewSession()

	err := s.Answer("  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires an answer")
	assert.Error(t, s.Skip())

	require.NoError(t, s.Answer("Scout"))
	require.NoError(t, s.Answer("Finds things"))
	require.NoError(t, s.Answer("Research competitors"))
	require.NoError(t, s.Skip()) // target audience is optional

	q, _ := s.Current()
	require.Equal(t, QInteractionStyle, q.ID)
	assert.Error(t, s.Answer("telepathic"))
	require.NoError(t, s.Answer("conversational"))
}

func TestSession_CompleteRun(t *testing.T) {
	s := NewSession()
	for !s.Done() {
		q, ok := s.Current()
		require.True(t, ok)
		switch q.Kind {
		case KindBoolean:
			require.NoError(t, s.Answer("Yes"))
		case KindChoice:
			require.NoError(t, s.Answer(q.Options[0]))
		case KindList:
			require.NoError(t, s.Answer([]string{"item"}))
		default:
			require.NoError(t, s.Answer("text"))
		}
	}

	_, ok := s.Current()
	assert.False(t, ok)
	assert.Error(t, s.Answer("late"))
	assert.Equal(t, 100, Completeness(s.Responses()))
}

func TestResume_SkipsAnsweredQuestions(t *testing.T) {
	s := Resume(Responses{
		QAgentName:        "Scout",
		QAgentDescription: "Finds things",
	})

	q, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, QPrimaryOutcome, q.ID)
	assert.Equal(t, "Scout", s.Responses()[QAgentName])
}
