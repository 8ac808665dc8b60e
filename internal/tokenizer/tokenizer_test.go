package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestEstimator_Count(t *testing.T) {
	e := NewEstimator()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"single rune", "a", 1},
		{"ascii", strings.Repeat("a", 40), 10},
		{"cjk", "分析数据分析数", 4},
		{"mixed", "data 分析", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Count(tt.text))
		})
	}
	assert.Equal(t, "estimator", e.Name())
}

func TestNew_EstimateEncoding(t *testing.T) {
	for _, enc := range []string{"", "  ", EstimateEncoding} {
		_, ok := New(enc, nil).(*Estimator)
		assert.True(t, ok, "encoding %q", enc)
	}
	_, ok := New("cl100k_base", nil).(*Tiktoken)
	assert.True(t, ok)
}

func TestTiktoken_UnknownEncodingFallsBack(t *testing.T) {
	tk := NewTiktoken("no_such_encoding", zaptest.NewLogger(t))
	text := strings.Repeat("word ", 20)

	assert.Equal(t, NewEstimator().Count(text), tk.Count(text))
	assert.Equal(t, "estimator", tk.Name())
	assert.Error(t, tk.init())
}
