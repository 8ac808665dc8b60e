package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewCollector("test", reg, zaptest.NewLogger(t)), reg
}

func TestNewCollector(t *testing.T) {
	c, _ := newTestCollector(t)

	assert.NotNil(t, c.classificationsTotal)
	assert.NotNil(t, c.classificationDuration)
	assert.NotNil(t, c.topScore)
	assert.NotNil(t, c.previewsTotal)
	assert.NotNil(t, c.previewConfidence)
	assert.NotNil(t, c.promptTokens)
	assert.NotNil(t, c.keyChecksTotal)
}

func TestNewCollector_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector("dup", reg, nil)

	assert.Panics(t, func() { NewCollector("dup", reg, nil) })
	assert.NotPanics(t, func() { NewCollector("other", reg, nil) })
}

func TestCollector_RecordClassification(t *testing.T) {
	c, _ := newTestCollector(t)

	c.RecordClassification("data-analyst", "low", 100, 2*time.Millisecond)
	c.RecordClassification("data-analyst", "low", 87.5, time.Millisecond)
	c.RecordClassificationError(time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.classificationsTotal.WithLabelValues("data-analyst", "low", StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.classificationsTotal.WithLabelValues("", "", StatusError)))
	assert.Equal(t, 2, testutil.CollectAndCount(c.classificationDuration))
	assert.Equal(t, 1, testutil.CollectAndCount(c.topScore))
}

func TestCollector_RecordPreviewAndTokens(t *testing.T) {
	c, reg := newTestCollector(t)

	c.RecordPreview("research-agent", 42)
	c.RecordPreview("research-agent", 50)
	c.RecordPromptTokens(320)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.previewsTotal.WithLabelValues("research-agent")))

	err := testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP test_system_prompt_tokens Estimated token count of generated system prompts
# TYPE test_system_prompt_tokens histogram
test_system_prompt_tokens_bucket{le="64"} 0
test_system_prompt_tokens_bucket{le="128"} 0
test_system_prompt_tokens_bucket{le="256"} 0
test_system_prompt_tokens_bucket{le="512"} 1
test_system_prompt_tokens_bucket{le="1024"} 1
test_system_prompt_tokens_bucket{le="2048"} 1
test_system_prompt_tokens_bucket{le="4096"} 1
test_system_prompt_tokens_bucket{le="8192"} 1
test_system_prompt_tokens_bucket{le="+Inf"} 1
test_system_prompt_tokens_sum 320
test_system_prompt_tokens_count 1
`), "test_system_prompt_tokens")
	require.NoError(t, err)
}

func TestCollector_RecordKeyCheck(t *testing.T) {
	c, _ := newTestCollector(t)

	c.RecordKeyCheck("anthropic", true)
	c.RecordKeyCheck("minimax", false)
	c.RecordKeyCheck("minimax", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.keyChecksTotal.WithLabelValues("anthropic", "valid")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.keyChecksTotal.WithLabelValues("minimax", "invalid")))
}
