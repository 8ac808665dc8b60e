package tokenizer

import (
	"strings"

	"go.uber.org/zap"
)

// Counter counts tokens in text.
type Counter interface {
	Count(text string) int
	Name() string
}

// EstimateEncoding selects the character-based Estimator.
const EstimateEncoding = "estimate"

// New returns a tiktoken counter for encoding, falling back to the
// Estimator when encoding is empty or EstimateEncoding.
func New(encoding string, logger *zap.Logger) Counter {
	encoding = strings.TrimSpace(encoding)
	if encoding == "" || encoding == EstimateEncoding {
		return NewEstimator()
	}
	return NewTiktoken(encoding, logger)
}
