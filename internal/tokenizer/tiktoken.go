package tokenizer

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"go.uber.org/zap"
)

// Tiktoken counts tokens with a tiktoken encoding. The encoding is loaded on
// first use; if it cannot be loaded every count falls back to the Estimator.
type Tiktoken struct {
	encoding string
	logger   *zap.Logger
	fallback Estimator

	once    sync.Once
	enc     *tiktoken.Tiktoken
	initErr error
}

// NewTiktoken creates a counter for a tiktoken encoding such as cl100k_base.
func NewTiktoken(encoding string, logger *zap.Logger) *Tiktoken {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tiktoken{
		encoding: encoding,
		logger:   logger.With(zap.String("component", "tokenizer")),
	}
}

func (t *Tiktoken) init() error {
	t.once.Do(func() {
		enc, err := tiktoken.GetEncoding(t.encoding)
		if err != nil {
			t.initErr = fmt.Errorf("init tiktoken encoding %s: %w", t.encoding, err)
			t.logger.Warn("tiktoken unavailable, using estimator", zap.Error(t.initErr))
			return
		}
		t.enc = enc
	})
	return t.initErr
}

// Count returns the number of tokens in text.
func (t *Tiktoken) Count(text string) int {
	if err := t.init(); err != nil {
		return t.fallback.Count(text)
	}
	return len(t.enc.Encode(text, nil, nil))
}

// Name reports the encoding in use, or the fallback.
func (t *Tiktoken) Name() string {
	if err := t.init(); err != nil {
		return t.fallback.Name()
	}
	return fmt.Sprintf("tiktoken[%s]", t.encoding)
}
