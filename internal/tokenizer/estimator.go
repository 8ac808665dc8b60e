package tokenizer

import "unicode/utf8"

// Estimator approximates token counts from character classes: CJK text runs
// about 1.5 characters per token, everything else about 4.
type Estimator struct{}

// NewEstimator creates an Estimator.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Count returns the estimated token count; non-empty text counts at least 1.
func (Estimator) Count(text string) int {
	if text == "" {
		return 0
	}

	total := utf8.RuneCountInString(text)
	cjk := 0
	for _, r := range text {
		if isCJK(r) {
			cjk++
		}
	}

	estimated := int(float64(cjk)/1.5 + float64(total-cjk)/4.0)
	return max(estimated, 1)
}

func (Estimator) Name() string {
	return "estimator"
}

func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // Extension B
		(r >= 0xF900 && r <= 0xFAFF) || // Compatibility Ideographs
		(r >= 0x3000 && r <= 0x303F) || // Symbols and Punctuation
		(r >= 0x3040 && r <= 0x30FF) || // Hiragana and Katakana
		(r >= 0xFF00 && r <= 0xFFEF) // Halfwidth and Fullwidth Forms
}
