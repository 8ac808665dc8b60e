// Package tokenizer estimates token counts for generated system prompts.
package tokenizer
