package providers

import (
	"fmt"
	"strings"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/types"
)

// Provider names an LLM provider.
type Provider string

const (
	Anthropic  Provider = "anthropic"
	OpenRouter Provider = "openrouter"
	MiniMax    Provider = "minimax"
)

// Endpoint describes how to reach a provider's chat API.
type Endpoint struct {
	BaseURL      string
	Path         string
	DefaultModel string
}

var endpoints = map[Provider]Endpoint{
	Anthropic: {
		BaseURL:      "https://api.anthropic.com",
		Path:         "/v1/messages",
		DefaultModel: "claude-sonnet-4-5",
	},
	OpenRouter: {
		BaseURL:      "https://openrouter.ai",
		Path:         "/api/v1/chat/completions",
		DefaultModel: "anthropic/claude-sonnet-4.5",
	},
	MiniMax: {
		BaseURL:      "https://api.minimax.io",
		Path:         "/v1/text/chatcompletion_v2",
		DefaultModel: "MiniMax-M2",
	},
}

// All returns the supported providers in display order.
func All() []Provider {
	return []Provider{Anthropic, OpenRouter, MiniMax}
}

// Parse resolves a provider name case-insensitively.
func Parse(name string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := endpoints[p]; !ok {
		return "", types.NewError(types.ErrUnsupportedProvider, fmt.Sprintf("unsupported provider: %q", name))
	}
	return p, nil
}

// EndpointFor returns the default endpoint for p.
func EndpointFor(p Provider) (Endpoint, bool) {
	e, ok := endpoints[p]
	return e, ok
}

// chooseModel prefers the requested model over the provider default.
func chooseModel(requested string, e Endpoint) string {
	if m := strings.TrimSpace(requested); m != "" {
		return m
	}
	return e.DefaultModel
}
