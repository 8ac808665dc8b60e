package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/types"
)

const (
	anthropicVersion = "2023-06-01"
	defaultMaxTokens = 4096
)

// Message is one chat turn. Role is "user" or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the provider-neutral chat request.
type ChatRequest struct {
	Model       string
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature *float64
}

type requestOptions struct {
	baseURL string
	referer string
	title   string
}

// RequestOption customises BuildChatRequest.
type RequestOption func(*requestOptions)

// WithBaseURL overrides the provider's base URL.
func WithBaseURL(url string) RequestOption {
	return func(o *requestOptions) { o.baseURL = url }
}

// WithAppInfo sets the OpenRouter attribution headers.
func WithAppInfo(title, referer string) RequestOption {
	return func(o *requestOptions) {
		o.title = title
		o.referer = referer
	}
}

type anthropicRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	System      string    `json:"system,omitempty"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
}

type openAIRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
}

// BuildChatRequest validates key and req and returns the HTTP request for p.
// The request is not sent.
func BuildChatRequest(ctx context.Context, p Provider, key string, req ChatRequest, opts ...RequestOption) (*http.Request, error) {
	endpoint, ok := endpoints[p]
	if !ok {
		return nil, types.NewError(types.ErrUnsupportedProvider, fmt.Sprintf("unsupported provider: %q", p))
	}
	if err := ValidateKey(p, key); err != nil {
		return nil, err
	}
	if err := validateMessages(req.Messages); err != nil {
		return nil, err.WithProvider(string(p))
	}

	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}
	baseURL := endpoint.BaseURL
	if o.baseURL != "" {
		baseURL = o.baseURL
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	model := chooseModel(req.Model, endpoint)

	var body any
	if p == Anthropic {
		body = anthropicRequest{
			Model:       model,
			MaxTokens:   maxTokens,
			System:      req.System,
			Messages:    req.Messages,
			Temperature: req.Temperature,
		}
	} else {
		messages := make([]Message, 0, len(req.Messages)+1)
		if req.System != "" {
			messages = append(messages, Message{Role: "system", Content: req.System})
		}
		body = openAIRequest{
			Model:       model,
			MaxTokens:   maxTokens,
			Messages:    append(messages, req.Messages...),
			Temperature: req.Temperature,
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", p, err)
	}

	url := strings.TrimRight(baseURL, "/") + endpoint.Path
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, types.NewError(types.ErrInvalidRequest, "build HTTP request").WithProvider(string(p)).WithCause(err)
	}

	key = strings.TrimSpace(key)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	switch p {
	case Anthropic:
		httpReq.Header.Set("x-api-key", key)
		httpReq.Header.Set("anthropic-version", anthropicVersion)
	case OpenRouter:
		httpReq.Header.Set("Authorization", "Bearer "+key)
		if o.referer != "" {
			httpReq.Header.Set("HTTP-Referer", o.referer)
		}
		if o.title != "" {
			httpReq.Header.Set("X-Title", o.title)
		}
	default:
		httpReq.Header.Set("Authorization", "Bearer "+key)
	}

	return httpReq, nil
}

func validateMessages(messages []Message) *types.Error {
	if len(messages) == 0 {
		return types.NewError(types.ErrInvalidRequest, "at least one message is required")
	}
	for i, m := range messages {
		if m.Role != "user" && m.Role != "assistant" {
			return types.NewError(types.ErrInvalidRequest, fmt.Sprintf("message %d: unsupported role %q", i, m.Role))
		}
	}
	return nil
}
