package providers

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/types"
)

const (
	anthropicKey  = "sk-ant-REDACTED"
	openRouterKey = "sk-or-v1-abcdefghijklmnopqrst"
)

func signedJWT(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestParse(t *testing.T) {
	p, err := Parse("  OpenRouter ")
	require.NoError(t, err)
	assert.Equal(t, OpenRouter, p)

	_, err = Parse("acme")
	assert.Equal(t, types.ErrUnsupportedProvider, types.GetErrorCode(err))

	assert.Equal(t, []Provider{Anthropic, OpenRouter, MiniMax}, All())
	for _, p := range All() {
		e, ok := EndpointFor(p)
		require.True(t, ok)
		assert.NotEmpty(t, e.DefaultModel)
	}
}

func TestValidateKey(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	future := signedJWT(t, jwt.MapClaims{"sub": "group-1", "exp": now.Add(time.Hour).Unix()})
	expired := signedJWT(t, jwt.MapClaims{"sub": "group-1", "exp": now.Add(-time.Hour).Unix()})
	noExpiry := signedJWT(t, jwt.MapClaims{"sub": "group-1"})

	tests := []struct {
		name     string
		provider Provider
		key      string
		code     types.ErrorCode
	}{
		{name: "anthropic ok", provider: Anthropic, key: anthropicKey},
		{name: "anthropic padded", provider: Anthropic, key: "  " + anthropicKey + "\n"},
		{name: "anthropic wrong prefix", provider: Anthropic, key: openRouterKey, code: types.ErrInvalidAPIKey},
		{name: "anthropic too short", provider: Anthropic, key: "sk-ant-x", code: types.ErrInvalidAPIKey},
		{name: "openrouter ok", provider: OpenRouter, key: openRouterKey},
		{name: "openrouter wrong prefix", provider: OpenRouter, key: anthropicKey, code: types.ErrInvalidAPIKey},
		{name: "empty", provider: OpenRouter, key: "   ", code: types.ErrInvalidAPIKey},
		{name: "minimax ok", provider: MiniMax, key: future},
		{name: "minimax without exp", provider: MiniMax, key: noExpiry},
		{name: "minimax expired", provider: MiniMax, key: expired, code: types.ErrInvalidAPIKey},
		{name: "minimax not a jwt", provider: MiniMax, key: "plain-key", code: types.ErrInvalidAPIKey},
		{name: "minimax garbage segments", provider: MiniMax, key: "a.b.c", code: types.ErrInvalidAPIKey},
		{name: "unknown provider", provider: "acme", key: anthropicKey, code: types.ErrUnsupportedProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateKeyAt(tt.provider, tt.key, now)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.code, types.GetErrorCode(err))
		})
	}
}

func TestValidateKey_ErrorCarriesProvider(t *testing.T) {
	err := ValidateKey(OpenRouter, "nope")

	var typed *types.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, "openrouter", typed.Provider)
	assert.NotContains(t, err.Error(), "nope", "the key is never echoed")
}

func TestBuildChatRequest_Anthropic(t *testing.T) {
	temp := 0.2
	req, err := BuildChatRequest(context.Background(), Anthropic, anthropicKey, ChatRequest{
		System:      "You are helpful.",
		Messages:    []Message{{Role: "user", Content: "Hello"}},
		Temperature: &temp,
	})
	require.NoError(t, err)

	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "https://api.anthropic.com/v1/messages", req.URL.String())
	assert.Equal(t, anthropicKey, req.Header.Get("x-api-key"))
	assert.Equal(t, anthropicVersion, req.Header.Get("anthropic-version"))
	assert.Empty(t, req.Header.Get("Authorization"))

	var body map[string]any
	decodeBody(t, req.Body, &body)
	assert.Equal(t, "claude-sonnet-4-5", body["model"])
	assert.Equal(t, float64(defaultMaxTokens), body["max_tokens"])
	assert.Equal(t, "You are helpful.", body["system"])
	assert.Equal(t, 0.2, body["temperature"])
	assert.Len(t, body["messages"], 1)
}

func TestBuildChatRequest_OpenRouter(t *testing.T) {
	req, err := BuildChatRequest(context.Background(), OpenRouter, openRouterKey, ChatRequest{
		Model:     "openai/gpt-4o",
		System:    "Be brief.",
		Messages:  []Message{{Role: "user", Content: "Hi"}, {Role: "assistant", Content: "Hello"}},
		MaxTokens: 256,
	}, WithBaseURL("http://localhost:8080/"), WithAppInfo("Agent Smith", "https://example.com"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/v1/chat/completions", req.URL.String())
	assert.Equal(t, "Bearer "+openRouterKey, req.Header.Get("Authorization"))
	assert.Equal(t, "Agent Smith", req.Header.Get("X-Title"))
	assert.Equal(t, "https://example.com", req.Header.Get("HTTP-Referer"))

	var body openAIRequest
	decodeBody(t, req.Body, &body)
	assert.Equal(t, "openai/gpt-4o", body.Model)
	assert.Equal(t, 256, body.MaxTokens)
	require.Len(t, body.Messages, 3)
	assert.Equal(t, Message{Role: "system", Content: "Be brief."}, body.Messages[0])
	assert.Nil(t, body.Temperature)
}

func TestBuildChatRequest_MiniMax(t *testing.T) {
	key := signedJWT(t, jwt.MapClaims{"sub": "group-1"})

	req, err := BuildChatRequest(context.Background(), MiniMax, key, ChatRequest{
		Messages: []Message{{Role: "user", Content: "Hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://api.minimax.io/v1/text/chatcompletion_v2", req.URL.String())
	assert.Equal(t, "Bearer "+key, req.Header.Get("Authorization"))
}

func TestBuildChatRequest_Errors(t *testing.T) {
	ctx := context.Background()
	ok := []Message{{Role: "user", Content: "Hi"}}

	_, err := BuildChatRequest(ctx, "acme", anthropicKey, ChatRequest{Messages: ok})
	assert.Equal(t, types.ErrUnsupportedProvider, types.GetErrorCode(err))

	_, err = BuildChatRequest(ctx, Anthropic, "bad", ChatRequest{Messages: ok})
	assert.Equal(t, types.ErrInvalidAPIKey, types.GetErrorCode(err))

	_, err = BuildChatRequest(ctx, Anthropic, anthropicKey, ChatRequest{})
	assert.Equal(t, types.ErrInvalidRequest, types.GetErrorCode(err))

	_, err = BuildChatRequest(ctx, OpenRouter, openRouterKey, ChatRequest{Messages: []Message{{Role: "system", Content: "x"}}})
	assert.Equal(t, types.ErrInvalidRequest, types.GetErrorCode(err))

	_, err = BuildChatRequest(ctx, Anthropic, anthropicKey, ChatRequest{Messages: ok}, WithBaseURL("://bad"))
	assert.Equal(t, types.ErrInvalidRequest, types.GetErrorCode(err))
}

func decodeBody(t *testing.T, body io.Reader, v any) {
	t.Helper()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}
