// Copyright (c) AgentFlow Authors.
// Licensed under the MIT License.

/*
Package providers validates LLM provider API keys and builds chat requests
for Anthropic, OpenRouter and MiniMax.

ValidateKey checks the key shape only: Anthropic and OpenRouter keys by
prefix, MiniMax keys as JWTs. BuildChatRequest returns a ready *http.Request
with the provider's endpoint, authentication headers and JSON body; sending
it is left to the caller.
*/
package providers
