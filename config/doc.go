// Copyright (c) AgentFlow Authors.
// Licensed under the MIT License.

// Package config loads agentsmith configuration.
//
// Values come from built-in defaults, then an optional YAML file, then
// environment variables named after the `env` struct tags under a prefix
// (AGENTSMITH_LOG_LEVEL, AGENTSMITH_TELEMETRY_ENABLED, ...).
package config
