// Copyright (c) AgentFlow Authors.
// Licensed under the MIT License.

/*
Package metrics records Prometheus metrics for the recommendation service.

# Overview

Collector registers its metrics on the registerer it is given, so tests and
one-shot CLI runs can use a private prometheus.Registry. All metric names are
prefixed with the configured namespace.

# Metrics

  - classifications: total by template, complexity and status, duration,
    and the distribution of winning scores.
  - previews: partial-interview previews by archetype and their confidence.
  - prompt tokens: estimated size of generated system prompts.
  - key checks: provider API key validations by provider and result.
*/
package metrics
