// Copyright (c) AgentFlow Authors.
// Licensed under the MIT License.

/*
Command agentsmith recommends an agent template for a set of requirements
and renders an implementation plan.

# Commands

  - classify   read requirements (YAML or JSON, one object or a list) and
    print the plan as markdown, html or json
  - preview    show the emerging archetype for a partial interview
  - interview  run the guided interview on stdin and print the plan
  - templates  list the catalog
  - keys check validate provider API key shapes offline
  - request    print the chat request that would exercise a generated prompt
  - version    print build information

Configuration comes from --config (YAML) and AGENTSMITH_* environment
variables. --catalog replaces the built-in templates and --metrics-file
writes the run's Prometheus metrics in text format on exit.
*/
package main
