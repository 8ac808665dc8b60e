// Copyright (c) AgentFlow Authors.
// Licensed under the MIT License.

/*
Package types holds the data model shared by every other package. It imports
nothing from the module, so agent, providers and cmd packages can all depend
on it without cycles.

# Core types

  - AgentRequirements  what the user wants built, assembled from the interview
  - AgentTemplate      a catalog archetype with capability tags and a prompt skeleton
  - TemplateScore      one template's 0-100 fit with its matched and missing tags
  - AgentRecommendations the classifier output: prompt, MCP servers, steps, notes
  - PartialArchetypeResult a completeness-discounted preview for partial interviews
  - Error / ErrorCode  structured errors; GetErrorCode and IsErrorCode look
    through wrapping
*/
package types
