// Copyright (c) AgentFlow Authors.
// Licensed under the MIT License.

/*
Package catalog holds the immutable set of agent templates the classifier ranks.

A Catalog is built once, either from the embedded built-in templates
(Default) or from a YAML/JSON document (LoadFile, LoadBytes), and is never
mutated afterwards. Loaders validate documents with Validate; New accepts any
slice so tests can inject custom or deliberately malformed catalogs.

Document format:

	version: "1"
	templates:
	  - id: data-analyst
	    name: Data Analyst
	    capability_tags: [data-processing, statistics]
	    ideal_for: [data analysis]
	    system_prompt: You are a meticulous data analyst.
*/
package catalog
