// Copyright (c) AgentFlow Authors.
// Licensed under the MIT License.

/*
Package classifier ranks agent templates against structured requirements.

# Scoring

ScoreTemplate adds four components into a raw score and normalises it to
0-100 with two decimals:

  - capability match: 10 points per required capability tag the template has
  - use-case alignment: 15 points per ideal_for phrase found in the primary
    outcome (either string containing the other), at most two
  - interaction style: 15 points when the template suits the requested style
  - capability requirements: 7 points per enabled file/web/data flag the
    template supports

Required tags come from the capability flags and from five keyword families
scanned over the lower-cased primary outcome.

# Classification

Classify takes the best-ranked template and derives the recommendation:
customized system prompt, MCP servers, complexity bucket, implementation
steps and notes. PartialArchetype runs the same scoring over an incomplete
interview and discounts the result by how many key answers are present.

A Classifier never mutates its catalog and is safe for concurrent use.

	c := classifier.New(catalog.Default(), logger)
	rec, err := c.Classify(&requirements)
*/
package classifier
