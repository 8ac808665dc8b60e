// Copyright (c) AgentFlow Authors.
// Licensed under the MIT License.

/*
Package interview defines the guided interview that collects agent requirements.

It owns the question ids shared with the UI, the ordered question list, a
linear Session with back navigation, and BuildRequirements, a total coercion
from a loosely typed response map to types.AgentRequirements. Completeness
measures how many of the key classification fields have been answered and is
used to discount mid-interview archetype previews.
*/
package interview
