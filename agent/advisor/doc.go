// Copyright (c) AgentFlow Authors.
// Licensed under the MIT License.

/*
Package advisor runs the classifier end to end and packages the result as a
Report: recommendation, full ranking, prompt token estimate and a rendered
Markdown plan. Each run is traced with OpenTelemetry and, when a collector is
supplied, counted in Prometheus.

	a := advisor.New(catalog.Default(), advisor.WithLogger(logger))
	report, err := a.Recommend(ctx, requirements)
*/
package advisor
