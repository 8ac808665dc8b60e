// Package telemetry sets up the OpenTelemetry SDK for agentsmith. When
// telemetry is disabled the global noop providers stay in place and nothing
// connects to a collector.
package telemetry
