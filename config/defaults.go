package config

import "time"

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Catalog:   CatalogConfig{},
		Log:       DefaultLogConfig(),
		Metrics:   DefaultMetricsConfig(),
		Telemetry: DefaultTelemetryConfig(),
		Tokenizer: TokenizerConfig{Encoding: "cl100k_base"},
		Providers: ProvidersConfig{
			Default: "anthropic",
			Timeout: 30 * time.Second,
		},
	}
}

// DefaultLogConfig logs info and above to stderr in console format, keeping
// stdout free for command output.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:            "info",
		Format:           "console",
		OutputPaths:      []string{"stderr"},
		EnableCaller:     false,
		EnableStacktrace: false,
	}
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:   false,
		Namespace: "agentsmith",
	}
}

func DefaultTelemetryConfig() TelemetryConfig {
	return TelemetryConfig{
		Enabled:      false,
		OTLPEndpoint: "localhost:4317",
		ServiceName:  "agentsmith",
		SampleRate:   0.1,
	}
}
