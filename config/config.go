package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Config is the complete agentsmith configuration.
type Config struct {
	Catalog   CatalogConfig   `yaml:"catalog" env:"CATALOG"`
	Log       LogConfig       `yaml:"log" env:"LOG"`
	Metrics   MetricsConfig   `yaml:"metrics" env:"METRICS"`
	Telemetry TelemetryConfig `yaml:"telemetry" env:"TELEMETRY"`
	Tokenizer TokenizerConfig `yaml:"tokenizer" env:"TOKENIZER"`
	Providers ProvidersConfig `yaml:"providers" env:"PROVIDERS"`
}

// CatalogConfig selects the template catalog.
type CatalogConfig struct {
	// Path to a YAML or JSON catalog document. Empty uses the built-in templates.
	Path string `yaml:"path" env:"PATH"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	// debug, info, warn, error
	Level string `yaml:"level" env:"LEVEL"`
	// json or console
	Format           string   `yaml:"format" env:"FORMAT"`
	OutputPaths      []string `yaml:"output_paths" env:"OUTPUT_PATHS"`
	EnableCaller     bool     `yaml:"enable_caller" env:"ENABLE_CALLER"`
	EnableStacktrace bool     `yaml:"enable_stacktrace" env:"ENABLE_STACKTRACE"`
}

// MetricsConfig configures the Prometheus collector.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled" env:"ENABLED"`
	Namespace string `yaml:"namespace" env:"NAMESPACE"`
}

// TelemetryConfig configures OpenTelemetry export.
type TelemetryConfig struct {
	Enabled      bool    `yaml:"enabled" env:"ENABLED"`
	OTLPEndpoint string  `yaml:"otlp_endpoint" env:"OTLP_ENDPOINT"`
	ServiceName  string  `yaml:"service_name" env:"SERVICE_NAME"`
	SampleRate   float64 `yaml:"sample_rate" env:"SAMPLE_RATE"`
}

// TokenizerConfig configures system prompt token estimation.
type TokenizerConfig struct {
	// Encoding is a tiktoken encoding name such as cl100k_base.
	Encoding string `yaml:"encoding" env:"ENCODING"`
}

// ProvidersConfig holds LLM provider credentials used by `keys check`.
type ProvidersConfig struct {
	Default          string        `yaml:"default" env:"DEFAULT"`
	AnthropicAPIKey  string        `yaml:"anthropic_api_key" env:"ANTHROPIC_API_KEY"`
	OpenRouterAPIKey string        `yaml:"openrouter_api_key" env:"OPENROUTER_API_KEY"`
	MiniMaxAPIKey    string        `yaml:"minimax_api_key" env:"MINIMAX_API_KEY"`
	Timeout          time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

var (
	logLevels       = []string{"debug", "info", "warn", "error"}
	logFormats      = []string{"json", "console"}
	providerNames   = []string{"anthropic", "openrouter", "minimax"}
	metricNamespace = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []string

	if !oneOf(c.Log.Level, logLevels) {
		errs = append(errs, fmt.Sprintf("log.level must be one of %s", strings.Join(logLevels, ", ")))
	}
	if !oneOf(c.Log.Format, logFormats) {
		errs = append(errs, fmt.Sprintf("log.format must be one of %s", strings.Join(logFormats, ", ")))
	}

	if c.Metrics.Enabled && !metricNamespace.MatchString(c.Metrics.Namespace) {
		errs = append(errs, "metrics.namespace must be a valid Prometheus name")
	}

	if c.Telemetry.Enabled && c.Telemetry.OTLPEndpoint == "" {
		errs = append(errs, "telemetry.otlp_endpoint is required when telemetry is enabled")
	}
	if c.Telemetry.SampleRate < 0 || c.Telemetry.SampleRate > 1 {
		errs = append(errs, "telemetry.sample_rate must be between 0 and 1")
	}

	if c.Providers.Default != "" && !oneOf(c.Providers.Default, providerNames) {
		errs = append(errs, fmt.Sprintf("providers.default must be one of %s", strings.Join(providerNames, ", ")))
	}
	if c.Providers.Timeout < 0 {
		errs = append(errs, "providers.timeout must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// APIKey returns the configured key for a provider name.
func (p ProvidersConfig) APIKey(provider string) string {
	switch provider {
	case "anthropic":
		return p.AnthropicAPIKey
	case "openrouter":
		return p.OpenRouterAPIKey
	case "minimax":
		return p.MiniMaxAPIKey
	default:
		return ""
	}
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
