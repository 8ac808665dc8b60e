// Package metrics provides internal metrics collection.
// This package is internal and should not be imported by external projects.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// scoreBuckets spans the 0-100 template score range.
var scoreBuckets = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

// Collector records recommendation service metrics.
type Collector struct {
	// Classification
	classificationsTotal   *prometheus.CounterVec
	classificationDuration *prometheus.HistogramVec
	topScore               *prometheus.HistogramVec

	// Preview
	previewsTotal     *prometheus.CounterVec
	previewConfidence prometheus.Histogram

	// Prompt
	promptTokens prometheus.Histogram

	// Provider keys
	keyChecksTotal *prometheus.CounterVec

	logger *zap.Logger
}

// NewCollector creates and registers the metrics on reg.
// A nil reg registers on prometheus.DefaultRegisterer.
func NewCollector(namespace string, reg prometheus.Registerer, logger *zap.Logger) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	factory := promauto.With(reg)

	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	c.classificationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Total number of classification requests",
		},
		[]string{"template", "complexity", "status"},
	)

	c.classificationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classification_duration_seconds",
			Help:      "Classification duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"status"},
	)

	c.topScore = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classification_top_score",
			Help:      "Score of the winning template",
			Buckets:   scoreBuckets,
		},
		[]string{"template"},
	)

	c.previewsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "previews_total",
			Help:      "Total number of partial interview previews",
		},
		[]string{"archetype"},
	)

	c.previewConfidence = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "preview_confidence",
			Help:      "Completeness-discounted confidence of previews",
			Buckets:   scoreBuckets,
		},
	)

	c.promptTokens = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "system_prompt_tokens",
			Help:      "Estimated token count of generated system prompts",
			Buckets:   prometheus.ExponentialBuckets(64, 2, 8),
		},
	)

	c.keyChecksTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_key_checks_total",
			Help:      "Total number of provider API key checks",
		},
		[]string{"provider", "result"},
	)

	c.logger.Debug("metrics collector initialized", zap.String("namespace", namespace))

	return c
}

// RecordClassification records a successful classification.
func (c *Collector) RecordClassification(template, complexity string, score float64, duration time.Duration) {
	c.classificationsTotal.WithLabelValues(template, complexity, StatusSuccess).Inc()
	c.classificationDuration.WithLabelValues(StatusSuccess).Observe(duration.Seconds())
	c.topScore.WithLabelValues(template).Observe(score)
}

// RecordClassificationError records a failed classification.
func (c *Collector) RecordClassificationError(duration time.Duration) {
	c.classificationsTotal.WithLabelValues("", "", StatusError).Inc()
	c.classificationDuration.WithLabelValues(StatusError).Observe(duration.Seconds())
}

// RecordPreview records a partial archetype preview.
func (c *Collector) RecordPreview(archetype string, confidence float64) {
	c.previewsTotal.WithLabelValues(archetype).Inc()
	c.previewConfidence.Observe(confidence)
}

// RecordPromptTokens records the estimated size of a generated system prompt.
func (c *Collector) RecordPromptTokens(tokens int) {
	c.promptTokens.Observe(float64(tokens))
}

// RecordKeyCheck records an API key validation.
func (c *Collector) RecordKeyCheck(provider string, valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	c.keyChecksTotal.WithLabelValues(provider, result).Inc()
}
