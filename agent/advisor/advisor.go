package advisor

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/agent/catalog"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/agent/classifier"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/agent/export"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/agent/interview"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/internal/ctxkeys"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/internal/metrics"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/internal/tokenizer"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/types"
)

const instrumentationName = "github.com/AmbitiousRealism2025/codename-agent-smith-sub000/agent/advisor"

// Report is the complete result of one recommendation run.
type Report struct {
	ID             string                      `json:"id"`
	BatchID        string                      `json:"batchId,omitempty"`
	CreatedAt      time.Time                   `json:"createdAt"`
	Requirements   types.AgentRequirements     `json:"requirements"`
	Recommendation *types.AgentRecommendations `json:"recommendation"`
	Scores         []types.TemplateScore       `json:"scores"`
	PromptTokens   int                         `json:"promptTokens"`
	Tokenizer      string                      `json:"tokenizer"`
	Markdown       string                      `json:"markdown"`
}

// Advisor turns requirements into recommendation reports.
type Advisor struct {
	classifier *classifier.Classifier
	logger     *zap.Logger
	metrics    *metrics.Collector
	tokens     tokenizer.Counter
	now        func() time.Time
	tracer     trace.Tracer
	runs       metric.Int64Counter
	batchLimit int
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(a *Advisor) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMetrics records Prometheus metrics on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(a *Advisor) { a.metrics = c }
}

// WithTokenCounter sets the prompt token counter. The default is the estimator.
func WithTokenCounter(c tokenizer.Counter) Option {
	return func(a *Advisor) {
		if c != nil {
			a.tokens = c
		}
	}
}

// WithClock overrides time.Now for report timestamps and durations.
func WithClock(now func() time.Time) Option {
	return func(a *Advisor) {
		if now != nil {
			a.now = now
		}
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(a *Advisor) {
		if t != nil {
			a.tracer = t
		}
	}
}

// WithBatchLimit bounds concurrent work in RecommendAll.
func WithBatchLimit(n int) Option {
	return func(a *Advisor) {
		if n > 0 {
			a.batchLimit = n
		}
	}
}

// New creates an advisor over cat.
func New(cat *catalog.Catalog, opts ...Option) *Advisor {
	a := &Advisor{
		logger:     zap.NewNop(),
		tokens:     tokenizer.NewEstimator(),
		now:        time.Now,
		tracer:     otel.Tracer(instrumentationName),
		batchLimit: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(zap.String("component", "advisor"))
	a.classifier = classifier.New(cat, a.logger)

	runs, err := otel.Meter(instrumentationName).Int64Counter("agentsmith.recommendations",
		metric.WithDescription("Recommendation runs by outcome"),
		metric.WithUnit("{run}"))
	if err != nil {
		a.logger.Warn("otel counter unavailable", zap.Error(err))
	}
	a.runs = runs

	return a
}

// Templates returns the catalog templates in order.
func (a *Advisor) Templates() []types.AgentTemplate {
	return a.classifier.Catalog().Templates()
}

// Recommend classifies req and assembles a report.
func (a *Advisor) Recommend(ctx context.Context, req types.AgentRequirements) (*Report, error) {
	ctx, span := a.tracer.Start(ctx, "advisor.Recommend",
		trace.WithAttributes(attribute.String("agent.name", req.Name)))
	defer span.End()

	start := a.now()

	rec, scores, err := a.classifier.ClassifyRanked(&req)
	if err != nil {
		return nil, a.fail(ctx, span, start, err)
	}

	batchID, _ := ctxkeys.BatchID(ctx)
	report := &Report{
		ID:             uuid.NewString(),
		BatchID:        batchID,
		CreatedAt:      start.UTC(),
		Requirements:   req,
		Recommendation: rec,
		Scores:         scores,
		PromptTokens:   a.tokens.Count(rec.SystemPrompt),
		Tokenizer:      a.tokens.Name(),
	}
	report.Markdown = export.Markdown(&req, rec, scores)

	elapsed := a.now().Sub(start)
	top := scores[0]
	span.SetAttributes(
		attribute.String("report.id", report.ID),
		attribute.String("agent.type", rec.AgentType),
		attribute.Float64("agent.score", top.Score),
		attribute.String("agent.complexity", string(rec.EstimatedComplexity)),
	)
	a.countRun(ctx, "success")
	if a.metrics != nil {
		a.metrics.RecordClassification(rec.AgentType, string(rec.EstimatedComplexity), top.Score, elapsed)
		a.metrics.RecordPromptTokens(report.PromptTokens)
	}

	a.logger.Info("recommendation ready", append(contextFields(ctx),
		zap.String("report_id", report.ID),
		zap.String("agent_type", rec.AgentType),
		zap.Float64("score", top.Score),
		zap.Int("prompt_tokens", report.PromptTokens),
		zap.Duration("elapsed", elapsed),
	)...)

	return report, nil
}

// RecommendAll runs Recommend for every requirement concurrently and returns
// reports in input order. The first error cancels the remaining work.
func (a *Advisor) RecommendAll(ctx context.Context, reqs []types.AgentRequirements) ([]*Report, error) {
	reports := make([]*Report, len(reqs))
	batchID := uuid.NewString()
	a.logger.Debug("batch started", zap.String("batch_id", batchID), zap.Int("size", len(reqs)))

	g, gctx := errgroup.WithContext(ctxkeys.WithBatchID(ctx, batchID))
	g.SetLimit(a.batchLimit)
	for i := range reqs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := a.Recommend(gctx, reqs[i])
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Preview reports the emerging archetype for an unfinished interview.
// It returns nil when the catalog is empty.
func (a *Advisor) Preview(ctx context.Context, responses interview.Responses) (*types.PartialArchetypeResult, error) {
	_, span := a.tracer.Start(ctx, "advisor.Preview",
		trace.WithAttributes(attribute.Int("responses", len(responses))))
	defer span.End()

	result, err := a.classifier.PartialArchetype(responses)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	span.SetAttributes(
		attribute.String("agent.archetype", result.Archetype),
		attribute.Float64("agent.confidence", result.Confidence),
		attribute.Int("interview.completeness", result.DataCompleteness),
	)
	if a.metrics != nil {
		a.metrics.RecordPreview(result.Archetype, result.Confidence)
	}
	return result, nil
}

func (a *Advisor) fail(ctx context.Context, span trace.Span, start time.Time, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	a.countRun(ctx, "error")
	if a.metrics != nil {
		a.metrics.RecordClassificationError(a.now().Sub(start))
	}
	a.logger.Warn("recommendation failed", append(contextFields(ctx),
		zap.String("code", string(types.GetErrorCode(err))),
		zap.Error(err),
	)...)
	return err
}

func contextFields(ctx context.Context) []zap.Field {
	var fields []zap.Field
	if id, ok := ctxkeys.BatchID(ctx); ok {
		fields = append(fields, zap.String("batch_id", id))
	}
	if src, ok := ctxkeys.Source(ctx); ok {
		fields = append(fields, zap.String("source", src))
	}
	return fields
}

func (a *Advisor) countRun(ctx context.Context, outcome string) {
	if a.runs == nil {
		return
	}
	a.runs.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
