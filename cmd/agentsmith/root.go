package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/agent/advisor"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/agent/catalog"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/config"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/internal/ctxkeys"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/internal/metrics"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/internal/telemetry"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/internal/tokenizer"
)

const shutdownTimeout = 5 * time.Second

// app holds everything a command needs once configuration is resolved.
type app struct {
	configPath  string
	catalogPath string
	metricsFile string

	cfg       *config.Config
	logger    *zap.Logger
	telemetry *telemetry.Providers
	registry  *prometheus.Registry
	collector *metrics.Collector
	advisor   *advisor.Advisor
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "agentsmith",
		Short:         "Recommend an agent template and plan its implementation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(ctxkeys.WithSource(ctx, cmd.Name()))
			return a.setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&a.catalogPath, "catalog", "", "template catalog (YAML or JSON); overrides catalog.path")
	flags.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(
		newClassifyCmd(a),
		newPreviewCmd(a),
		newInterviewCmd(a),
		newTemplatesCmd(a),
		newKeysCmd(a),
		newRequestCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.catalogPath != "" {
		cfg.Catalog.Path = a.catalogPath
	}
	if a.metricsFile != "" {
		cfg.Metrics.Enabled = true
	}
	a.cfg = cfg
	a.logger = initLogger(cfg.Log)

	a.telemetry, err = telemetry.Init(ctx, cfg.Telemetry, a.logger, telemetry.WithVersion(Version))
	if err != nil {
		a.logger.Warn("failed to initialize telemetry", zap.Error(err))
	}

	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		if cat, err = catalog.LoadFile(cfg.Catalog.Path); err != nil {
			return err
		}
	}

	opts := []advisor.Option{
		advisor.WithLogger(a.logger),
		advisor.WithTokenCounter(tokenizer.New(cfg.Tokenizer.Encoding, a.logger)),
		advisor.WithTracer(a.telemetry.Tracer("agentsmith")),
	}
	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		a.collector = metrics.NewCollector(cfg.Metrics.Namespace, a.registry, a.logger)
		opts = append(opts, advisor.WithMetrics(a.collector))
	}
	a.advisor = advisor.New(cat, opts...)

	a.logger.Debug("agentsmith ready",
		zap.String("version", Version),
		zap.Int("templates", cat.Len()),
		zap.Bool("metrics", cfg.Metrics.Enabled),
	)
	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if a.logger == nil {
		return nil
	}
	defer func() { _ = a.logger.Sync() }()

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := a.telemetry.Shutdown(shutdownCtx); err != nil {
		a.logger.Warn("telemetry shutdown failed", zap.Error(err))
	}

	if a.metricsFile != "" && a.registry != nil {
		if err := prometheus.WriteToTextfile(a.metricsFile, a.registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
