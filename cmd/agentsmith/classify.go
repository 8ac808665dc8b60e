package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/agent/advisor"
	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/agent/export"
)

const (
	formatMarkdown = "markdown"
	formatHTML     = "html"
	formatJSON     = "json"
)

func newClassifyCmd(a *app) *cobra.Command {
	var format, outDir string

	cmd := &cobra.Command{
		Use:   "classify <requirements-file|->",
		Short: "Recommend a template for one or more requirement sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			data, err := readInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			reqs, err := decodeRequirements(args[0], data)
			if err != nil {
				return err
			}
			reports, err := a.advisor.RecommendAll(cmd.Context(), reqs)
			if err != nil {
				return err
			}

			if outDir != "" {
				return a.writeReports(cmd.OutOrStdout(), outDir, format, reports)
			}
			return renderReports(cmd.OutOrStdout(), format, reports)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatMarkdown, "output format: markdown, html or json")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "write one file per plan into this directory")
	return cmd
}

func checkFormat(format string) error {
	switch format {
	case formatMarkdown, formatHTML, formatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (markdown, html, json)", format)
	}
}

func render(format string, r *advisor.Report) (string, error) {
	switch format {
	case formatHTML:
		return export.HTML(r.Markdown)
	case formatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode report: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return r.Markdown, nil
	}
}

func renderReports(w io.Writer, format string, reports []*advisor.Report) error {
	if format == formatJSON && len(reports) > 1 {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("encode reports: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprint(w, "\n---\n\n"); err != nil {
				return err
			}
		}
		out, err := render(format, r)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, out); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) writeReports(w io.Writer, dir, format string, reports []*advisor.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	for _, r := range reports {
		out, err := render(format, r)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, reportFilename(r.Requirements.Name, format))
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		a.logger.Info("plan written", zap.String("path", path), zap.String("report_id", r.ID))
		fmt.Fprintln(w, path)
	}
	return nil
}

func reportFilename(name, format string) string {
	base := export.Filename(name)
	switch format {
	case formatHTML:
		return strings.TrimSuffix(base, ".md") + ".html"
	case formatJSON:
		return strings.TrimSuffix(base, ".md") + ".json"
	default:
		return base
	}
}
