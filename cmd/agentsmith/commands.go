package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/providers"
)

func newPreviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <responses-file|->",
		Short: "Show the emerging archetype for partial interview answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			responses, err := decodeResponses(args[0], data)
			if err != nil {
				return err
			}
			result, err := a.advisor.Preview(cmd.Context(), responses)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if result == nil {
				fmt.Fprintln(out, "No templates in catalog.")
				return nil
			}
			fmt.Fprintf(out, "Archetype:    %s (%s)\n", result.ArchetypeName, result.Archetype)
			fmt.Fprintf(out, "Confidence:   %.0f%%\n", result.Confidence)
			fmt.Fprintf(out, "Raw score:    %.0f%%\n", result.RawScore)
			fmt.Fprintf(out, "Completeness: %d%%\n", result.DataCompleteness)
			return nil
		},
	}
}

func newTemplatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the template catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCAPABILITIES")
			for _, t := range a.advisor.Templates() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.Name, strings.Join(t.CapabilityTags, ", "))
			}
			return tw.Flush()
		},
	}
}

func newKeysCmd(a *app) *cobra.Command {
	keys := &cobra.Command{
		Use:   "keys",
		Short: "Provider API key utilities",
	}

	var provider, key string
	check := &cobra.Command{
		Use:   "check",
		Short: "Validate API key shapes without contacting providers",
		Long: `Validate API key shapes without contacting providers.

With --provider, the key comes from --key or the configuration. Without it,
every configured provider key is checked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := a.keyTargets(provider, key)
			if err != nil {
				return err
			}
			if len(targets) == 0 {
				return errors.New("no API keys configured")
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, p := range providers.All() {
				k, ok := targets[p]
				if !ok {
					continue
				}
				err := providers.ValidateKey(p, k)
				if a.collector != nil {
					a.collector.RecordKeyCheck(string(p), err == nil)
				}
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s: invalid (%v)\n", p, err)
					continue
				}
				fmt.Fprintf(out, "%s: valid\n", p)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d keys invalid", failed, len(targets))
			}
			return nil
		},
	}
	check.Flags().StringVarP(&provider, "provider", "p", "", "provider to check (anthropic, openrouter, minimax)")
	check.Flags().StringVar(&key, "key", "", "key to check instead of the configured one")

	keys.AddCommand(check)
	return keys
}

func (a *app) keyTargets(name, key string) (map[providers.Provider]string, error) {
	targets := map[providers.Provider]string{}
	if name == "" {
		if key != "" {
			return nil, errors.New("--key requires --provider")
		}
		for _, p := range providers.All() {
			if k := a.cfg.Providers.APIKey(string(p)); k != "" {
				targets[p] = k
			}
		}
		return targets, nil
	}

	p, err := providers.Parse(name)
	if err != nil {
		return nil, err
	}
	if key == "" {
		key = a.cfg.Providers.APIKey(string(p))
	}
	targets[p] = key
	return targets, nil
}

func newRequestCmd(a *app) *cobra.Command {
	var provider, message, model string

	cmd := &cobra.Command{
		Use:   "request <requirements-file|->",
		Short: "Print the chat request that would exercise the generated system prompt",
		Long: `Print the chat request that would exercise the generated system prompt.

The request is built with the configured provider key but never sent.
Credentials are redacted in the output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if provider == "" {
				provider = a.cfg.Providers.Default
			}
			p, err := providers.Parse(provider)
			if err != nil {
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
			if len(reqs) != 1 {
				return fmt.Errorf("expected one requirements object, got %d", len(reqs))
			}

			ctx := cmd.Context()
			if timeout := a.cfg.Providers.Timeout; timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			report, err := a.advisor.Recommend(ctx, reqs[0])
			if err != nil {
				return err
			}
			httpReq, err := providers.BuildChatRequest(ctx, p, a.cfg.Providers.APIKey(string(p)), providers.ChatRequest{
				Model:    model,
				System:   report.Recommendation.SystemPrompt,
				Messages: []providers.Message{{Role: "user", Content: message}},
			}, providers.WithAppInfo("agentsmith", ""))
			if err != nil {
				return err
			}
			a.logger.Debug("chat request built", zap.String("provider", string(p)), zap.String("url", httpReq.URL.String()))
			return dumpRequest(cmd.OutOrStdout(), httpReq)
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", "", "provider (defaults to providers.default)")
	cmd.Flags().StringVarP(&message, "message", "m", "Hello! What can you help me with?", "first user message")
	cmd.Flags().StringVar(&model, "model", "", "model override")
	return cmd
}

var secretHeaders = map[string]bool{
	"Authorization": true,
	"X-Api-Key":     true,
}

func dumpRequest(w io.Writer, req *http.Request) error {
	fmt.Fprintf(w, "%s %s\n", req.Method, req.URL)

	names := make([]string, 0, len(req.Header))
	for name := range req.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		value := req.Header.Get(name)
		if secretHeaders[name] {
			value = "[REDACTED]"
		}
		fmt.Fprintf(w, "%s: %s\n", name, value)
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("read request body: %w", err)
	}
	fmt.Fprintf(w, "\n%s\n", body)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "agentsmith %s\n", Version)
			fmt.Fprintf(out, "  Build Time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
		},
	}
}
