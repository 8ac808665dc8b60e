package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/agent/interview"
)

const (
	cmdBack = ":back"
	cmdSkip = ":skip"
	cmdDone = ":done"
)

func newInterviewCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "interview",
		Short: "Run the guided interview and print the plan",
		Long: `Run the guided interview on stdin and print the plan.

Answer each question on one line. Lists are comma separated. Enter an empty
line or :skip to skip an optional question, :back to revisit the previous one
and :done to finish early.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			responses, err := runInterview(cmd.InOrStdin(), out)
			if err != nil {
				return err
			}

			if preview, err := a.advisor.Preview(cmd.Context(), responses); err == nil && preview != nil {
				fmt.Fprintf(out, "\nLooks like a %s (%.0f%% confidence, %d%% complete).\n\n",
					preview.ArchetypeName, preview.Confidence, preview.DataCompleteness)
			}

			report, err := a.advisor.Recommend(cmd.Context(), interview.BuildRequirements(responses))
			if err != nil {
				return err
			}
			rendered, err := render(format, report)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatMarkdown, "output format: markdown, html or json")
	return cmd
}

// runInterview walks a Session with answers read line by line from in.
// End of input finishes the interview with whatever was answered.
func runInterview(in io.Reader, out io.Writer) (interview.Responses, error) {
	session := interview.NewSession()
	scanner := bufio.NewScanner(in)

	for !session.Done() {
		q, _ := session.Current()
		done, total := session.Progress()
		fmt.Fprintf(out, "[%d/%d] %s", done+1, total, q.Prompt)
		if len(q.Options) > 0 {
			fmt.Fprintf(out, " (%s)", strings.Join(q.Options, " / "))
		}
		fmt.Fprint(out, "\n> ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("read answer: %w", err)
			}
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == cmdDone:
			return session.Responses(), nil
		case line == cmdBack:
			if !session.Back() {
				fmt.Fprintln(out, "Already at the first question.")
			}
			continue
		case line == "" || line == cmdSkip:
			if err := session.Skip(); err != nil {
				fmt.Fprintln(out, err)
			}
			continue
		}

		if err := session.Answer(line); err != nil {
			fmt.Fprintln(out, err)
		}
	}

	fmt.Fprintln(out)
	return session.Responses(), nil
}
