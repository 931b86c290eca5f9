package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/qtime/internal/sentiment"
)

func newClassifyCmd() *cobra.Command {
	var naive, explain bool
	cmd := &cobra.Command{
		Use:   "classify TEXT...",
		Short: "Show how replies to \"did you get it right?\" are read",
		Example: "  qtime classify yerp nadda\n" +
			"  qtime classify --explain \"sure thing\"",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, text := range args {
				switch {
				case naive:
					fmt.Fprintf(out, "%-20s  %s\n", text, label(sentiment.Naive(text)))
				case explain:
					printExplanation(out, sentiment.Default().Explain(text))
				default:
					r := sentiment.Classify(text)
					fmt.Fprintf(out, "%-20s  %s  %d/%d\n", text, label(r.Label), r.Votes, sentiment.K)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&naive, "naive", false, "Use the first-letter rule instead of the classifier")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show the nearest reference phrases")
	cmd.MarkFlagsMutuallyExclusive("naive", "explain")
	return cmd
}

func printExplanation(out io.Writer, e sentiment.Explanation) {
	fmt.Fprintf(out, "%s  %s  %d/%d\n", e.Input, label(e.Result.Label), e.Result.Votes, sentiment.K)
	if e.Exact {
		fmt.Fprintf(out, "  exact match for %q\n", e.Normalized)
		return
	}
	for _, n := range e.Neighbors {
		fmt.Fprintf(out, "  %-12s  %-8s  distance %d\n", n.Example, label(n.Label), n.Distance)
	}
	fmt.Fprintln(out, strings.Repeat("─", 36))
}

func label(positive bool) string {
	if positive {
		return "positive"
	}
	return "negative"
}
