package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newBanksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List the question banks in the question file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			banks, err := loadBanks(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-30s  %9s\n", "Bank", "Questions")
			fmt.Fprintln(out, strings.Repeat("─", 41))

			total := 0
			for _, b := range banks {
				fmt.Fprintf(out, "%-30s  %9d\n", b.Name, b.Size())
				total += b.Size()
			}
			fmt.Fprintf(out, "\n%d banks, %d questions\n", len(banks), total)
			return nil
		},
	}
}
