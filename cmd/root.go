package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/qtime/internal/bankfile"
	"github.com/abhisek/qtime/internal/config"
	"github.com/abhisek/qtime/internal/logging"
	"github.com/abhisek/qtime/internal/quiz"
)

// Execute runs the qtime command tree.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qtime",
		Short: "Flashcard quizzes in the terminal",
		Long: "Question Time: study question banks as flashcards. Missed questions come back " +
			"until you get them right, and you can say so in your own words.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStudy(cmd, studyFlags{})
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to config file (overrides QTIME_CONFIG env var)")
	flags.String("banks", "", "Question file, tagged text or .json (overrides config)")
	flags.String("judge", "", "How replies are read: sentiment or keystroke (overrides config)")
	flags.String("log-level", "", "Log level: debug, info, warn or error (overrides config)")

	root.AddCommand(newStudyCmd())
	root.AddCommand(newBanksCmd())
	root.AddCommand(newClassifyCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// loadConfig resolves the config file, QTIME_* variables and command-line
// flags, in increasing priority.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if v, _ := cmd.Flags().GetString("banks"); v != "" {
		cfg.Banks = v
	}
	if v, _ := cmd.Flags().GetString("judge"); v != "" {
		cfg.Judge = config.JudgeMode(v)
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	return cfg, cfg.Validate()
}

// loadBanks reads the question file named by cfg.
func loadBanks(cfg config.Config) ([]quiz.QuestionBank, error) {
	opts := bankfile.DefaultOptions()
	opts.DefaultBank = cfg.DefaultBank

	banks, err := bankfile.Load(cfg.Banks, opts)
	if err != nil {
		return nil, fmt.Errorf("load banks from %s: %w", cfg.Banks, err)
	}
	return banks, nil
}

// newLogger builds the command logger. Without a log file, records go to
// fallback.
func newLogger(cfg config.Config, fallback io.Writer) (*slog.Logger, func(), error) {
	logger, closer, err := logging.New(cfg.Log, fallback)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = closer.Close() }, nil
}
