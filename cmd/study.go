package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/qtime/internal/app"
	"github.com/abhisek/qtime/internal/bankfile"
	"github.com/abhisek/qtime/internal/console"
	"github.com/abhisek/qtime/internal/quiz"
	"github.com/abhisek/qtime/internal/study"
)

type studyFlags struct {
	bank  string
	plain bool
}

func newStudyCmd() *cobra.Command {
	var f studyFlags
	cmd := &cobra.Command{
		Use:   "study",
		Short: "Study a question bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStudy(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.bank, "bank", "", "Bank to study, skipping the menu")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "Use the line-oriented console instead of the full-screen UI")
	return cmd
}

func runStudy(cmd *cobra.Command, f studyFlags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	banks, err := loadBanks(cfg)
	if err != nil {
		return err
	}
	judge, err := study.NewJudge(cfg.Judge, nil)
	if err != nil {
		return err
	}

	// The full-screen UI owns the terminal, so logs only go to a file.
	fallback := io.Discard
	if f.plain {
		fallback = cmd.ErrOrStderr()
	}
	logger, closeLog, err := newLogger(cfg, fallback)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("banks loaded", "path", cfg.Banks, "count", len(banks), "judge", cfg.Judge)

	if !f.plain {
		return app.Run(app.Options{
			Banks:  banks,
			Judge:  judge,
			Logger: logger,
			Start:  f.bank,
		})
	}

	c := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
	next := func() (quiz.QuestionBank, bool) {
		return console.ChooseMenu(c, banks)
	}
	if f.bank != "" {
		bank, ok := bankfile.Find(banks, f.bank)
		if !ok {
			return fmt.Errorf("%w: %q", bankfile.ErrUnknownBank, f.bank)
		}
		picked := false
		next = func() (quiz.QuestionBank, bool) {
			if picked {
				return quiz.QuestionBank{}, false
			}
			picked = true
			return bank, true
		}
	}

	for {
		bank, ok := next()
		if !ok {
			return nil
		}
		s, err := study.NewSession(bank, judge, study.WithLogger(logger))
		if err != nil {
			return err
		}
		if _, err := c.Study(s); err != nil {
			if errors.Is(err, console.ErrInputClosed) {
				return nil
			}
			return err
		}
	}
}
