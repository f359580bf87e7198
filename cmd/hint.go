package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/webdev100/internal/tutor"
)

var hintCmd = &cobra.Command{
	Use:   "hint <day> <exercise-id>",
	Short: "Ask the AI tutor for a hint on one exercise",
	Long: `Ask the configured LLM for a hint on an exercise without starting the TUI.

Needs an API key, for example ANTHROPIC_API_KEY or OPENAI_API_KEY, or the
WEBDEV100_LLM_* variables. Nothing is recorded.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		attempt, _ := cmd.Flags().GetString("attempt")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := newLogger(cfg, false)
		if err != nil {
			return err
		}
		defer log.Sync()

		cat, err := loadCatalog(cfg.Content.Dir)
		if err != nil {
			return fmt.Errorf("load curriculum: %w", err)
		}
		l, err := lookupDay(cat, args[0])
		if err != nil {
			return err
		}
		ex, ok := l.Exercise(args[1])
		if !ok {
			ids := make([]string, len(l.Exercises))
			for i, e := range l.Exercises {
				ids[i] = e.ID
			}
			return fmt.Errorf("day %d has no exercise %q (have: %s)", l.Day, args[1], strings.Join(ids, ", "))
		}

		svc, err := newTutor(cmd.Context(), cfg.LLM, nil, log)
		if err != nil {
			return err
		}
		hint, err := svc.Hint(cmd.Context(), tutor.HintInput{Lesson: l, Exercise: ex, Attempt: attempt})
		if errors.Is(err, tutor.ErrNoProvider) {
			return errors.New("AI hints are not configured: set ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY or OPENROUTER_API_KEY")
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Day %d · %s\n\n", l.Day, ex.Title)
		fmt.Fprintln(out, hint.Text)
		if hint.Concept != "" {
			fmt.Fprintf(out, "\nConcept: %s\n", hint.Concept)
		}
		if hint.NextStep != "" {
			fmt.Fprintf(out, "Next:    %s\n", hint.NextStep)
		}
		return nil
	},
}

func init() {
	hintCmd.Flags().String("attempt", "", "What you tried so far")
}
