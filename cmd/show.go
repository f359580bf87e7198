package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <day>",
	Short: "Print one day's lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		width, _ := cmd.Flags().GetInt("width")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg.Content.Dir)
		if err != nil {
			return fmt.Errorf("load curriculum: %w", err)
		}

		l, err := lookupDay(cat, args[0])
		if err != nil {
			return err
		}

		style := render.StyleDark
		if plain {
			style = render.StylePlain
		}
		out := render.Lesson(render.NewMarkdown(style), l, render.LessonOptions{Width: width, Plain: plain})
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("plain", false, "Disable colors and styling")
	showCmd.Flags().Int("width", 80, "Wrap width")
}

// lookupDay parses a day argument and fetches its lesson.
func lookupDay(cat *curriculum.Catalog, arg string) (curriculum.DayLesson, error) {
	day, err := strconv.Atoi(arg)
	if err != nil {
		return curriculum.DayLesson{}, fmt.Errorf("day %q is not a number", arg)
	}
	l, err := cat.Get(day)
	if errors.Is(err, curriculum.ErrLessonNotFound) {
		return curriculum.DayLesson{}, fmt.Errorf("no lesson for day %d", day)
	}
	return l, err
}
