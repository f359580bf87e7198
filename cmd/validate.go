package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/logging"
)

const watchDebounce = 300 * time.Millisecond

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check lesson files against the lesson schema",
	Long: `Validate the built-in lessons, or the YAML files in --dir. Every problem
is reported, not just the first. With --watch the directory is re-checked
whenever a file changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		watch, _ := cmd.Flags().GetBool("watch")
		out := cmd.OutOrStdout()

		if !watch {
			return validateContent(out, dir)
		}
		if dir == "" {
			return errors.New("--watch needs --dir")
		}

		_ = validateContent(out, dir)
		fmt.Fprintf(out, "Watching %s for changes (Ctrl+C to stop)\n", dir)
		return watchContent(cmd.Context(), dir, watchDebounce, logging.Nop(), func() {
			fmt.Fprintf(out, "\n[%s] change detected\n", time.Now().Format("15:04:05"))
			_ = validateContent(out, dir)
		})
	},
}

func init() {
	validateCmd.Flags().String("dir", "", "Lesson directory (default: built-in lessons)")
	validateCmd.Flags().Bool("watch", false, "Re-validate when files in --dir change")
}

// validateContent loads the lessons and prints either a summary or every
// problem found.
func validateContent(out io.Writer, dir string) error {
	var (
		cat *curriculum.Catalog
		err error
	)
	if dir == "" {
		cat, err = curriculum.Load(curriculum.Content())
	} else {
		cat, err = loadCatalog(dir)
	}

	var verr *curriculum.ValidationError
	switch {
	case errors.As(err, &verr):
		fmt.Fprintf(out, "✗ %d problem(s):\n", len(verr.Problems))
		for _, p := range verr.Problems {
			fmt.Fprintf(out, "  %s\n", p)
		}
		return err
	case err != nil:
		fmt.Fprintf(out, "✗ %v\n", err)
		return err
	}

	counts := cat.CategoryCounts()
	var parts []string
	for _, c := range curriculum.AllCategories() {
		if n := counts[c]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", c.DisplayName(), n))
		}
	}
	fmt.Fprintf(out, "✓ %d lessons OK (%s)\n", cat.Len(), strings.Join(parts, ", "))
	return nil
}

// watchContent calls onChange once per burst of YAML file events in dir,
// after debounce has passed without a new event. It returns when ctx is
// done.
func watchContent(ctx context.Context, dir string, debounce time.Duration, log *logging.Logger, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isLessonFile(ev.Name) || ev.Op == fsnotify.Chmod {
				continue
			}
			log.Debug("content changed", "file", ev.Name, "op", ev.Op.String())
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)
		case <-timer.C:
			onChange()
		}
	}
}

func isLessonFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
