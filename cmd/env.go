package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/webdev100/internal/config"
	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/llm"
	"github.com/abhisek/webdev100/internal/logging"
	"github.com/abhisek/webdev100/internal/progress"
	"github.com/abhisek/webdev100/internal/store"
	"github.com/abhisek/webdev100/internal/tutor"
)

// loadConfig resolves --config, applies the persistent flag overrides and
// validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("content-dir"); v != "" {
		cfg.Content.Dir = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.Log.File = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the logger for a command. The TUI owns the terminal, so
// unless a log file is configured it gets a no-op logger.
func newLogger(cfg *config.Config, terminal bool) (*logging.Logger, error) {
	opts := logging.Options{Mode: cfg.Log.Mode, Level: cfg.Log.Level}
	switch {
	case cfg.Log.File != "":
		opts.OutputPaths = []string{cfg.Log.File}
	case terminal:
		return logging.Nop(), nil
	}
	return logging.New(opts)
}

func loadCatalog(dir string) (*curriculum.Catalog, error) {
	if dir == "" {
		return curriculum.Default()
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	return curriculum.Load(os.DirFS(dir))
}

// session is the per-run state shared by the TUI and the server: an
// in-memory journal and the tracker that writes to it.
type session struct {
	store    *store.Store
	journal  *store.Session
	progress *progress.Tracker
}

func openSession(cat *curriculum.Catalog, log *logging.Logger) (*session, error) {
	st, err := store.OpenMemory()
	if err != nil {
		return nil, fmt.Errorf("open session journal: %w", err)
	}
	journal := store.NewSession(st.JournalRepo())
	return &session{
		store:    st,
		journal:  journal,
		progress: progress.New(cat.Len(), progress.WithJournal(journal), progress.WithLogger(log)),
	}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

// newTutor returns a hint service. Without a configured provider the
// service is disabled rather than an error.
func newTutor(ctx context.Context, cfg llm.Config, sink llm.EventSink, log *logging.Logger) (*tutor.Service, error) {
	provider, err := llm.NewProvider(ctx, cfg, sink, log)
	switch {
	case errors.Is(err, llm.ErrDisabled):
		return tutor.NewService(nil, tutor.DefaultConfig()), nil
	case err != nil:
		return nil, fmt.Errorf("LLM provider: %w", err)
	}
	return tutor.NewService(provider, tutor.DefaultConfig()), nil
}
