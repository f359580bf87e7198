package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/webdev100/internal/app"
	"github.com/abhisek/webdev100/internal/render"
	"github.com/abhisek/webdev100/internal/router"
	"github.com/abhisek/webdev100/internal/screen"
	"github.com/abhisek/webdev100/internal/selfupdate"
)

// runApp loads the catalog, opens a session and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer log.Sync()

	cat, err := loadCatalog(cfg.Content.Dir)
	if err != nil {
		return fmt.Errorf("load curriculum: %w", err)
	}
	sess, err := openSession(cat, log)
	if err != nil {
		return err
	}
	defer sess.Close()

	hints, err := newTutor(ctx, cfg.LLM, sess.journal, log)
	if err != nil {
		return err
	}
	defer hints.Wait()

	start := router.Home()
	if day, _ := cmd.Flags().GetInt("day"); cmd.Flags().Changed("day") {
		start = router.Parse(router.DayPath(day))
	}

	log.Info("starting TUI", "lessons", cat.Len(), "start", start.Path(), "hints", hints.Enabled())
	return app.Run(ctx, app.Options{
		Deps: &screen.Deps{
			Catalog:  cat,
			Progress: sess.progress,
			Session:  sess.journal,
			Tutor:    hints,
			Markdown: render.NewMarkdown(render.StyleDark),
			Log:      log,
		},
		Start:         start,
		LatestVersion: latestVersion(ctx),
	})
}

// latestVersion returns a newer release tag, or "" when there is none or
// the lookup fails. Development builds never check.
func latestVersion(ctx context.Context) string {
	if version == selfupdate.DevVersion {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	res, err := selfupdate.NewChecker().Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil || !res.UpdateAvailable {
		return ""
	}
	return res.LatestVersion
}
