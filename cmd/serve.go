package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/webdev100/internal/telemetry"
	"github.com/abhisek/webdev100/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the curriculum over HTTP",
	Long: `Serve lesson pages at / and a JSON API under /api. Progress is kept in
memory for as long as the server runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if v, _ := cmd.Flags().GetString("addr"); v != "" {
			cfg.Server.Addr = v
		}
		if cmd.Flags().Changed("tracing") {
			cfg.Server.Tracing, _ = cmd.Flags().GetBool("tracing")
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
		sess, err := openSession(cat, log)
		if err != nil {
			return err
		}
		defer sess.Close()

		if cfg.Server.Tracing {
			shutdown, err := telemetry.Init(ctx, log, telemetry.Config{
				Version:      version,
				OTLPEndpoint: cfg.Server.OTLPEndpoint,
				Insecure:     true,
				Writer:       os.Stderr,
			})
			if err != nil {
				return fmt.Errorf("init tracing: %w", err)
			}
			defer func() {
				flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(flushCtx); err != nil {
					log.Warn("flush traces", "error", err)
				}
			}()
		}

		srv, err := web.New(web.Config{
			Addr:            cfg.Server.Addr,
			AllowedOrigins:  cfg.Server.AllowedOrigins,
			Tracing:         cfg.Server.Tracing,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		}, web.Deps{
			Catalog:  cat,
			Progress: sess.progress,
			Session:  sess.journal,
			Log:      log,
		})
		if err != nil {
			return err
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return srv.Run(gctx)
		})
		if dir := cfg.Content.Dir; dir != "" {
			// Lessons are loaded once; edits are only checked and reported.
			g.Go(func() error {
				return watchContent(gctx, dir, watchDebounce, log, func() {
					if _, err := loadCatalog(dir); err != nil {
						log.Warn("content changed and no longer validates", "dir", dir, "error", err)
						return
					}
					log.Info("content changed, restart the server to pick it up", "dir", dir)
				})
			})
		}

		log.Info("serving curriculum", "addr", cfg.Server.Addr, "lessons", cat.Len(), "tracing", cfg.Server.Tracing)
		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default 127.0.0.1:8100)")
	serveCmd.Flags().Bool("tracing", false, "Export OpenTelemetry spans")
}
