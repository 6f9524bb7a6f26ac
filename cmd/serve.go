package cmd

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opensession-curator/internal/model"
	"opensession-curator/internal/redisclient"
	"opensession-curator/internal/storage"
	"opensession-curator/worker"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
)

// serveCmd serves the artifact tree over HTTP (GET and HEAD, which is
// what the date probes use) and optionally runs the generation
// pipelines on an interval.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the artifact tree and optionally run scheduled generation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		e := echo.New()
		e.HideBanner = true
		e.Use(middleware.Logger())
		e.Use(middleware.Recover())
		// http.FileServer answers both GET and HEAD; the date probes
		// rely on HEAD.
		files := echo.WrapHandler(http.StripPrefix("/data/", http.FileServer(http.Dir(cfg.Paths.DataDir))))
		e.GET("/data/*", files)
		e.HEAD("/data/*", files)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		var ws []worker.Worker
		if cfg.Worker.Enabled {
			interval, err := time.ParseDuration(cfg.Worker.Interval)
			if err != nil {
				return err
			}
			rdb := redisclient.New(cfg.Redis)
			defer rdb.Close()
			ledger := storage.NewRunLedger(rdb)

			newsRun, err := newRun(cfg, model.NewsCategories, cfg.Generate.NewsPerFeed)
			if err != nil {
				return err
			}
			ideasRun, err := newRun(cfg, model.IdeaCategories, cfg.Generate.IdeasPerFeed)
			if err != nil {
				return err
			}
			ws = append(ws,
				&worker.Runner{Name: "news", Run: newsRun, Ledger: ledger, Interval: interval},
				&worker.Runner{Name: "ideas", Run: ideasRun, Ledger: ledger, Interval: interval},
			)
		}

		// Signal handling for systemd
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			s := <-sigc
			log.Printf("received signal: %s, shutting down", s)
			cancel()
		}()

		errc := make(chan error, 1)
		go func() {
			slog.Info("serve: listening", "addr", cfg.Server.Addr, "root", cfg.Paths.DataDir)
			if err := e.Start(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
				errc <- err
			}
		}()

		if len(ws) > 0 {
			mgr := worker.NewManager(ws...)
			go func() {
				if err := mgr.Start(ctx); err != nil {
					errc <- err
				}
			}()
		}

		select {
		case err := <-errc:
			cancel()
			return err
		case <-ctx.Done():
		}

		shutCtx, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutCancel()
		return e.Shutdown(shutCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
