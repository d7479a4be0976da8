package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamusis/docnav/internal/api"
)

var flagServeListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the loaded documentation over a read-only JSON API",
	Long: `Serve sections and search over HTTP.

Endpoints:
  GET /health
  GET /api/sections
  GET /api/sections/{sectionID}
  GET /api/search?q=<query>&limit=<n>`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeListen, "listen", "", "Listen address (default from config listen, :8090)")
	rootCmd.AddCommand(serveCmd)
}

// serverLogLevel is the configured level, or info when none was set so that
// requests are logged by default.
func serverLogLevel() slog.Level {
	if logLevelSet {
		return logLevel
	}
	return slog.LevelInfo
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, cat, err := loadCatalog()
	if err != nil {
		return err
	}
	addr := cfg.Listen
	if flagServeListen != "" {
		addr = flagServeListen
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: serverLogLevel()}))
	srv := api.NewServer(cat, log, cfg.SearchLimit)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Graceful shutdown.
	go func() {
		<-ctx.Done()
		log.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting docnav api", "addr", addr, "sections", len(cat.Sections()))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
