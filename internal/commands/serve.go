package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/batchwatch/batchwatch/internal/config"
	"github.com/batchwatch/batchwatch/internal/engine"
	"github.com/batchwatch/batchwatch/internal/publish"
	"github.com/batchwatch/batchwatch/internal/server"
	"github.com/batchwatch/batchwatch/pkg/types"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the batchwatch HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	provs, err := newProviders(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating provider: %w", err)
	}

	ctx := context.Background()
	if provs.Start != nil {
		if err := provs.Start(ctx); err != nil {
			return fmt.Errorf("starting provider: %w", err)
		}
	}

	pub, err := publish.New(cfg.Publisher, logger)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}

	eng := engine.New(provs.Batches, provs.Profiles, logger,
		engine.WithConcurrency(concurrency(cfg)))

	srvCfg := &types.ServerConfig{Addr: ":3000"}
	if cfg.Server != nil {
		srvCfg = cfg.Server
		if srvCfg.Addr == "" {
			srvCfg.Addr = ":3000"
		}
	}
	srv := server.New(srvCfg, eng, provs.Reports, provs.Pinger, pub, logger)

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		color.Yellow("\nReceived %s, shutting down...", sig)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		color.Green("Server stopped gracefully")
		return nil
	}
}
