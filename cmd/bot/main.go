package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/esports-club/internal/app"
	"github.com/riskibarqy/esports-club/internal/config"
	"github.com/riskibarqy/esports-club/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateBot(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid bot config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName, "process", "bot")
	logging.SetDefault(logger)

	err = run(cfg, logger)
	if err != nil {
		logger.Error("bot exited", "error", err)
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run returns only after every deferred release has happened.
func run(cfg config.Config, logger *logging.Logger) error {
	stopObservability, err := app.StartObservability(cfg, logger)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}
	defer stopObservability()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	proc, err := app.NewBotProcess(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build bot: %w", err)
	}
	defer proc.Close()

	if err := proc.Bot.Start(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("webhook server starting", "addr", proc.Server.Addr)
		if err := proc.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := proc.Server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	select {
	case err := <-serveErr:
		return fmt.Errorf("webhook server: %w", err)
	default:
	}
	logger.Info("bot stopped")
	return nil
}
