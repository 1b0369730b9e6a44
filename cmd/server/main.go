package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"codecheck/internal/app"
	"codecheck/internal/platform/config"
	"codecheck/internal/platform/logger"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
