package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pet-health-log/internal/cli"
	"pet-health-log/internal/config"
	"pet-health-log/internal/platform/logger"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	opts := cfg.LoggerOptions()
	// los logs van a stderr para no mezclarse con la salida
	opts.Out = os.Stderr
	if os.Getenv("LOG_LEVEL") == "" {
		opts.Level = logger.Warn
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.New(cli.Deps{
		Out:    color.Output,
		Log:    logger.New(opts),
		Config: func() *config.Config { return cfg },
	})
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
