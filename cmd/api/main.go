package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pet-health-log/internal/app"
	"pet-health-log/internal/config"
	"pet-health-log/internal/platform/logger"

	"github.com/joho/godotenv"
)

// @title Pet Health Log API
// @version 1.0
// @description Perfiles de mascotas con logs de peso, condición corporal y visitas al veterinario.
// @BasePath /
func main() {
	// .env es opcional (dev)
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LoggerOptions())

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", map[string]any{"err": err})
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Serve(ctx, cfg, log); err != nil {
		log.Error("server error", map[string]any{"err": err})
		os.Exit(1)
	}
}
