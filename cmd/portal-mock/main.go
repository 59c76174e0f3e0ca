// portal-mock serves the development stand-in for the job-portal backend on
// a local port (8000 by default, matching what the CLI expects).
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/jobhive/portal-client/internal/config"
	"github.com/jobhive/portal-client/internal/mockportal"
	"github.com/jobhive/portal-client/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadMock(context.Background())
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	server := mockportal.New(mockportal.Config{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Logger:    logger.Named("mockportal"),
	})

	log.Info().Str("port", cfg.Port).Msg("portal-mock listening")
	if err := server.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
