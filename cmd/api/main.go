package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/oguzk/coursereg/internal/pkg/logger"
	"github.com/oguzk/coursereg/internal/server"
)

// @title Course Preference Registration API
// @version 1.0
// @description Backend for submitting and adjudicating ordered course preferences

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http

func main() {
	// A missing .env file is fine; environment variables may already be set
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using process environment")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
