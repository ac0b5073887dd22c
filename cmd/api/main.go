package main

import (
	"os"

	"github.com/kaan/campushub/internal/pkg/logger"
	"github.com/kaan/campushub/internal/server"
)

// @title CampusHub API
// @version 1.0
// @description API for CampusHub, a social network for university students

// @contact.name API Support
// @contact.email support@campushub.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in header
// @name Cookie
// @description Session cookie issued at login

func main() {
	// Initialize the server with all its dependencies
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
