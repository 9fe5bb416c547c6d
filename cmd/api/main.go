package main

import (
	"os"

	"github.com/findup-dz/findup-api/internal/pkg/logger"
	"github.com/findup-dz/findup-api/internal/server"
)

// @title FindUp API
// @version 1.0
// @description API for the FindUp formations and part-time jobs marketplace

// @contact.name API Support
// @contact.email support@findup.dz

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT session token

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
