package main

import (
	"os"

	"github.com/Dermofet/MephiApp-sub000/internal/pkg/logger"
	"github.com/Dermofet/MephiApp-sub000/internal/server"
)

// @title MEPhI Free Rooms API
// @version 1.0
// @description Room availability and timetable administration for the MEPhI campus

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// setup functions have already logged the details
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
