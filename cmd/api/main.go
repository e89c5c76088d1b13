package main

import (
	"flag"

	"github.com/campuskudos/backend/internal/bootstrap"
	"github.com/campuskudos/backend/internal/config"
	"github.com/campuskudos/backend/internal/pkg/logger"
	"github.com/campuskudos/backend/internal/server"
)

// @title CampusKudos API
// @version 1.0
// @description Peer recognition credits economy for a student community
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize application")
	}

	if err := server.Run(app); err != nil {
		logger.Fatal().Err(err).Msg("Server error")
	}
}
