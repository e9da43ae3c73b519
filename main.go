// main.go
package main

import (
	"log"

	"movie-scout/cmd"
	"movie-scout/internal/data/upstream"
	"movie-scout/internal/render"
	"movie-scout/internal/wire"
	"movie-scout/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("upstream", config.Upstream.BaseURL),
		zap.String("fetch_mode", config.Search.FetchMode),
	)

	// Initialize the HTML renderer
	renderer, err := render.New()
	if err != nil {
		logger.Fatal("Failed to load templates", zap.Error(err))
	}

	// Initialize the upstream gateway
	gateway := upstream.NewClient(config.Upstream, logger)

	// Wire all dependencies
	app := wire.Wiring(gateway, renderer, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
