package main

import (
	"log"
	"log/slog"
	"os"

	"danawa-backend/internal/config"
	"danawa-backend/internal/database"
	"danawa-backend/internal/logs"
	"danawa-backend/internal/server"
	"danawa-backend/internal/spa"

	"github.com/spf13/afero"
)

func main() {
	// Load configuration (.env is optional)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, logWriter := logs.New(cfg)
	slog.SetDefault(logger)

	// In-memory collections; a real datastore would connect here
	store, err := database.InitDB(logger)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Pre-built frontend bundle
	dist := afero.NewBasePathFs(afero.NewOsFs(), cfg.DistDir)

	app := server.New(server.Deps{
		Store:     store,
		Logger:    logger,
		Resolver:  spa.Default(dist, cfg.DistDir, os.Getwd),
		AccessLog: logWriter,
	})

	logger.Info("Server started", slog.String("addr", "http://"+cfg.Addr()))

	// Start server
	if err := app.Listen(cfg.Addr()); err != nil {
		logger.Error("Server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
