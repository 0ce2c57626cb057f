package main

import (
	"log"
	"runtime"

	"food-menu/internal/app"
	"food-menu/internal/config"
	"food-menu/internal/logger"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger := logger.New(cfg.LogLevel, cfg.JSONLogs)
	appLogger.Info("Main", "runtime", map[string]interface{}{
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel.String(),
	})

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      app.AppID,
		Name:    app.AppName,
		Version: app.AppVersion,
	})
	fyneApp := fyneapp.NewWithID(app.AppID)

	application, err := app.NewApplication(fyneApp, cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
