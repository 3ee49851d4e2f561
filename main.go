// @title QuizDesk API
// @version 1.0
// @description Backend service for the QuizDesk quiz platform.

// @host localhost:5000
// @BasePath /api

package main

import (
	"flag"
	"log"
	"quizdesk_backend/internal/app"
	"quizdesk_backend/internal/config"
	"quizdesk_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration finished, exiting")
		return
	}

	application.Run()
}
