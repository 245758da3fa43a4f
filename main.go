// @title Learnify API
// @version 1.0
// @description Backend for the Learnify learning platform: courses, lessons,
// @description articles with comments and ratings, PDF uploads with full-text
// @description search and a project idea recommender.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"learnify_backend/internal/app"
	"learnify_backend/internal/config"
	"learnify_backend/pkg/configwatcher"
	"learnify_backend/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run the database migration and exit")
	migrate := flag.Bool("migrate", false, "force the migration on startup, even in release mode")
	flag.Parse()

	// A missing .env is fine; the config falls back to the yaml file and
	// LEARNIFY_* variables.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", func(updated *config.Config) {
		application.Config = updated
	})

	application.Run()
}
