// @title ACES Unit Test API
// @version 1.0
// @description Backend for the ACES unit-test practice site: records exam
// @description attempts, serves score curves and statistics, and manages
// @description user accounts and admin sessions.

// @host localhost:8000
// @BasePath /api

package main

import (
	"flag"
	"log"

	"github.com/guanzhi08/aces-unit-test/internal/app"
	"github.com/guanzhi08/aces-unit-test/internal/config"
	"github.com/guanzhi08/aces-unit-test/pkg/logger"
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
		log.Println("Database migration completed, exiting")
		return
	}

	application.Run()
}
