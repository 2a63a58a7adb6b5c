// cmd/seed/main.go
package main

import (
	"log"

	"github.com/ecowardrobe/eco-wardrobe-backend/internal/config"
	"github.com/ecowardrobe/eco-wardrobe-backend/internal/database"
)

// Seeds an empty database with demo users and passports. Run once by
// infrastructure; safe to re-run, it does nothing when users exist.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := database.SeedSampleData(db); err != nil {
		log.Fatal("Failed to seed sample data:", err)
	}
}
