package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"disasterhub/internal/config"
	"disasterhub/internal/db"
	"disasterhub/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Fatalf("config: %v", err)
	}
	log := logger.New(cfg.LogLevel)
	log.Info("Starting seed script...")

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.WithField("driver", cfg.DBDriver).Info("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB, cfg.ResetDB, log); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	source := os.Getenv("SEED_SOURCE")
	fixture, err := loadFixture(source)
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}
	if source == "" {
		source = "embedded"
	}
	log.WithField("source", source).Info("Loaded fixture")

	seeder := newSeeder(gormDB, log)
	stats, err := seeder.Run(context.Background(), fixture)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.WithFields(logrus.Fields{
		"created": stats.Created,
		"skipped": stats.Skipped,
	}).Info("Seed completed successfully!")
}
