package main

import (
	"log"

	"github.com/housielive/housie-backend/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("[FATAL] Failed to connect to database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatalf("[FATAL] Migration failed: %v", err)
	}
	log.Println("✅ Database migration completed")
}
