package main

import (
	"log"

	"github.com/NIRESH7/garments-backend/config"
	"github.com/NIRESH7/garments-backend/internal/models"
	"github.com/NIRESH7/garments-backend/pkg/database"
)

// Assigns inward numbers to receipts that predate automatic numbering.
// Safe to run more than once; receipts that already carry a number are
// left untouched.
func main() {
	config.LoadConfig()
	database.Connect()

	if err := database.Migrate(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	updated, err := models.BackfillInwardNumbers(database.DB)
	if err != nil {
		log.Fatalf("Backfill failed: %v", err)
	}
	log.Printf("Backfill completed: %d receipt(s) updated", updated)
}
