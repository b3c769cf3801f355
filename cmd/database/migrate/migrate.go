package migration

import (
	"FoodShare-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodListing{}); err != nil {
		log.Fatalf("Error migrating food listing database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodAnalysis{}); err != nil {
		log.Fatalf("Error migrating food analysis database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ImpactMetric{}); err != nil {
		log.Fatalf("Error migrating impact metric database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserActivity{}); err != nil {
		log.Fatalf("Error migrating user activity database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
