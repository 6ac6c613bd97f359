package migration

import (
	"fmt"
	"log"

	"smart-recipes-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FavoriteRecipe{}); err != nil {
		log.Fatalf("Error migrating favorite recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DoneRecipe{}); err != nil {
		log.Fatalf("Error migrating done recipe database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
