package migration

import (
	"fmt"
	"log"
	"pantry-pilot/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults on the entity primary keys
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.InventoryEntry{}); err != nil {
		log.Fatalf("Error migrating inventory database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeIngredient{}); err != nil {
		log.Fatalf("Error migrating recipe ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SavedRecipe{}); err != nil {
		log.Fatalf("Error migrating saved recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroceryEntry{}); err != nil {
		log.Fatalf("Error migrating grocery database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
