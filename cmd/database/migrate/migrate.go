package migration

import (
	"DineWise-Backend/entities"
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
	if err := db.AutoMigrate(&entities.Preferences{}); err != nil {
		log.Fatalf("Error migrating preferences database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Restaurant{}); err != nil {
		log.Fatalf("Error migrating restaurant database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Menu{}); err != nil {
		log.Fatalf("Error migrating menu database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Dish{}); err != nil {
		log.Fatalf("Error migrating dish database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Order{}); err != nil {
		log.Fatalf("Error migrating order database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.OrderItem{}); err != nil {
		log.Fatalf("Error migrating order item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Cart{}); err != nil {
		log.Fatalf("Error migrating cart database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CartItem{}); err != nil {
		log.Fatalf("Error migrating cart item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Conversation{}); err != nil {
		log.Fatalf("Error migrating conversation database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
