package initializers

import (
	"log"

	"github.com/bitebuddy/bitebuddy-api/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Database migration failed: ", err)
	}
	log.Println("Database synced successfully.")
}
