package database

import (
	"booking-service/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the postgres connection. TranslateError is on so unique
// constraint violations surface as gorm.ErrDuplicatedKey, which pass issuance
// relies on for its bounded retry.
func Connect(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// Migrate runs automigrations for all persisted entities.
func Migrate() error {
	return DB.AutoMigrate(
		&models.Event{},
		&models.ClassSession{},
		&models.Booking{},
		&models.PaymentOrder{},
		&models.EventPass{},
		&models.WebhookEvent{},
	)
}
