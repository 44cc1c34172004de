package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is a bookable one-off happening at the venue.
type Event struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	Venue    string    `gorm:"type:varchar(255)" json:"venue"`
	StartsAt time.Time `json:"starts_at"`
	// Price in minor currency units (paise).
	Price     int       `gorm:"not null" json:"price"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ClassSession is a recurring class slot customers can reserve.
type ClassSession struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	StartsAt time.Time `json:"starts_at"`
	// Price in minor currency units (paise).
	Price     int       `gorm:"not null" json:"price"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
