package models

import (
	"time"

	"github.com/google/uuid"
)

// Check-in states for an event pass. Check-in is one-way: once CHECKED_IN a
// pass never returns to NOT_CHECKED_IN through this service.
const (
	PassNotCheckedIn = "NOT_CHECKED_IN"
	PassCheckedIn    = "CHECKED_IN"
)

// EventPass is the admission credential issued when an EVENT booking is
// confirmed. Exactly one pass exists per confirmed event booking.
type EventPass struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PassID        string     `gorm:"type:varchar(16);uniqueIndex;not null" json:"pass_id"`
	BookingID     uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"booking_id"`
	EventID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"event_id"`
	CheckInStatus string     `gorm:"type:varchar(20);not null;default:'NOT_CHECKED_IN'" json:"check_in_status"`
	CheckedInAt   *time.Time `json:"checked_in_at,omitempty"`
	CheckedInBy   *string    `gorm:"type:varchar(255)" json:"checked_in_by,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
