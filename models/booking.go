package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking types
const (
	BookingTypeClassSession = "CLASS_SESSION"
	BookingTypeEvent        = "EVENT"
	BookingTypeSpaceRequest = "SPACE_REQUEST"
)

// Booking statuses. PENDING_PAYMENT is the only non-terminal state; a booking
// transitions out of it exactly once, and only via the webhook reconciler.
const (
	BookingStatusPendingPayment = "PENDING_PAYMENT"
	BookingStatusConfirmed      = "CONFIRMED"
	BookingStatusCancelled      = "CANCELLED"
	BookingStatusFailed         = "FAILED"
)

// IsTerminalStatus reports whether a booking status admits no further
// transitions in this subsystem.
func IsTerminalStatus(status string) bool {
	switch status {
	case BookingStatusConfirmed, BookingStatusCancelled, BookingStatusFailed:
		return true
	}
	return false
}

type Booking struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Type           string     `gorm:"type:varchar(20);not null;index" json:"type"`
	CustomerName   string     `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone  string     `gorm:"type:varchar(20);not null" json:"customer_phone"`
	CustomerEmail  string     `gorm:"type:varchar(255);not null" json:"customer_email"`
	ClassSessionID *uuid.UUID `gorm:"type:uuid;index" json:"class_session_id,omitempty"`
	EventID        *uuid.UUID `gorm:"type:uuid;index" json:"event_id,omitempty"`
	PreferredSlots *string    `gorm:"type:text" json:"preferred_slots,omitempty"`
	Notes          *string    `gorm:"type:text" json:"notes,omitempty"`
	Purpose        *string    `gorm:"type:text" json:"purpose,omitempty"`
	// AmountDue is in minor currency units (paise). Set once when the gateway
	// order is issued and never recomputed afterwards.
	AmountDue int            `gorm:"not null" json:"amount_due"`
	Status    string         `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
