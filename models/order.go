package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentOrder links a booking to the payment-gateway order minted for it.
// At most one order exists per booking (unique booking index); the amount is
// the booking's server-computed amount, never a client-supplied value.
type PaymentOrder struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BookingID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"booking_id"`
	GatewayOrderID string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"gateway_order_id"`
	Amount         int       `gorm:"not null" json:"amount"`
	Currency       string    `gorm:"type:varchar(10);not null" json:"currency"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
