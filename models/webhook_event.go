package models

import "time"

// Processing outcomes recorded with each webhook event.
const (
	WebhookOutcomeApplied   = "APPLIED"
	WebhookOutcomeDuplicate = "DUPLICATE"
	WebhookOutcomeAnomaly   = "ANOMALY"
	WebhookOutcomeNoOp      = "NO_OP"
)

// WebhookEvent stores each inbound gateway notification with deduplication
// metadata. The unique gateway event id is the idempotency key: a second
// delivery of the same event is acknowledged without reapplying anything.
type WebhookEvent struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	GatewayEventID string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"gateway_event_id"`
	GatewayOrderID string    `gorm:"type:varchar(64);index" json:"gateway_order_id"`
	EventType      string    `gorm:"type:varchar(100);not null" json:"event_type"`
	PaymentStatus  string    `gorm:"type:varchar(20)" json:"payment_status"`
	Outcome        string    `gorm:"type:varchar(20);not null" json:"outcome"`
	PayloadJSON    string    `gorm:"type:jsonb" json:"payload_json"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}
