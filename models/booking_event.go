package models

import "time"

// Booking lifecycle event types published to Kafka.
const (
	BookingEventConfirmed          = "booking.confirmed"
	BookingEventFailed             = "booking.failed"
	BookingEventPassIssuanceFailed = "pass.issuance_failed"
)

// BookingEvent is the message published on the booking-events topic after the
// reconciler applies a transition. Publishing is best-effort and never blocks
// the webhook acknowledgement.
type BookingEvent struct {
	Type      string    `json:"type"`
	BookingID string    `json:"booking_id"`
	PassID    string    `json:"pass_id,omitempty"`
	Amount    int       `json:"amount"`
	Currency  string    `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
}
