package repository

import (
	"context"
	"errors"

	"booking-service/models"

	"gorm.io/gorm"
)

type WebhookEventRepository interface {
	// EventExists reports whether a gateway event id has already been
	// recorded, i.e. the notification was processed before.
	EventExists(ctx context.Context, gatewayEventID string) (bool, error)
	CreateEvent(ctx context.Context, event *models.WebhookEvent) error
}

type gormWebhookEventRepo struct {
	db *gorm.DB
}

func NewGormWebhookEventRepo(db *gorm.DB) WebhookEventRepository {
	return &gormWebhookEventRepo{db: db}
}

func (r *gormWebhookEventRepo) EventExists(ctx context.Context, gatewayEventID string) (bool, error) {
	var event models.WebhookEvent
	err := r.db.WithContext(ctx).Where("gateway_event_id = ?", gatewayEventID).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *gormWebhookEventRepo) CreateEvent(ctx context.Context, event *models.WebhookEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}
