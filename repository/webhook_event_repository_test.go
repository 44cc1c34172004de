package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"booking-service/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestEventExists_False(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormWebhookEventRepo(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "webhook_events"`)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	exists, err := repo.EventExists(context.Background(), "evt_unknown")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestEventExists_True(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormWebhookEventRepo(gormDB)

	rows := sqlmock.NewRows([]string{"id", "gateway_event_id", "gateway_order_id", "event_type", "payment_status", "outcome", "payload_json", "created_at"}).
		AddRow(1, "evt_1", "o1", "payment.captured", "captured", "APPLIED", "{}", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "webhook_events"`)).
		WillReturnRows(rows)

	exists, err := repo.EventExists(context.Background(), "evt_1")
	assert.NoError(t, err)
	assert.True(t, exists)
}
