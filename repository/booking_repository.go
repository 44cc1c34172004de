package repository

import (
	"context"

	"booking-service/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	SetAmountDue(ctx context.Context, id uuid.UUID, amount int) error
	// TransitionIfPending atomically moves a booking out of PENDING_PAYMENT.
	// Returns true when this call applied the transition, false when the
	// booking was no longer pending (a concurrent delivery won the race).
	TransitionIfPending(ctx context.Context, id uuid.UUID, newStatus string) (bool, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	GetClassSessionByID(ctx context.Context, id uuid.UUID) (*models.ClassSession, error)
}

type gormBookingRepo struct {
	db *gorm.DB
}

func NewGormBookingRepo(db *gorm.DB) BookingRepository {
	return &gormBookingRepo{db: db}
}

func (r *gormBookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *gormBookingRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *gormBookingRepo) SetAmountDue(ctx context.Context, id uuid.UUID, amount int) error {
	return r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ?", id).
		Update("amount_due", amount).Error
}

func (r *gormBookingRepo) TransitionIfPending(ctx context.Context, id uuid.UUID, newStatus string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, models.BookingStatusPendingPayment).
		Update("status", newStatus)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *gormBookingRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *gormBookingRepo) GetClassSessionByID(ctx context.Context, id uuid.UUID) (*models.ClassSession, error) {
	var session models.ClassSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}
