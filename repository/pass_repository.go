package repository

import (
	"context"

	"booking-service/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PassRepository interface {
	// CreatePass inserts a pass. A colliding pass id or an already-issued
	// booking surfaces as gorm.ErrDuplicatedKey for the caller to handle.
	CreatePass(ctx context.Context, pass *models.EventPass) error
	GetPassByPassID(ctx context.Context, passID string) (*models.EventPass, error)
	GetPassByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.EventPass, error)
}

type gormPassRepo struct {
	db *gorm.DB
}

func NewGormPassRepo(db *gorm.DB) PassRepository {
	return &gormPassRepo{db: db}
}

func (r *gormPassRepo) CreatePass(ctx context.Context, pass *models.EventPass) error {
	return r.db.WithContext(ctx).Create(pass).Error
}

func (r *gormPassRepo) GetPassByPassID(ctx context.Context, passID string) (*models.EventPass, error) {
	var pass models.EventPass
	if err := r.db.WithContext(ctx).Where("pass_id = ?", passID).First(&pass).Error; err != nil {
		return nil, err
	}
	return &pass, nil
}

func (r *gormPassRepo) GetPassByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.EventPass, error) {
	var pass models.EventPass
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&pass).Error; err != nil {
		return nil, err
	}
	return &pass, nil
}
