package services

import (
	"context"
	stderrors "errors"

	"booking-service/models"
	apperrors "booking-service/pkg/errors"
	"booking-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateBookingRequest is the inbound booking-creation payload.
type CreateBookingRequest struct {
	Type           string  `json:"type" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Phone          string  `json:"phone" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	ClassSessionID *string `json:"classSessionId,omitempty"`
	EventID        *string `json:"eventId,omitempty"`
	PreferredSlots *string `json:"preferredSlots,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	Purpose        *string `json:"purpose,omitempty"`
}

type BookingService struct {
	bookings repository.BookingRepository
	logger   *zap.Logger
}

func NewBookingService(bookings repository.BookingRepository, logger *zap.Logger) *BookingService {
	return &BookingService{bookings: bookings, logger: logger}
}

// CreateBooking validates the request, prices it from the referenced session
// or event, and creates the booking in PENDING_PAYMENT.
func (s *BookingService) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*models.Booking, *apperrors.Error) {
	booking := &models.Booking{
		ID:             uuid.New(),
		Type:           req.Type,
		CustomerName:   req.Name,
		CustomerPhone:  req.Phone,
		CustomerEmail:  req.Email,
		PreferredSlots: req.PreferredSlots,
		Notes:          req.Notes,
		Purpose:        req.Purpose,
		Status:         models.BookingStatusPendingPayment,
	}

	switch req.Type {
	case models.BookingTypeClassSession:
		if req.ClassSessionID == nil || req.EventID != nil {
			return nil, apperrors.New(400, "classSessionId is required for class session bookings", nil)
		}
		sessionID, err := uuid.Parse(*req.ClassSessionID)
		if err != nil {
			return nil, apperrors.New(400, "Invalid classSessionId", err)
		}
		session, err := s.bookings.GetClassSessionByID(ctx, sessionID)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.New(404, "Class session not found", nil)
			}
			return nil, apperrors.AsError(err)
		}
		booking.ClassSessionID = &session.ID
		booking.AmountDue = session.Price

	case models.BookingTypeEvent:
		if req.EventID == nil || req.ClassSessionID != nil {
			return nil, apperrors.New(400, "eventId is required for event bookings", nil)
		}
		eventID, err := uuid.Parse(*req.EventID)
		if err != nil {
			return nil, apperrors.New(400, "Invalid eventId", err)
		}
		event, err := s.bookings.GetEventByID(ctx, eventID)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.New(404, "Event not found", nil)
			}
			return nil, apperrors.AsError(err)
		}
		booking.EventID = &event.ID
		booking.AmountDue = event.Price

	case models.BookingTypeSpaceRequest:
		if req.ClassSessionID != nil || req.EventID != nil {
			return nil, apperrors.New(400, "Space requests cannot reference a session or event", nil)
		}

	default:
		return nil, apperrors.New(400, "Invalid booking type", nil)
	}

	if err := s.bookings.CreateBooking(ctx, booking); err != nil {
		s.logger.Error("Failed to create booking", zap.Error(err))
		return nil, apperrors.AsError(err)
	}

	s.logger.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("type", booking.Type),
	)
	return booking, nil
}

// GetBooking is the read behind client status polling. It never mutates.
func (s *BookingService) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, *apperrors.Error) {
	booking, err := s.bookings.GetBookingByID(ctx, bookingID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.AsError(err)
	}
	return booking, nil
}
