package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	apperrors "booking-service/pkg/errors"
	"booking-service/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PassVerification is the front-of-house verification result. A wrong or
// fabricated code is an expected input, so Valid=false rides a success
// envelope rather than an error.
type PassVerification struct {
	Valid         bool           `json:"valid"`
	Pass          *VerifiedPass  `json:"pass,omitempty"`
	Event         *VerifiedEvent `json:"event,omitempty"`
	AttendeeName  string         `json:"attendeeName,omitempty"`
	BookingStatus string         `json:"bookingStatus,omitempty"`
}

type VerifiedPass struct {
	PassID        string     `json:"passId"`
	CheckInStatus string     `json:"checkInStatus"`
	CheckedInAt   *time.Time `json:"checkedInAt,omitempty"`
	CheckedInBy   *string    `json:"checkedInBy,omitempty"`
}

type VerifiedEvent struct {
	Name     string    `json:"name"`
	Venue    string    `json:"venue"`
	StartsAt time.Time `json:"startsAt"`
}

type PassService struct {
	passes   repository.PassRepository
	bookings repository.BookingRepository
	logger   *zap.Logger
}

func NewPassService(passes repository.PassRepository, bookings repository.BookingRepository, logger *zap.Logger) *PassService {
	return &PassService{passes: passes, bookings: bookings, logger: logger}
}

// VerifyPass looks up a pass by its identifier. Strictly read-only: check-in
// itself is a separate staff action and must never happen as a side effect of
// verification.
func (s *PassService) VerifyPass(ctx context.Context, passID string) (*PassVerification, *apperrors.Error) {
	passID = strings.ToUpper(strings.TrimSpace(passID))
	if passID == "" {
		return nil, apperrors.ErrPassIDRequired
	}

	pass, err := s.passes.GetPassByPassID(ctx, passID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return &PassVerification{Valid: false}, nil
		}
		s.logger.Error("Pass lookup failed", zap.String("pass_id", passID), zap.Error(err))
		return nil, apperrors.AsError(err)
	}

	verification := &PassVerification{
		Valid: true,
		Pass: &VerifiedPass{
			PassID:        pass.PassID,
			CheckInStatus: pass.CheckInStatus,
			CheckedInAt:   pass.CheckedInAt,
			CheckedInBy:   pass.CheckedInBy,
		},
	}

	if booking, err := s.bookings.GetBookingByID(ctx, pass.BookingID); err == nil {
		verification.AttendeeName = booking.CustomerName
		verification.BookingStatus = booking.Status
	}
	if event, err := s.bookings.GetEventByID(ctx, pass.EventID); err == nil {
		verification.Event = &VerifiedEvent{
			Name:     event.Name,
			Venue:    event.Venue,
			StartsAt: event.StartsAt,
		}
	}

	return verification, nil
}
