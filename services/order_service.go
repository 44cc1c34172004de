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

// CheckoutParams is everything a client needs to hand the gateway's checkout
// widget for a pending booking.
type CheckoutParams struct {
	OrderID       string `json:"orderId"`
	KeyID         string `json:"keyId"`
	Amount        int    `json:"amount"`
	Currency      string `json:"currency"`
	BookingID     string `json:"bookingId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
}

type OrderService struct {
	bookings repository.BookingRepository
	orders   repository.OrderRepository
	gateway  PaymentGateway
	currency string
	logger   *zap.Logger
}

func NewOrderService(
	bookings repository.BookingRepository,
	orders repository.OrderRepository,
	gateway PaymentGateway,
	currency string,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		bookings: bookings,
		orders:   orders,
		gateway:  gateway,
		currency: currency,
		logger:   logger,
	}
}

// CreateOrder mints a gateway order for a pending booking. The charge amount
// is always computed server-side from the booking; client input is only the
// booking id. Calling it again while the booking is still pending returns the
// existing order's checkout parameters instead of minting a second one.
func (s *OrderService) CreateOrder(ctx context.Context, bookingID uuid.UUID) (*CheckoutParams, *apperrors.Error) {
	booking, err := s.bookings.GetBookingByID(ctx, bookingID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.AsError(err)
	}

	if booking.Status != models.BookingStatusPendingPayment {
		return nil, apperrors.ErrBookingNotPending
	}

	if existing, err := s.orders.GetOrderByBookingID(ctx, bookingID); err == nil {
		return s.checkoutParams(booking, existing.GatewayOrderID, existing.Amount, existing.Currency), nil
	} else if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.AsError(err)
	}

	amount, appErr := s.chargeAmount(ctx, booking)
	if appErr != nil {
		return nil, appErr
	}

	gatewayOrder, err := s.gateway.CreateOrder(ctx, amount, s.currency, booking.ID.String(), map[string]interface{}{
		"booking_id":   booking.ID.String(),
		"booking_type": booking.Type,
	})
	if err != nil {
		s.logger.Warn("Gateway order creation failed",
			zap.String("booking_id", booking.ID.String()),
			zap.Error(err),
		)
		return nil, apperrors.Wrap(apperrors.ErrUpstream, err)
	}

	// Persist only after the gateway call succeeded; a failed call leaves no
	// partial order record behind.
	order := &models.PaymentOrder{
		BookingID:      booking.ID,
		GatewayOrderID: gatewayOrder.OrderID,
		Amount:         amount,
		Currency:       gatewayOrder.Currency,
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		s.logger.Error("Failed to persist payment order",
			zap.String("booking_id", booking.ID.String()),
			zap.String("gateway_order_id", gatewayOrder.OrderID),
			zap.Error(err),
		)
		return nil, apperrors.AsError(err)
	}

	if booking.AmountDue != amount {
		if err := s.bookings.SetAmountDue(ctx, booking.ID, amount); err != nil {
			s.logger.Error("Failed to record amount due on booking",
				zap.String("booking_id", booking.ID.String()),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("Payment order created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("gateway_order_id", gatewayOrder.OrderID),
		zap.Int("amount", amount),
	)
	return s.checkoutParams(booking, gatewayOrder.OrderID, amount, gatewayOrder.Currency), nil
}

// chargeAmount resolves the amount to collect from the booked entity, never
// from anything the client sent.
func (s *OrderService) chargeAmount(ctx context.Context, booking *models.Booking) (int, *apperrors.Error) {
	switch booking.Type {
	case models.BookingTypeEvent:
		event, err := s.bookings.GetEventByID(ctx, *booking.EventID)
		if err != nil {
			return 0, apperrors.AsError(err)
		}
		return event.Price, nil
	case models.BookingTypeClassSession:
		session, err := s.bookings.GetClassSessionByID(ctx, *booking.ClassSessionID)
		if err != nil {
			return 0, apperrors.AsError(err)
		}
		return session.Price, nil
	default:
		// Space requests are priced by staff before checkout.
		if booking.AmountDue <= 0 {
			return 0, apperrors.New(400, "Booking has no payable amount", nil)
		}
		return booking.AmountDue, nil
	}
}

func (s *OrderService) checkoutParams(booking *models.Booking, orderID string, amount int, currency string) *CheckoutParams {
	return &CheckoutParams{
		OrderID:       orderID,
		KeyID:         s.gateway.KeyID(),
		Amount:        amount,
		Currency:      currency,
		BookingID:     booking.ID.String(),
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		CustomerPhone: booking.CustomerPhone,
	}
}
