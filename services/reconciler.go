package services

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"booking-service/models"
	apperrors "booking-service/pkg/errors"
	"booking-service/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Gateway webhook event types the reconciler acts on.
const (
	EventPaymentCaptured = "payment.captured"
	EventPaymentFailed   = "payment.failed"
	EventOrderPaid       = "order.paid"
)

// passIssueAttempts bounds the generate-and-insert retry loop for pass id
// collisions.
const passIssueAttempts = 5

// WebhookPayload mirrors the gateway's notification body.
type WebhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID       string `json:"id"`
				OrderID  string `json:"order_id"`
				Amount   int    `json:"amount"`
				Currency string `json:"currency"`
				Status   string `json:"status"`
				Method   string `json:"method"`
			} `json:"entity"`
		} `json:"payment"`
		Order *struct {
			Entity struct {
				ID      string `json:"id"`
				Receipt string `json:"receipt"`
			} `json:"entity"`
		} `json:"order,omitempty"`
	} `json:"payload"`
}

// EventPublisher is the booking-events side channel. Publish failures are
// logged by the caller and never affect webhook acknowledgement.
type EventPublisher interface {
	Publish(ctx context.Context, event models.BookingEvent) error
}

// ReconcileResult reports what a webhook delivery did.
type ReconcileResult struct {
	Outcome   string
	BookingID string
	PassID    string
}

// Reconciler applies asynchronous payment notifications to bookings. It is
// the only component that moves a booking out of PENDING_PAYMENT.
type Reconciler struct {
	bookings  repository.BookingRepository
	orders    repository.OrderRepository
	passes    repository.PassRepository
	events    repository.WebhookEventRepository
	gateway   PaymentGateway
	publisher EventPublisher
	logger    *zap.Logger
}

func NewReconciler(
	bookings repository.BookingRepository,
	orders repository.OrderRepository,
	passes repository.PassRepository,
	events repository.WebhookEventRepository,
	gateway PaymentGateway,
	publisher EventPublisher,
	logger *zap.Logger,
) *Reconciler {
	return &Reconciler{
		bookings:  bookings,
		orders:    orders,
		passes:    passes,
		events:    events,
		gateway:   gateway,
		publisher: publisher,
		logger:    logger,
	}
}

// ProcessWebhook runs the full reconciliation algorithm for one delivery:
// signature check, idempotency check, order resolution, guarded state
// transition, pass issuance, and durable event recording. Any non-error
// return must be acknowledged 2xx by the caller; the gateway retries
// everything else with the same event id.
func (r *Reconciler) ProcessWebhook(ctx context.Context, rawBody []byte, signature, gatewayEventID string) (*ReconcileResult, *apperrors.Error) {
	// The signature is the only trust boundary between the public internet
	// and booking-state mutation. Nothing runs before it.
	if !r.gateway.VerifyWebhookSignature(rawBody, signature) {
		r.logger.Warn("Webhook signature verification failed",
			zap.String("gateway_event_id", gatewayEventID),
		)
		return nil, apperrors.ErrInvalidSignature
	}

	if gatewayEventID == "" {
		return nil, apperrors.ErrMissingEventID
	}

	var payload WebhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, apperrors.New(400, "Malformed webhook payload", err)
	}

	// At-least-once delivery: a gateway event id seen before is absorbed
	// silently, reapplying nothing.
	exists, err := r.events.EventExists(ctx, gatewayEventID)
	if err != nil {
		return nil, apperrors.AsError(err)
	}
	if exists {
		r.logger.Info("Skipping duplicate webhook delivery",
			zap.String("gateway_event_id", gatewayEventID),
		)
		return &ReconcileResult{Outcome: models.WebhookOutcomeDuplicate}, nil
	}

	gatewayOrderID := payload.Payload.Payment.Entity.OrderID
	order, err := r.orders.GetOrderByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown order: record the anomaly and ack, otherwise the
			// gateway retries forever.
			r.logger.Warn("Webhook references unknown gateway order",
				zap.String("gateway_event_id", gatewayEventID),
				zap.String("gateway_order_id", gatewayOrderID),
			)
			r.recordEvent(ctx, gatewayEventID, gatewayOrderID, &payload, rawBody, models.WebhookOutcomeAnomaly)
			return &ReconcileResult{Outcome: models.WebhookOutcomeAnomaly}, nil
		}
		return nil, apperrors.AsError(err)
	}

	result, appErr := r.applyTransition(ctx, order, &payload, gatewayEventID)
	if appErr != nil {
		return nil, appErr
	}

	r.recordEvent(ctx, gatewayEventID, gatewayOrderID, &payload, rawBody, result.Outcome)
	return result, nil
}

func (r *Reconciler) applyTransition(ctx context.Context, order *models.PaymentOrder, payload *WebhookPayload, gatewayEventID string) (*ReconcileResult, *apperrors.Error) {
	result := &ReconcileResult{BookingID: order.BookingID.String()}

	var target string
	switch payload.Event {
	case EventPaymentCaptured, EventOrderPaid:
		target = models.BookingStatusConfirmed
	case EventPaymentFailed:
		target = models.BookingStatusFailed
	default:
		r.logger.Info("Ignoring unhandled webhook event type",
			zap.String("gateway_event_id", gatewayEventID),
			zap.String("event_type", payload.Event),
		)
		result.Outcome = models.WebhookOutcomeNoOp
		return result, nil
	}

	// Guarded transition: only the delivery that flips PENDING_PAYMENT does
	// anything. A late or concurrent delivery observes applied=false and is
	// recorded without mutating — a CONFIRMED booking is never downgraded.
	applied, err := r.bookings.TransitionIfPending(ctx, order.BookingID, target)
	if err != nil {
		return nil, apperrors.AsError(err)
	}
	if !applied {
		r.logger.Info("Booking already terminal, webhook recorded without transition",
			zap.String("booking_id", order.BookingID.String()),
			zap.String("gateway_event_id", gatewayEventID),
			zap.String("event_type", payload.Event),
		)
		result.Outcome = models.WebhookOutcomeNoOp
		return result, nil
	}

	booking, err := r.bookings.GetBookingByID(ctx, order.BookingID)
	if err != nil {
		return nil, apperrors.AsError(err)
	}

	result.Outcome = models.WebhookOutcomeApplied

	switch target {
	case models.BookingStatusConfirmed:
		if booking.Type == models.BookingTypeEvent {
			passID, issueErr := r.issuePass(ctx, booking)
			if issueErr != nil {
				// Payment truly succeeded, so the booking stays CONFIRMED
				// and the webhook is still acked; failing it would make the
				// gateway retry a payment that already went through.
				r.logger.Error("Pass issuance failed after confirmation",
					zap.String("booking_id", booking.ID.String()),
					zap.Error(issueErr),
				)
				r.publish(ctx, models.BookingEvent{
					Type:      models.BookingEventPassIssuanceFailed,
					BookingID: booking.ID.String(),
					Amount:    order.Amount,
					Currency:  order.Currency,
					Timestamp: time.Now().UTC(),
				})
			} else {
				result.PassID = passID
			}
		}
		r.publish(ctx, models.BookingEvent{
			Type:      models.BookingEventConfirmed,
			BookingID: booking.ID.String(),
			PassID:    result.PassID,
			Amount:    order.Amount,
			Currency:  order.Currency,
			Timestamp: time.Now().UTC(),
		})
		r.logger.Info("Booking confirmed",
			zap.String("booking_id", booking.ID.String()),
			zap.String("gateway_event_id", gatewayEventID),
			zap.String("pass_id", result.PassID),
		)

	case models.BookingStatusFailed:
		r.publish(ctx, models.BookingEvent{
			Type:      models.BookingEventFailed,
			BookingID: booking.ID.String(),
			Amount:    order.Amount,
			Currency:  order.Currency,
			Timestamp: time.Now().UTC(),
		})
		r.logger.Info("Booking marked failed",
			zap.String("booking_id", booking.ID.String()),
			zap.String("gateway_event_id", gatewayEventID),
		)
	}

	return result, nil
}

// issuePass creates the admission pass for a confirmed event booking,
// regenerating the identifier on unique-constraint collisions up to
// passIssueAttempts times.
func (r *Reconciler) issuePass(ctx context.Context, booking *models.Booking) (string, error) {
	for attempt := 1; attempt <= passIssueAttempts; attempt++ {
		passID, err := GeneratePassID()
		if err != nil {
			return "", err
		}
		pass := &models.EventPass{
			PassID:        passID,
			BookingID:     booking.ID,
			EventID:       *booking.EventID,
			CheckInStatus: models.PassNotCheckedIn,
		}
		err = r.passes.CreatePass(ctx, pass)
		if err == nil {
			return passID, nil
		}
		if !stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return "", err
		}
		r.logger.Warn("Pass id collision, regenerating",
			zap.String("booking_id", booking.ID.String()),
			zap.Int("attempt", attempt),
		)
	}
	return "", apperrors.ErrPassIssuanceFailed
}

// recordEvent persists the webhook-event record that backs the idempotency
// check. A concurrent duplicate insert is fine: the unique index means the
// other delivery recorded it.
func (r *Reconciler) recordEvent(ctx context.Context, gatewayEventID, gatewayOrderID string, payload *WebhookPayload, rawBody []byte, outcome string) {
	event := &models.WebhookEvent{
		GatewayEventID: gatewayEventID,
		GatewayOrderID: gatewayOrderID,
		EventType:      payload.Event,
		PaymentStatus:  payload.Payload.Payment.Entity.Status,
		Outcome:        outcome,
		PayloadJSON:    string(rawBody),
	}
	if err := r.events.CreateEvent(ctx, event); err != nil && !stderrors.Is(err, gorm.ErrDuplicatedKey) {
		r.logger.Error("Failed to record webhook event",
			zap.String("gateway_event_id", gatewayEventID),
			zap.Error(err),
		)
	}
}

func (r *Reconciler) publish(ctx context.Context, event models.BookingEvent) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.Publish(ctx, event); err != nil {
		r.logger.Error("Failed to publish booking event",
			zap.String("event_type", event.Type),
			zap.String("booking_id", event.BookingID),
			zap.Error(err),
		)
	}
}
