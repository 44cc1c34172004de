package services_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"

	"booking-service/models"
	"booking-service/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ---- in-memory repositories with the same contract as the gorm impls ----

type mockBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*models.Booking
	events   map[uuid.UUID]*models.Event
	sessions map[uuid.UUID]*models.ClassSession
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{
		bookings: make(map[uuid.UUID]*models.Booking),
		events:   make(map[uuid.UUID]*models.Event),
		sessions: make(map[uuid.UUID]*models.ClassSession),
	}
}

func (m *mockBookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
	return nil
}

func (m *mockBookingRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *b
	return &copied, nil
}

func (m *mockBookingRepo) SetAmountDue(ctx context.Context, id uuid.UUID, amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.bookings[id]; ok {
		b.AmountDue = amount
	}
	return nil
}

func (m *mockBookingRepo) TransitionIfPending(ctx context.Context, id uuid.UUID, newStatus string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok || b.Status != models.BookingStatusPendingPayment {
		return false, nil
	}
	b.Status = newStatus
	return true, nil
}

func (m *mockBookingRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (m *mockBookingRepo) GetClassSessionByID(ctx context.Context, id uuid.UUID) (*models.ClassSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

type mockOrderRepo struct {
	mu     sync.Mutex
	orders []*models.PaymentOrder
	failOn error
}

func (m *mockOrderRepo) CreateOrder(ctx context.Context, order *models.PaymentOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn != nil {
		return m.failOn
	}
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockOrderRepo) GetOrderByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.PaymentOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.BookingID == bookingID {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderRepo) GetOrderByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*models.PaymentOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.GatewayOrderID == gatewayOrderID {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type mockPassRepo struct {
	mu sync.Mutex
	// collideFirst makes the first N inserts fail with a duplicate-key error
	// regardless of the generated id, simulating pass id collisions.
	collideFirst int
	passes       []*models.EventPass
}

func (m *mockPassRepo) CreatePass(ctx context.Context, pass *models.EventPass) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.collideFirst > 0 {
		m.collideFirst--
		return gorm.ErrDuplicatedKey
	}
	for _, p := range m.passes {
		if p.PassID == pass.PassID || p.BookingID == pass.BookingID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.passes = append(m.passes, pass)
	return nil
}

func (m *mockPassRepo) GetPassByPassID(ctx context.Context, passID string) (*models.EventPass, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.passes {
		if p.PassID == passID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPassRepo) GetPassByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.EventPass, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.passes {
		if p.BookingID == bookingID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type mockWebhookEventRepo struct {
	mu     sync.Mutex
	events map[string]*models.WebhookEvent
}

func newMockWebhookEventRepo() *mockWebhookEventRepo {
	return &mockWebhookEventRepo{events: make(map[string]*models.WebhookEvent)}
}

func (m *mockWebhookEventRepo) EventExists(ctx context.Context, gatewayEventID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.events[gatewayEventID]
	return ok, nil
}

func (m *mockWebhookEventRepo) CreateEvent(ctx context.Context, event *models.WebhookEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[event.GatewayEventID]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.events[event.GatewayEventID] = event
	return nil
}

// ---- gateway and publisher ----

type mockGateway struct {
	mu            sync.Mutex
	webhookSecret string
	createErr     error
	created       []struct {
		Amount   int
		Currency string
		Receipt  string
	}
}

func (g *mockGateway) CreateOrder(ctx context.Context, amount int, currency, receipt string, notes map[string]interface{}) (*services.GatewayOrder, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.created = append(g.created, struct {
		Amount   int
		Currency string
		Receipt  string
	}{amount, currency, receipt})
	return &services.GatewayOrder{OrderID: "order_test_1", Amount: amount, Currency: currency}, nil
}

func (g *mockGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	return signature != "" && signature == signBody(body, g.webhookSecret)
}

func (g *mockGateway) KeyID() string { return "rzp_test_key" }

// signBody computes the HMAC-SHA256 hex signature the gateway would send.
func signBody(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

type mockPublisher struct {
	mu        sync.Mutex
	published []models.BookingEvent
	err       error
}

func (p *mockPublisher) Publish(ctx context.Context, event models.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, event)
	return nil
}

var errGatewayDown = errors.New("gateway timeout")
