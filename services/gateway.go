package services

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// GatewayOrder is the gateway-side order minted for a booking.
type GatewayOrder struct {
	OrderID  string
	Amount   int
	Currency string
}

// PaymentGateway abstracts the payment provider so services and tests never
// touch the SDK directly.
type PaymentGateway interface {
	// CreateOrder mints a gateway order for the given amount in minor
	// currency units. receipt ties the order back to the booking.
	CreateOrder(ctx context.Context, amount int, currency, receipt string, notes map[string]interface{}) (*GatewayOrder, error)
	// VerifyWebhookSignature checks the gateway signature over the raw
	// webhook body.
	VerifyWebhookSignature(body []byte, signature string) bool
	// KeyID is the public key clients use to initialize checkout.
	KeyID() string
}

type RazorpayGateway struct {
	client        *razorpay.Client
	keyID         string
	webhookSecret string
}

// gatewayTimeoutSeconds bounds every outbound gateway call.
const gatewayTimeoutSeconds = 10

func NewRazorpayGateway(keyID, keySecret, webhookSecret string) *RazorpayGateway {
	client := razorpay.NewClient(keyID, keySecret)
	client.SetTimeout(gatewayTimeoutSeconds)
	return &RazorpayGateway{
		client:        client,
		keyID:         keyID,
		webhookSecret: webhookSecret,
	}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int, currency, receipt string, notes map[string]interface{}) (*GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return nil, fmt.Errorf("razorpay order create: response missing order id")
	}

	return &GatewayOrder{OrderID: orderID, Amount: amount, Currency: currency}, nil
}

func (g *RazorpayGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	return utils.VerifyWebhookSignature(string(body), signature, g.webhookSecret)
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}
