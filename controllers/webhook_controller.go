package controllers

import (
	"io"
	"net/http"

	"booking-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Gateway webhook headers.
const (
	HeaderWebhookSignature = "X-Razorpay-Signature"
	HeaderWebhookEventID   = "X-Razorpay-Event-Id"
)

type WebhookController struct {
	Reconciler *services.Reconciler
	Logger     *zap.Logger
}

func NewWebhookController(reconciler *services.Reconciler, logger *zap.Logger) *WebhookController {
	return &WebhookController{Reconciler: reconciler, Logger: logger}
}

// HandleWebhook receives gateway payment notifications. It responds 2xx only
// after idempotent processing has completed; any other status makes the
// gateway redeliver the same event.
func (wc *WebhookController) HandleWebhook(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unreadable request body"})
		return
	}

	signature := c.GetHeader(HeaderWebhookSignature)
	eventID := c.GetHeader(HeaderWebhookEventID)

	result, appErr := wc.Reconciler.ProcessWebhook(c.Request.Context(), rawBody, signature, eventID)
	if appErr != nil {
		wc.Logger.Warn("Webhook rejected",
			zap.String("gateway_event_id", eventID),
			zap.Int("status", appErr.Code),
			zap.Error(appErr),
		)
		c.JSON(appErr.Code, gin.H{"success": false, "error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": result.Outcome})
}
