package routes

import (
	"net/http"

	"booking-service/controllers"
	"booking-service/middleware"
	apperrors "booking-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.Engine,
	bc *controllers.BookingController,
	oc *controllers.OrderController,
	wc *controllers.WebhookController,
	pc *controllers.PassController,
) {
	// Engine-level so OPTIONS preflights are answered even though no OPTIONS
	// route is registered.
	r.Use(middleware.CORS())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "error": apperrors.ErrMethodNotAllowed.Message})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": apperrors.ErrNotFound.Message})
	})

	api := r.Group("/api")

	api.POST("/bookings", bc.CreateBooking)
	api.GET("/bookings/:id", bc.GetBooking)
	api.POST("/orders", oc.CreateOrder)

	// Gateway webhook: authenticated by signature, not by session.
	api.POST("/payments/webhook", wc.HandleWebhook)

	// Public front-of-house endpoint, rate limited per IP.
	api.GET("/passes/verify", middleware.RateLimiter(5, 10), pc.VerifyPass)
}
