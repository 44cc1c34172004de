package controllers

import (
	"net/http"

	"booking-service/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// CreateOrder mints a gateway order for a pending booking and returns the
// checkout parameters. The amount is never taken from the request.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		BookingID string `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "bookingId is required"})
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid bookingId"})
		return
	}

	params, appErr := oc.Orders.CreateOrder(c.Request.Context(), bookingID)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"success": false, "error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, params)
}
