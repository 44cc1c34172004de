package controllers

import (
	"net/http"

	"booking-service/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

// CreateBooking registers a reservation request in PENDING_PAYMENT.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	booking, appErr := bc.Bookings.CreateBooking(c.Request.Context(), &req)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"success": false, "error": appErr.Message})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"bookingId": booking.ID.String(),
			"status":    booking.Status,
			"amount":    booking.AmountDue,
		},
	})
}

// GetBooking is the poller read: clients call it repeatedly until the booking
// reaches a terminal status. It never mutates anything.
func (bc *BookingController) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid booking id"})
		return
	}

	booking, appErr := bc.Bookings.GetBooking(c.Request.Context(), bookingID)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"success": false, "error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"bookingId": booking.ID.String(),
			"status":    booking.Status,
			"type":      booking.Type,
			"amount":    booking.AmountDue,
		},
	})
}
