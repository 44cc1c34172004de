package controllers

import (
	"net/http"

	apperrors "booking-service/pkg/errors"
	"booking-service/services"

	"github.com/gin-gonic/gin"
)

type PassController struct {
	Passes *services.PassService
}

func NewPassController(passes *services.PassService) *PassController {
	return &PassController{Passes: passes}
}

// VerifyPass reports whether a pass identifier is valid and, when it is, the
// pass, event and attendee summary. An unknown code is a negative result
// inside a success envelope, not an error.
func (pc *PassController) VerifyPass(c *gin.Context) {
	passID := c.Query("passId")
	if passID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": apperrors.ErrPassIDRequired.Message})
		return
	}

	verification, appErr := pc.Passes.VerifyPass(c.Request.Context(), passID)
	if appErr != nil {
		c.JSON(appErr.Code, gin.H{"success": false, "error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": verification})
}
