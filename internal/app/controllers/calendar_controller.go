package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bridgelms/bridgelms/internal/app/models/dto"
)

// CalendarController is a stub for the upcoming calendar integration
type CalendarController struct{}

// NewCalendarController creates a new CalendarController
func NewCalendarController() *CalendarController {
	return &CalendarController{}
}

// ListEvents returns an empty event list until the integration lands
// @Summary List calendar events
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DataResponse
// @Router /calendar/events [get]
func (c *CalendarController) ListEvents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"data":    []interface{}{},
		"message": "Calendar integration coming soon",
	})
}
