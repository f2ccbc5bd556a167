package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-scheduler/internal/holidays"
	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
)

type HolidayHandler struct {
	service *holidays.Service
}

func NewHolidayHandler(service *holidays.Service) *HolidayHandler {
	return &HolidayHandler{service: service}
}

// ForYear returns the public holiday list the availability checks use.
// Defaults to the current year.
func (h *HolidayHandler) ForYear(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > 2100 {
			httperr.BadRequest(c, "invalid_year", "Year must be a four digit number.")
			return
		}
		year = parsed
	}

	c.JSON(http.StatusOK, gin.H{
		"year":     year,
		"holidays": h.service.ForYear(c.Request.Context(), year),
	})
}
