package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/clinicdesk/clinic-scheduler/internal/domain/schedule"
	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

type ScheduleUpdateRequest struct {
	WorkingDays        []string `json:"working_days" binding:"required"`
	StartHour          string   `json:"start_hour" binding:"required"`
	EndHour            string   `json:"end_hour" binding:"required"`
	MaxPatientsPerSlot int      `json:"max_patients_per_slot" binding:"required,min=1"`
}

type ExceptionRequest struct {
	Date   string `json:"date" binding:"required"`
	Status string `json:"status" binding:"required,oneof=open closed"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	var s models.ClinicSettings
	if err := h.db.First(&s, 1).Error; err != nil {
		httperr.Internal(c, "settings_not_found", "Clinic settings are missing.")
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) UpdateSchedule(c *gin.Context) {
	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid schedule settings.")
		return
	}

	for _, hour := range []string{req.StartHour, req.EndHour} {
		if _, err := time.Parse("15:04", hour); err != nil {
			httperr.BadRequest(c, "invalid_hours", "Hours must be HH:mm.")
			return
		}
	}

	var s models.ClinicSettings
	if err := h.db.First(&s, 1).Error; err != nil {
		httperr.Internal(c, "settings_not_found", "Clinic settings are missing.")
		return
	}

	s.WorkingDays = req.WorkingDays
	s.StartHour = req.StartHour
	s.EndHour = req.EndHour
	s.MaxPatientsPerSlot = req.MaxPatientsPerSlot

	if err := h.db.Save(&s).Error; err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Could not save settings.")
		return
	}

	c.JSON(http.StatusOK, s)
}

// SetException forces one date open or closed regardless of the
// weekly pattern and the holiday list.
func (h *SettingsHandler) SetException(c *gin.Context) {
	var req ExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid exception payload.")
		return
	}

	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	var s models.ClinicSettings
	if err := h.db.First(&s, 1).Error; err != nil {
		httperr.Internal(c, "settings_not_found", "Clinic settings are missing.")
		return
	}

	if s.Exceptions == nil {
		s.Exceptions = map[string]string{}
	}
	s.Exceptions[req.Date] = req.Status

	if err := h.db.Save(&s).Error; err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Could not save the exception.")
		return
	}

	c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) ClearException(c *gin.Context) {
	date := c.Param("date")

	var s models.ClinicSettings
	if err := h.db.First(&s, 1).Error; err != nil {
		httperr.Internal(c, "settings_not_found", "Clinic settings are missing.")
		return
	}

	delete(s.Exceptions, date)

	if err := h.db.Save(&s).Error; err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Could not clear the exception.")
		return
	}

	c.JSON(http.StatusOK, s)
}
