package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/httpresp"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

type CustomFieldHandler struct {
	db *gorm.DB
}

func NewCustomFieldHandler(db *gorm.DB) *CustomFieldHandler {
	return &CustomFieldHandler{db: db}
}

type CustomFieldRequest struct {
	Label    string   `json:"label" binding:"required"`
	Type     string   `json:"type" binding:"required,oneof=text number select date"`
	Options  []string `json:"options"`
	Required bool     `json:"required"`
}

func (h *CustomFieldHandler) List(c *gin.Context) {
	var fields []models.CustomField
	if err := h.db.Order("created_at ASC").Find(&fields).Error; err != nil {
		httperr.Internal(c, "failed_to_list_fields", "Could not load form fields.")
		return
	}
	httpresp.List(c, fields)
}

func (h *CustomFieldHandler) Create(c *gin.Context) {
	var req CustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid field payload.")
		return
	}

	field := models.CustomField{
		ID:       uuid.NewString(),
		Label:    req.Label,
		Type:     req.Type,
		Options:  req.Options,
		Required: req.Required,
	}

	if err := h.db.Create(&field).Error; err != nil {
		httperr.Internal(c, "failed_to_create_field", "Could not create the field.")
		return
	}

	c.JSON(http.StatusCreated, field)
}

func (h *CustomFieldHandler) Delete(c *gin.Context) {
	result := h.db.Where("id = ?", c.Param("id")).Delete(&models.CustomField{})
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_field", "Could not delete the field.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "field_not_found", "Field not found.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
