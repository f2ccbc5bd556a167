package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-scheduler/internal/config"
	"github.com/clinicdesk/clinic-scheduler/internal/httperr"
	"github.com/clinicdesk/clinic-scheduler/internal/imaging"
	"github.com/clinicdesk/clinic-scheduler/internal/infra/storage"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
)

type BrandingHandler struct {
	db       *gorm.DB
	uploader storage.Uploader
	cfg      *config.Config
}

func NewBrandingHandler(db *gorm.DB, uploader storage.Uploader, cfg *config.Config) *BrandingHandler {
	return &BrandingHandler{db: db, uploader: uploader, cfg: cfg}
}

type BrandingUpdateRequest struct {
	ClinicName    string            `json:"clinic_name" binding:"required"`
	Subtitle      string            `json:"subtitle"`
	DefaultLabels map[string]string `json:"default_labels"`
}

func (h *BrandingHandler) Update(c *gin.Context) {
	var req BrandingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid branding payload.")
		return
	}

	var s models.ClinicSettings
	if err := h.db.First(&s, 1).Error; err != nil {
		httperr.Internal(c, "settings_not_found", "Clinic settings are missing.")
		return
	}

	s.ClinicName = req.ClinicName
	s.Subtitle = req.Subtitle
	if req.DefaultLabels != nil {
		s.DefaultLabels = req.DefaultLabels
	}

	if err := h.db.Save(&s).Error; err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Could not save branding.")
		return
	}

	c.JSON(http.StatusOK, s)
}

// UploadLogo accepts a multipart image, normalizes it to a small WebP
// and stores it in the asset bucket.
func (h *BrandingHandler) UploadLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, "missing_logo", "Attach the logo as the 'logo' form field.")
		return
	}
	defer file.Close()

	if header.Size > h.cfg.MaxLogoBytes {
		httperr.BadRequest(c, "logo_too_large", "The logo exceeds the upload size limit.")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.cfg.MaxLogoBytes+1))
	if err != nil || int64(len(data)) > h.cfg.MaxLogoBytes {
		httperr.BadRequest(c, "logo_too_large", "The logo exceeds the upload size limit.")
		return
	}

	encoded, err := imaging.ProcessLogo(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The file is not a supported image.")
		return
	}

	key := "logos/" + uuid.NewString() + ".webp"
	url, err := h.uploader.Upload(c.Request.Context(), key, "image/webp", encoded)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_logo", "Could not store the logo.")
		return
	}

	var s models.ClinicSettings
	if err := h.db.First(&s, 1).Error; err != nil {
		httperr.Internal(c, "settings_not_found", "Clinic settings are missing.")
		return
	}
	s.LogoURL = url
	if err := h.db.Save(&s).Error; err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Could not save the logo URL.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}
