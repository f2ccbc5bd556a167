package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-scheduler/internal/middleware"
)

// currentUserID pulls the authenticated user's id for audit trails.
func currentUserID(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

// localeFrom resolves the UI language for slot display labels.
func localeFrom(c *gin.Context) string {
	if l := c.Query("locale"); l == "ar" || l == "en" {
		return l
	}
	return "en"
}
