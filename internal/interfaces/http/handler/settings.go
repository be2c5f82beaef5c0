package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/quinntest007-creator/QueueBlaze/internal/application/settings"
)

// SettingsHandler handles the admin site settings form
type SettingsHandler struct {
	BaseHandler
	settingsService *settings.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *settings.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles GET /api/admin/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	result, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// Update handles PUT /api/admin/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req settings.UpdateSettingsRequest
	if err := c.ShouldBind(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.settingsService.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}
