package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/quinntest007-creator/QueueBlaze/internal/application/order"
)

// DashboardHandler serves the admin dashboard figures
type DashboardHandler struct {
	BaseHandler
	dashboard *order.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard *order.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Get handles GET /api/admin/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	result, err := h.dashboard.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}
