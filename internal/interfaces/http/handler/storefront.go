package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quinntest007-creator/QueueBlaze/internal/application/catalog"
	"github.com/quinntest007-creator/QueueBlaze/internal/application/settings"
)

// StorefrontHandler serves the read-only catalog and settings snapshots.
// Both return bare JSON rather than the admin envelope.
type StorefrontHandler struct {
	BaseHandler
	products *catalog.ProductService
	settings *settings.SettingsService
}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler(products *catalog.ProductService, settings *settings.SettingsService) *StorefrontHandler {
	return &StorefrontHandler{products: products, settings: settings}
}

// ListProducts handles GET /api/products
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	products, err := h.products.ListActive(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetSettings handles GET /api/settings
func (h *StorefrontHandler) GetSettings(c *gin.Context) {
	s, err := h.settings.GetPublic(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
