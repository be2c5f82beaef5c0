package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/quinntest007-creator/QueueBlaze/internal/application/order"
)

// OrderHandler handles admin order requests
type OrderHandler struct {
	BaseHandler
	orderService *order.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles GET /api/admin/orders
func (h *OrderHandler) List(c *gin.Context) {
	var query order.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.orderService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Orders, result.Total, query.Page, query.PageSize)
}

// Get handles GET /api/admin/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// Update handles PUT /api/admin/orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req order.UpdateOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.orderService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete handles DELETE /api/admin/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Order deleted"})
}
