package order

import (
	"encoding/json"
	"time"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/order"
)

// ListOrdersQuery filters the admin order list
type ListOrdersQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled"`
	Search   string `form:"search" binding:"max=100"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// UpdateOrderRequest represents the admin order detail form
type UpdateOrderRequest struct {
	Status string  `json:"status" form:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
	Notes  *string `json:"notes" form:"notes"`
}

// AddressResponse is the delivery address of an order
type AddressResponse struct {
	Street     string `json:"street"`
	Suburb     string `json:"suburb"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
}

// OrderResponse represents an order in admin API responses
type OrderResponse struct {
	ID             uint64          `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	CustomerName   string          `json:"customer_name"`
	CustomerEmail  string          `json:"customer_email"`
	CustomerPhone  string          `json:"customer_phone"`
	DeliveryType   string          `json:"delivery_type"`
	ShippingOption string          `json:"shipping_option"`
	Address        AddressResponse `json:"address"`
	PaymentMethod  string          `json:"payment_method"`
	Items          json.RawMessage `json:"items"`
	Subtotal       string          `json:"subtotal"`
	Shipping       string          `json:"shipping"`
	TotalAmount    string          `json:"total_amount"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes"`
	IsInquiry      bool            `json:"is_inquiry"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OrderListResponse is a page of orders
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
}

// DashboardResponse holds the admin dashboard figures
type DashboardResponse struct {
	TotalProducts  int64           `json:"total_products"`
	ActiveProducts int64           `json:"active_products"`
	TotalOrders    int64           `json:"total_orders"`
	PendingOrders  int64           `json:"pending_orders"`
	RecentOrders   []OrderResponse `json:"recent_orders"`
}

// itemsJSON returns the stored item list as raw JSON.
// Text that is not valid JSON is returned as a JSON string.
func itemsJSON(stored string) json.RawMessage {
	if json.Valid([]byte(stored)) {
		return json.RawMessage(stored)
	}
	quoted, _ := json.Marshal(stored)
	return quoted
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(o *order.Order) *OrderResponse {
	return &OrderResponse{
		ID:             o.ID,
		FirstName:      o.Customer.FirstName,
		LastName:       o.Customer.LastName,
		CustomerName:   o.CustomerName(),
		CustomerEmail:  o.Customer.Email,
		CustomerPhone:  o.Customer.Phone,
		DeliveryType:   string(o.DeliveryType),
		ShippingOption: o.ShippingOption,
		Address: AddressResponse{
			Street:     o.Address.Street,
			Suburb:     o.Address.Suburb,
			City:       o.Address.City,
			Province:   o.Address.Province,
			PostalCode: o.Address.PostalCode,
		},
		PaymentMethod: string(o.PaymentMethod),
		Items:         itemsJSON(o.ItemsJSON),
		Subtotal:      o.Subtotal.StringFixed(2),
		Shipping:      o.Shipping.StringFixed(2),
		TotalAmount:   o.TotalAmount.StringFixed(2),
		Status:        string(o.Status),
		Notes:         o.Notes,
		IsInquiry:     o.IsInquiry(),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of domain orders to response DTOs
func ToOrderResponses(orders []order.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *ToOrderResponse(&orders[i])
	}
	return responses
}
