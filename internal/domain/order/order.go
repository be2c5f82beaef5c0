package order

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Status represents the fulfilment status of an order
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// AllStatuses returns every order status in display order
func AllStatuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
}

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// DeliveryType tells whether the order is delivered or collected
type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

// IsValid reports whether d is a known delivery type
func (d DeliveryType) IsValid() bool {
	return d == DeliveryTypeDelivery || d == DeliveryTypePickup
}

// PaymentMethod is how the customer intends to pay
type PaymentMethod string

const (
	PaymentMethodEFT    PaymentMethod = "eft"
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodStripe PaymentMethod = "stripe"
)

// IsValid reports whether p is a known payment method
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodEFT, PaymentMethodCash, PaymentMethodStripe:
		return true
	}
	return false
}

// EmptyItems is the stored item list for orders without line items
const EmptyItems = "[]"

// Customer holds the contact details captured at checkout
type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Address is the delivery address. All fields are optional.
type Address struct {
	Street     string
	Suburb     string
	City       string
	Province   string
	PostalCode string
}

// Order is a customer order or a contact inquiry recorded as an order
type Order struct {
	shared.BaseEntity
	Customer       Customer
	DeliveryType   DeliveryType
	ShippingOption string
	Address        Address
	PaymentMethod  PaymentMethod
	ItemsJSON      string
	Subtotal       decimal.Decimal
	Shipping       decimal.Decimal
	TotalAmount    decimal.Decimal
	Status         Status
	Notes          string
}

// NewOrderParams carries the values for a new order
type NewOrderParams struct {
	Customer       Customer
	DeliveryType   DeliveryType
	ShippingOption string
	Address        Address
	PaymentMethod  PaymentMethod
	ItemsJSON      string
	Subtotal       decimal.Decimal
	Shipping       decimal.Decimal
	TotalAmount    decimal.Decimal
	Notes          string
}

// NewOrder creates a pending order
func NewOrder(p NewOrderParams) (*Order, error) {
	if !p.DeliveryType.IsValid() {
		return nil, shared.NewValidationError(fmt.Sprintf("Invalid delivery type: %s", p.DeliveryType))
	}
	if !p.PaymentMethod.IsValid() {
		return nil, shared.NewValidationError(fmt.Sprintf("Invalid payment method: %s", p.PaymentMethod))
	}
	if err := validateAmounts(p.Subtotal, p.Shipping, p.TotalAmount); err != nil {
		return nil, err
	}
	if err := validateLengths(p.Customer, p.Address, p.ShippingOption); err != nil {
		return nil, err
	}

	items := p.ItemsJSON
	if items == "" {
		items = EmptyItems
	}

	return &Order{
		BaseEntity:     shared.NewBaseEntity(),
		Customer:       p.Customer,
		DeliveryType:   p.DeliveryType,
		ShippingOption: p.ShippingOption,
		Address:        p.Address,
		PaymentMethod:  p.PaymentMethod,
		ItemsJSON:      items,
		Subtotal:       p.Subtotal.Round(2),
		Shipping:       p.Shipping.Round(2),
		TotalAmount:    p.TotalAmount.Round(2),
		Status:         StatusPending,
		Notes:          p.Notes,
	}, nil
}

// UpdateStatus sets the order status. Any known status may follow any other.
func (o *Order) UpdateStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewValidationError(fmt.Sprintf("Invalid order status: %s", status))
	}
	o.Status = status
	o.Touch()
	return nil
}

// SetNotes replaces the internal notes
func (o *Order) SetNotes(notes string) {
	o.Notes = notes
	o.Touch()
}

// CustomerName returns the full customer name
func (o *Order) CustomerName() string {
	if o.Customer.LastName == "" {
		return o.Customer.FirstName
	}
	return o.Customer.FirstName + " " + o.Customer.LastName
}

// IsInquiry reports whether the order was created from the contact form
func (o *Order) IsInquiry() bool {
	return o.ItemsJSON == EmptyItems && strings.HasPrefix(o.Notes, inquiryNotesPrefix)
}

// IsPending returns true if the order has not been picked up by staff yet
func (o *Order) IsPending() bool {
	return o.Status == StatusPending
}

func validateAmounts(amounts ...decimal.Decimal) error {
	for _, a := range amounts {
		if a.IsNegative() {
			return shared.NewValidationError("Amounts cannot be negative")
		}
	}
	return nil
}

type fieldLimit struct {
	field string
	value string
	max   int
}

func validateLengths(c Customer, a Address, shippingOption string) error {
	limits := []fieldLimit{
		{"first_name", c.FirstName, 100},
		{"last_name", c.LastName, 100},
		{"email", c.Email, 254},
		{"phone", c.Phone, 50},
		{"shipping_option", shippingOption, 50},
		{"street", a.Street, 255},
		{"suburb", a.Suburb, 100},
		{"city", a.City, 100},
		{"province", a.Province, 100},
		{"postal_code", a.PostalCode, 10},
	}
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return shared.NewValidationError(fmt.Sprintf("%s cannot exceed %d characters", l.field, l.max))
		}
	}
	return nil
}
