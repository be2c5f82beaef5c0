package intake

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/order"
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CustomerInput is the customer block of a checkout payload
type CustomerInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// AddressInput is the delivery address block of a checkout payload
type AddressInput struct {
	Street     string `json:"street"`
	Suburb     string `json:"suburb"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
}

// CheckoutRequest is the storefront checkout payload.
// Money fields accept JSON numbers or numeric strings.
type CheckoutRequest struct {
	Customer       *CustomerInput  `json:"customer"`
	Address        *AddressInput   `json:"address"`
	DeliveryType   string          `json:"delivery_type"`
	ShippingOption string          `json:"shipping_option"`
	PaymentMethod  string          `json:"payment_method"`
	Items          json.RawMessage `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Shipping       decimal.Decimal `json:"shipping"`
	Total          decimal.Decimal `json:"total"`
	Notes          string          `json:"notes"`
}

// InquiryRequest is the contact form payload
type InquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Website string `json:"website"`
}

// OrderCreated is returned after a checkout order is stored
type OrderCreated struct {
	OrderID uint64 `json:"order_id"`
}

// Default checkout values
const (
	DefaultDeliveryType   = order.DeliveryTypeDelivery
	DefaultShippingOption = "standard"
	DefaultPaymentMethod  = order.PaymentMethodEFT
)

// DecodeCheckoutRequest parses a checkout body. Parser errors are reported
// with the INVALID_JSON code and the parser message.
func DecodeCheckoutRequest(body []byte) (CheckoutRequest, error) {
	var req CheckoutRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return CheckoutRequest{}, shared.NewDomainError(shared.CodeInvalidJSON, "Invalid JSON: "+err.Error())
	}
	return req, nil
}

// DecodeInquiryRequest parses a contact form body
func DecodeInquiryRequest(body []byte) (InquiryRequest, error) {
	var req InquiryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return InquiryRequest{}, shared.NewDomainError(shared.CodeInvalidJSON, "Invalid JSON")
	}
	return req, nil
}

// toParams applies checkout defaults and maps the payload onto order parameters
func (r CheckoutRequest) toParams() (order.NewOrderParams, error) {
	var customer order.Customer
	if r.Customer != nil {
		customer = order.Customer{
			FirstName: r.Customer.FirstName,
			LastName:  r.Customer.LastName,
			Email:     r.Customer.Email,
			Phone:     r.Customer.Phone,
		}
	}

	var address order.Address
	if r.Address != nil {
		address = order.Address{
			Street:     r.Address.Street,
			Suburb:     r.Address.Suburb,
			City:       r.Address.City,
			Province:   r.Address.Province,
			PostalCode: r.Address.PostalCode,
		}
	}

	deliveryType := order.DeliveryType(strings.TrimSpace(r.DeliveryType))
	if deliveryType == "" {
		deliveryType = DefaultDeliveryType
	}
	shippingOption := r.ShippingOption
	if shippingOption == "" {
		shippingOption = DefaultShippingOption
	}
	paymentMethod := order.PaymentMethod(strings.TrimSpace(r.PaymentMethod))
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	items, err := compactItems(r.Items)
	if err != nil {
		return order.NewOrderParams{}, err
	}

	return order.NewOrderParams{
		Customer:       customer,
		DeliveryType:   deliveryType,
		ShippingOption: shippingOption,
		Address:        address,
		PaymentMethod:  paymentMethod,
		ItemsJSON:      items,
		Subtotal:       r.Subtotal,
		Shipping:       r.Shipping,
		TotalAmount:    r.Total,
		Notes:          r.Notes,
	}, nil
}

// compactItems returns the item list as compact JSON text, "[]" when absent
func compactItems(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return order.EmptyItems, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return "", shared.NewDomainError(shared.CodeInvalidJSON, "Invalid JSON: "+err.Error())
	}
	return buf.String(), nil
}

func (r InquiryRequest) toInquiry() order.Inquiry {
	return order.Inquiry{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
		Website: r.Website,
	}
}
