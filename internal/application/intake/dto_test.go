package intake

import (
	"testing"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/order"
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCheckoutRequest(t *testing.T) {
	t.Run("accepts numbers and numeric strings", func(t *testing.T) {
		req, err := DecodeCheckoutRequest([]byte(`{"subtotal": 100.5, "shipping": "50", "total": "150.50"}`))
		require.NoError(t, err)
		assert.Equal(t, "100.50", req.Subtotal.StringFixed(2))
		assert.Equal(t, "50.00", req.Shipping.StringFixed(2))
		assert.Equal(t, "150.50", req.Total.StringFixed(2))
	})

	t.Run("reports parser message", func(t *testing.T) {
		_, err := DecodeCheckoutRequest([]byte(`{"customer":`))
		require.Error(t, err)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, shared.CodeInvalidJSON, de.Code)
		assert.Contains(t, de.Message, "Invalid JSON: ")
		assert.Greater(t, len(de.Message), len("Invalid JSON: "))
	})
}

func TestDecodeInquiryRequest(t *testing.T) {
	_, err := DecodeInquiryRequest([]byte(`not json`))
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, shared.CodeInvalidJSON, de.Code)
	assert.Equal(t, "Invalid JSON", de.Message)
}

func TestCheckoutRequest_ToParams(t *testing.T) {
	t.Run("applies defaults to empty payload", func(t *testing.T) {
		req, err := DecodeCheckoutRequest([]byte(`{}`))
		require.NoError(t, err)

		params, err := req.toParams()
		require.NoError(t, err)
		assert.Equal(t, order.Customer{}, params.Customer)
		assert.Equal(t, order.Address{}, params.Address)
		assert.Equal(t, order.DeliveryTypeDelivery, params.DeliveryType)
		assert.Equal(t, "standard", params.ShippingOption)
		assert.Equal(t, order.PaymentMethodEFT, params.PaymentMethod)
		assert.Equal(t, "[]", params.ItemsJSON)
		assert.True(t, params.Subtotal.IsZero())
		assert.True(t, params.Shipping.IsZero())
		assert.True(t, params.TotalAmount.IsZero())
		assert.Empty(t, params.Notes)
	})

	t.Run("null blocks behave like missing ones", func(t *testing.T) {
		req, err := DecodeCheckoutRequest([]byte(`{"customer": null, "address": null, "items": null}`))
		require.NoError(t, err)

		params, err := req.toParams()
		require.NoError(t, err)
		assert.Empty(t, params.Customer.FirstName)
		assert.Empty(t, params.Address.Street)
		assert.Equal(t, "[]", params.ItemsJSON)
	})

	t.Run("maps nested blocks and compacts items", func(t *testing.T) {
		body := `{
			"customer": {"first_name": "Ann", "last_name": "Lee", "email": "ann@example.com", "phone": "082"},
			"address": {"street": "1 Main", "suburb": "Gardens", "city": "Cape Town", "province": "WC", "postal_code": "8001"},
			"delivery_type": "pickup",
			"shipping_option": "collect",
			"payment_method": "cash",
			"items": [ {"id": 1, "name": "Cookie", "qty": 2} ],
			"notes": "ring the bell"
		}`
		req, err := DecodeCheckoutRequest([]byte(body))
		require.NoError(t, err)

		params, err := req.toParams()
		require.NoError(t, err)
		assert.Equal(t, "Ann", params.Customer.FirstName)
		assert.Equal(t, "ann@example.com", params.Customer.Email)
		assert.Equal(t, "Gardens", params.Address.Suburb)
		assert.Equal(t, "8001", params.Address.PostalCode)
		assert.Equal(t, order.DeliveryTypePickup, params.DeliveryType)
		assert.Equal(t, "collect", params.ShippingOption)
		assert.Equal(t, order.PaymentMethodCash, params.PaymentMethod)
		assert.Equal(t, `[{"id":1,"name":"Cookie","qty":2}]`, params.ItemsJSON)
		assert.Equal(t, "ring the bell", params.Notes)
	})
}
