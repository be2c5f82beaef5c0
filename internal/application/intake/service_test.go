package intake

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/order"
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestService(t *testing.T) (*Service, *MockOrderRepository, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	store := cache.NewInMemoryCounterStore(cache.WithClock(clock.Now))
	t.Cleanup(func() { _ = store.Close() })

	repo := new(MockOrderRepository)
	svc := NewService(repo, NewInquiryRateLimiter(store, 3, time.Hour), zap.NewNop())
	return svc, repo, clock
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	return de.Code
}

func TestService_SubmitOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("stores pending order and returns id", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		var saved *order.Order
		repo.On("Save", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*order.Order)
				saved.ID = 42
			}).
			Return(nil).Once()

		req, err := DecodeCheckoutRequest([]byte(`{
			"customer": {"first_name": "Ann", "last_name": "Lee", "email": "ann@example.com", "phone": "082"},
			"items": [{"id": 3, "qty": 1}],
			"subtotal": 100, "shipping": "50.00", "total": 150
		}`))
		require.NoError(t, err)

		created, err := svc.SubmitOrder(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), created.OrderID)

		require.NotNil(t, saved)
		assert.Equal(t, order.StatusPending, saved.Status)
		assert.Equal(t, order.DeliveryTypeDelivery, saved.DeliveryType)
		assert.Equal(t, "standard", saved.ShippingOption)
		assert.Equal(t, order.PaymentMethodEFT, saved.PaymentMethod)
		assert.Equal(t, `[{"id":3,"qty":1}]`, saved.ItemsJSON)
		assert.True(t, saved.TotalAmount.Equal(decimal.NewFromInt(150)))
		repo.AssertExpectations(t)
	})

	t.Run("each call creates a new order", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.On("Save", mock.Anything, mock.Anything).Run(assignID(1)).Return(nil).Once()
		repo.On("Save", mock.Anything, mock.Anything).Run(assignID(2)).Return(nil).Once()

		first, err := svc.SubmitOrder(ctx, CheckoutRequest{})
		require.NoError(t, err)
		second, err := svc.SubmitOrder(ctx, CheckoutRequest{})
		require.NoError(t, err)
		assert.NotEqual(t, first.OrderID, second.OrderID)
		repo.AssertNumberOfCalls(t, "Save", 2)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		_, err := svc.SubmitOrder(ctx, CheckoutRequest{PaymentMethod: "bitcoin"})
		assert.Equal(t, shared.CodeValidation, domainCode(t, err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects negative total", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		_, err := svc.SubmitOrder(ctx, CheckoutRequest{Total: decimal.NewFromInt(-1)})
		assert.Equal(t, shared.CodeValidation, domainCode(t, err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("passes persistence errors through", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		_, err := svc.SubmitOrder(ctx, CheckoutRequest{})
		assert.EqualError(t, err, "disk full")
	})
}

func TestService_SubmitInquiry(t *testing.T) {
	ctx := context.Background()
	ip := "203.0.113.9"

	t.Run("stores inquiry as pickup order", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		var saved *order.Order
		repo.On("Save", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
			Return(nil).Once()

		err := svc.SubmitInquiry(ctx, ip, InquiryRequest{
			Name:    "  Jane van der Merwe ",
			Email:   " jane@example.co.za ",
			Phone:   "0821234567",
			Subject: "Wholesale",
			Message: "Do you deliver to Durban?",
		})
		require.NoError(t, err)

		require.NotNil(t, saved)
		assert.Equal(t, "Jane", saved.Customer.FirstName)
		assert.Equal(t, "van der Merwe", saved.Customer.LastName)
		assert.Equal(t, "jane@example.co.za", saved.Customer.Email)
		assert.Equal(t, order.DeliveryTypePickup, saved.DeliveryType)
		assert.Equal(t, order.PaymentMethodEFT, saved.PaymentMethod)
		assert.Equal(t, "[]", saved.ItemsJSON)
		assert.True(t, saved.Subtotal.IsZero())
		assert.Equal(t, "Contact Inquiry - Subject: Wholesale\n\nMessage: Do you deliver to Durban?", saved.Notes)
		assert.Equal(t, order.StatusPending, saved.Status)
	})

	t.Run("truncates optional fields", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		var saved *order.Order
		repo.On("Save", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
			Return(nil).Once()

		err := svc.SubmitInquiry(ctx, ip, InquiryRequest{
			Name:    "Bob",
			Email:   "bob@example.com",
			Phone:   strings.Repeat("9", 30),
			Message: strings.Repeat("m", 2500),
		})
		require.NoError(t, err)
		assert.Len(t, saved.Customer.Phone, 20)
		assert.Equal(t, "Contact Inquiry - Subject: General\n\nMessage: "+strings.Repeat("m", 2000), saved.Notes)
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name string
			req  InquiryRequest
			msg  string
		}{
			{"missing name", InquiryRequest{Email: "a@b.co"}, order.MsgNameEmailRequired},
			{"blank email", InquiryRequest{Name: "Al", Email: "   "}, order.MsgNameEmailRequired},
			{"bad email", InquiryRequest{Name: "Al", Email: "not-an-email"}, order.MsgInvalidEmail},
			{"long name", InquiryRequest{Name: strings.Repeat("n", 101), Email: "a@b.co"}, order.MsgNameTooLong},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				svc, repo, _ := newTestService(t)

				err := svc.SubmitInquiry(ctx, ip, tc.req)
				assert.EqualError(t, err, tc.msg)
				assert.Equal(t, shared.CodeValidation, domainCode(t, err))
				repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("honeypot succeeds silently without counting", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		for i := 0; i < 5; i++ {
			err := svc.SubmitInquiry(ctx, ip, InquiryRequest{Name: "Bot", Email: "bad", Website: "http://spam.example"})
			require.NoError(t, err)
		}
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		assert.NoError(t, svc.CheckInquiryAllowed(ctx, ip))
	})

	t.Run("rejected submissions do not count", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		for i := 0; i < 5; i++ {
			require.Error(t, svc.SubmitInquiry(ctx, ip, InquiryRequest{Name: "Al"}))
		}
		assert.NoError(t, svc.CheckInquiryAllowed(ctx, ip))
	})

	t.Run("failed save does not count", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("db down"))

		for i := 0; i < 4; i++ {
			assert.EqualError(t, svc.SubmitInquiry(ctx, ip, InquiryRequest{Name: "Al", Email: "al@example.com"}), "db down")
		}
		assert.NoError(t, svc.CheckInquiryAllowed(ctx, ip))
	})
}

func TestService_InquiryRateLimit(t *testing.T) {
	ctx := context.Background()
	ip := "192.0.2.44"
	svc, repo, clock := newTestService(t)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	valid := InquiryRequest{Name: "Al", Email: "al@example.com"}
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.CheckInquiryAllowed(ctx, ip))
		require.NoError(t, svc.SubmitInquiry(ctx, ip, valid))
	}

	err := svc.CheckInquiryAllowed(ctx, ip)
	assert.Equal(t, ErrRateLimited, err)
	assert.Equal(t, shared.CodeRateLimited, domainCode(t, err))
	assert.Equal(t, "Too many requests. Please try again later.", err.Error())

	assert.NoError(t, svc.CheckInquiryAllowed(ctx, "192.0.2.45"))

	clock.Advance(time.Hour)
	assert.NoError(t, svc.CheckInquiryAllowed(ctx, ip))
	repo.AssertNumberOfCalls(t, "Save", 3)
}

func TestService_CounterStoreFailure(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.WarnLevel)
	repo := new(MockOrderRepository)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	svc := NewService(repo, NewInquiryRateLimiter(failingStore{err: errors.New("redis down")}, 3, time.Hour), zap.New(core))

	assert.NoError(t, svc.CheckInquiryAllowed(ctx, "10.1.1.1"))
	assert.NoError(t, svc.SubmitInquiry(ctx, "10.1.1.1", InquiryRequest{Name: "Al", Email: "al@example.com"}))

	assert.Equal(t, 2, logs.Len())
	repo.AssertNumberOfCalls(t, "Save", 1)
}
