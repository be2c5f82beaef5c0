package order

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/order"
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func createTestOrder(t *testing.T, id uint64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(order.NewOrderParams{
		Customer:      order.Customer{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com"},
		DeliveryType:  order.DeliveryTypeDelivery,
		PaymentMethod: order.PaymentMethodEFT,
		ItemsJSON:     `[{"id":1}]`,
		Subtotal:      decimal.NewFromInt(100),
		TotalAmount:   decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	o.ID = id
	return o
}

func strPtr(s string) *string { return &s }

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by status and pages", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewOrderService(repo, zap.NewNop())

		repo.On("Count", ctx, hasFilter(map[string]interface{}{"status": "shipped"})).Return(int64(12), nil)
		repo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["status"] == "shipped" && f.Page == 2 && f.PageSize == 5
		})).Return([]order.Order{*createTestOrder(t, 3)}, nil)

		resp, err := svc.List(ctx, ListOrdersQuery{Status: "shipped", PageSize: 5, Page: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(12), resp.Total)
		require.Len(t, resp.Orders, 1)
		assert.Equal(t, uint64(3), resp.Orders[0].ID)
		repo.AssertExpectations(t)
	})

	t.Run("unfiltered without paging", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewOrderService(repo, zap.NewNop())

		repo.On("Count", ctx, hasFilter(map[string]interface{}{})).Return(int64(0), nil)
		repo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			return f.PageSize == 0 && f.Limit == 0
		})).Return([]order.Order{}, nil)

		resp, err := svc.List(ctx, ListOrdersQuery{})
		require.NoError(t, err)
		assert.Empty(t, resp.Orders)
		assert.NotNil(t, resp.Orders)
	})
}

func TestOrderService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOrderRepository)
	svc := NewOrderService(repo, nil)

	repo.On("FindByID", ctx, uint64(1)).Return(createTestOrder(t, 1), nil)
	repo.On("FindByID", ctx, uint64(2)).Return(nil, shared.ErrNotFound)

	resp, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", resp.CustomerName)
	assert.Equal(t, "100.00", resp.TotalAmount)
	assert.Equal(t, "0.00", resp.Shipping)
	assert.JSONEq(t, `[{"id":1}]`, string(resp.Items))
	assert.False(t, resp.IsInquiry)

	_, err = svc.GetByID(ctx, 2)
	assert.Equal(t, shared.ErrNotFound, err)
}

func TestOrderService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("sets status and notes", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewOrderService(repo, zap.NewNop())
		o := createTestOrder(t, 1)
		repo.On("FindByID", ctx, uint64(1)).Return(o, nil)
		repo.On("Save", ctx, o).Return(nil)

		resp, err := svc.Update(ctx, 1, UpdateOrderRequest{Status: "delivered", Notes: strPtr("left at gate")})
		require.NoError(t, err)
		assert.Equal(t, "delivered", resp.Status)
		assert.Equal(t, "left at gate", resp.Notes)
	})

	t.Run("keeps notes when omitted", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewOrderService(repo, zap.NewNop())
		o := createTestOrder(t, 1)
		o.Notes = "original"
		repo.On("FindByID", ctx, uint64(1)).Return(o, nil)
		repo.On("Save", ctx, o).Return(nil)

		resp, err := svc.Update(ctx, 1, UpdateOrderRequest{Status: "cancelled"})
		require.NoError(t, err)
		assert.Equal(t, "original", resp.Notes)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewOrderService(repo, zap.NewNop())
		repo.On("FindByID", ctx, uint64(1)).Return(createTestOrder(t, 1), nil)

		_, err := svc.Update(ctx, 1, UpdateOrderRequest{Status: "lost"})
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, shared.CodeValidation, de.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestOrderService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOrderRepository)
	svc := NewOrderService(repo, zap.NewNop())

	repo.On("Delete", ctx, uint64(4)).Return(nil)
	repo.On("Delete", ctx, uint64(5)).Return(shared.ErrNotFound)

	assert.NoError(t, svc.Delete(ctx, 4))
	assert.Equal(t, shared.ErrNotFound, svc.Delete(ctx, 5))
}

func TestItemsJSON(t *testing.T) {
	assert.Equal(t, json.RawMessage(`[]`), itemsJSON("[]"))
	assert.Equal(t, json.RawMessage(`"not json"`), itemsJSON("not json"))
}

func TestOrderResponse_Inquiry(t *testing.T) {
	o, err := order.Inquiry{Name: "Al", Email: "al@example.com"}.ToOrder()
	require.NoError(t, err)

	resp := ToOrderResponse(o)
	assert.True(t, resp.IsInquiry)
	assert.Equal(t, "pickup", resp.DeliveryType)
	assert.Equal(t, "Al", resp.CustomerName)
}
