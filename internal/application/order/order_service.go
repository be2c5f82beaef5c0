package order

import (
	"context"
	"strings"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/order"
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"go.uber.org/zap"
)

// OrderService handles admin order management
type OrderService struct {
	orders order.OrderRepository
	logger *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orders order.OrderRepository, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{orders: orders, logger: logger}
}

// List returns orders newest first, optionally filtered by status
func (s *OrderService) List(ctx context.Context, query ListOrdersQuery) (*OrderListResponse, error) {
	filter := shared.DefaultFilter()
	filter.Search = strings.TrimSpace(query.Search)
	if query.Status != "" {
		filter = filter.With("status", query.Status)
	}

	total, err := s.orders.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	if query.PageSize > 0 {
		page := query.Page
		if page < 1 {
			page = 1
		}
		filter = filter.WithPage(page, query.PageSize)
	}

	orders, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &OrderListResponse{Orders: ToOrderResponses(orders), Total: total}, nil
}

// GetByID returns a single order
func (s *OrderService) GetByID(ctx context.Context, id uint64) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// Update sets the status and, when given, the notes of an order
func (s *OrderService) Update(ctx context.Context, id uint64, req UpdateOrderRequest) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := o.Status
	if err := o.UpdateStatus(order.Status(req.Status)); err != nil {
		return nil, err
	}
	if req.Notes != nil {
		o.SetNotes(*req.Notes)
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("order updated",
		zap.Uint64("order_id", o.ID),
		zap.String("from_status", string(previous)),
		zap.String("to_status", string(o.Status)),
	)
	return ToOrderResponse(o), nil
}

// Delete removes an order
func (s *OrderService) Delete(ctx context.Context, id uint64) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("order deleted", zap.Uint64("order_id", id))
	return nil
}
