package order

import (
	"context"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/catalog"
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/order"
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
)

// RecentOrdersLimit is the number of orders shown on the dashboard
const RecentOrdersLimit = 5

// DashboardService computes the admin dashboard figures
type DashboardService struct {
	products catalog.ProductRepository
	orders   order.OrderRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(products catalog.ProductRepository, orders order.OrderRepository) *DashboardService {
	return &DashboardService{products: products, orders: orders}
}

// Get returns product and order counts plus the most recent orders
func (s *DashboardService) Get(ctx context.Context) (*DashboardResponse, error) {
	totalProducts, err := s.products.Count(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	activeProducts, err := s.products.Count(ctx, shared.DefaultFilter().With("is_active", true))
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.orders.Count(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	pendingOrders, err := s.orders.Count(ctx, shared.DefaultFilter().With("status", string(order.StatusPending)))
	if err != nil {
		return nil, err
	}
	recent, err := s.orders.FindAll(ctx, shared.DefaultFilter().WithLimit(RecentOrdersLimit))
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		TotalProducts:  totalProducts,
		ActiveProducts: activeProducts,
		TotalOrders:    totalOrders,
		PendingOrders:  pendingOrders,
		RecentOrders:   ToOrderResponses(recent),
	}, nil
}
