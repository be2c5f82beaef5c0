package intake

import (
	"context"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/order"
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// MsgTooManyRequests is returned to clients that exceeded the inquiry limit
const MsgTooManyRequests = "Too many requests. Please try again later."

// ErrRateLimited is returned when a client has used up its inquiry window
var ErrRateLimited = shared.NewDomainError(shared.CodeRateLimited, MsgTooManyRequests)

// Service accepts storefront checkouts and contact inquiries
type Service struct {
	orders  order.OrderRepository
	limiter *InquiryRateLimiter
	logger  *zap.Logger
	metrics *Metrics
}

// ServiceOption configures optional Service collaborators
type ServiceOption func(*Service)

// WithMetrics counts submissions by outcome
func WithMetrics(m *Metrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService creates a new intake Service
func NewService(orders order.OrderRepository, limiter *InquiryRateLimiter, logger *zap.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		orders:  orders,
		limiter: limiter,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitOrder records a checkout as a pending order
func (s *Service) SubmitOrder(ctx context.Context, req CheckoutRequest) (*OrderCreated, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "intake", "submit_order")
	defer span.End()

	params, err := req.toParams()
	if err != nil {
		s.metrics.order(ctx, OutcomeRejected, "")
		return nil, err
	}

	o, err := order.NewOrder(params)
	if err != nil {
		s.metrics.order(ctx, OutcomeRejected, "")
		s.logger.Info("checkout rejected", zap.Error(err))
		return nil, err
	}

	if err := s.orders.Save(ctx, o); err != nil {
		s.metrics.order(ctx, OutcomeFailed, o.DeliveryType)
		telemetry.RecordError(span, err)
		s.logger.Error("failed to save order", zap.Error(err))
		return nil, err
	}
	s.metrics.order(ctx, OutcomeAccepted, o.DeliveryType)
	telemetry.SetAttributes(span, "order_id", o.ID, "delivery_type", string(o.DeliveryType))

	s.logger.Info("order received",
		zap.Uint64("order_id", o.ID),
		zap.String("delivery_type", string(o.DeliveryType)),
		zap.String("payment_method", string(o.PaymentMethod)),
		zap.String("total", o.TotalAmount.StringFixed(2)),
	)
	return &OrderCreated{OrderID: o.ID}, nil
}

// CheckInquiryAllowed returns ErrRateLimited when the client has no inquiries left.
// A failing counter store does not block the client.
func (s *Service) CheckInquiryAllowed(ctx context.Context, clientID string) error {
	allowed, err := s.limiter.Allow(ctx, clientID)
	if err != nil {
		s.logger.Warn("inquiry rate limit check failed", zap.String("client_ip", clientID), zap.Error(err))
		return nil
	}
	if !allowed {
		s.metrics.inquiry(ctx, OutcomeRateLimited)
		s.logger.Info("inquiry rate limited", zap.String("client_ip", clientID))
		return ErrRateLimited
	}
	return nil
}

// SubmitInquiry records a contact form submission as a pending pickup order
// and counts it against the client's window. Honeypot submissions report
// success without being stored or counted.
func (s *Service) SubmitInquiry(ctx context.Context, clientID string, req InquiryRequest) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "intake", "submit_inquiry")
	defer span.End()

	inquiry := req.toInquiry()
	if inquiry.IsHoneypotTripped() {
		telemetry.SetAttributes(span, "honeypot", true)
		s.metrics.inquiry(ctx, OutcomeHoneypot)
		s.logger.Info("inquiry honeypot tripped", zap.String("client_ip", clientID))
		return nil
	}

	o, err := inquiry.ToOrder()
	if err != nil {
		s.metrics.inquiry(ctx, OutcomeRejected)
		return err
	}

	if err := s.orders.Save(ctx, o); err != nil {
		s.metrics.inquiry(ctx, OutcomeFailed)
		telemetry.RecordError(span, err)
		s.logger.Error("failed to save inquiry", zap.Error(err))
		return err
	}
	s.metrics.inquiry(ctx, OutcomeAccepted)

	count, err := s.limiter.Record(ctx, clientID)
	if err != nil {
		s.logger.Warn("failed to count inquiry", zap.String("client_ip", clientID), zap.Error(err))
		return nil
	}

	s.logger.Info("inquiry received",
		zap.Uint64("order_id", o.ID),
		zap.String("client_ip", clientID),
		zap.Int64("window_count", count),
	)
	return nil
}
