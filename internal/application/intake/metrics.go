package intake

import (
	"context"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/order"
	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/metric"
)

// Submission outcomes reported on the intake counters
const (
	OutcomeAccepted    = "accepted"
	OutcomeRejected    = "rejected"
	OutcomeFailed      = "failed"
	OutcomeRateLimited = "rate_limited"
	OutcomeHoneypot    = "honeypot"
)

// Metrics counts checkout and inquiry submissions. A nil *Metrics records nothing.
type Metrics struct {
	orders    *telemetry.Counter
	inquiries *telemetry.Counter
}

// NewMetrics creates the intake counters on meter
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	orders, err := telemetry.NewCounter(meter,
		"intake_orders_total",
		"Storefront checkouts by outcome",
		"{order}",
	)
	if err != nil {
		return nil, err
	}
	inquiries, err := telemetry.NewCounter(meter,
		"intake_inquiries_total",
		"Contact inquiries by outcome",
		"{inquiry}",
	)
	if err != nil {
		return nil, err
	}
	return &Metrics{orders: orders, inquiries: inquiries}, nil
}

func (m *Metrics) order(ctx context.Context, outcome string, delivery order.DeliveryType) {
	if m == nil {
		return
	}
	if delivery == "" {
		m.orders.Inc(ctx, telemetry.AttrOutcome.String(outcome))
		return
	}
	m.orders.Inc(ctx,
		telemetry.AttrOutcome.String(outcome),
		telemetry.AttrDeliveryType.String(string(delivery)),
	)
}

func (m *Metrics) inquiry(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.inquiries.Inc(ctx, telemetry.AttrOutcome.String(outcome))
}
