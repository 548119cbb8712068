package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/codemedavid/the-peptide-source-ph/internal/checkout"
	jobmetrics "github.com/codemedavid/the-peptide-source-ph/internal/jobs"
	"github.com/codemedavid/the-peptide-source-ph/internal/notify"
)

// OrderReader provides the order lookups the notification job needs.
type OrderReader interface {
	Get(ctx context.Context, id string) (checkout.Order, error)
	MarkViberSent(ctx context.Context, id string, sent bool) error
}

// OrderNotifyJob delivers a placed order's summary over the configured
// channel and records the outcome on the order row.
type OrderNotifyJob struct {
	Orders  OrderReader
	Channel notify.Channel
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
}

// NewOrderNotifyJob constructs the job handler.
func NewOrderNotifyJob(orders OrderReader, channel notify.Channel, logger *slog.Logger, metrics *jobmetrics.Metrics) *OrderNotifyJob {
	return &OrderNotifyJob{Orders: orders, Channel: channel, Logger: logger, Metrics: metrics}
}

// Handle processes TaskTypeOrderNotify tasks. A delivery failure is returned
// so Asynq retries; the viber_sent flag stays false until a send succeeds,
// which is fine because the buyer always has the manual copy path.
func (j *OrderNotifyJob) Handle(ctx context.Context, t *asynq.Task) error {
	tracker := j.Metrics.Track("order_notify")

	var payload OrderNotifyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return tracker.End(asynq.SkipRetry)
	}

	order, err := j.Orders.Get(ctx, payload.OrderID)
	if err != nil {
		j.Logger.Error("order notify: load order", "order_id", payload.OrderID, "error", err)
		return tracker.End(fmt.Errorf("load order %s: %w", payload.OrderID, err))
	}

	if err := j.Channel.Deliver(ctx, order.Summary); err != nil {
		j.Logger.Warn("order notify: delivery failed", "order_id", order.ID, "error", err)
		if markErr := j.Orders.MarkViberSent(ctx, order.ID, false); markErr != nil {
			j.Logger.Error("order notify: record failure", "order_id", order.ID, "error", markErr)
		}
		return tracker.End(fmt.Errorf("deliver order %s: %w", order.ID, err))
	}

	if err := j.Orders.MarkViberSent(ctx, order.ID, true); err != nil {
		j.Logger.Error("order notify: record success", "order_id", order.ID, "error", err)
		return tracker.End(err)
	}
	j.Logger.Info("order notify: delivered", "order_id", order.ID)
	return tracker.End(nil)
}
