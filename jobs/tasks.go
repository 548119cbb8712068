package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeOrderNotify is the task type for delivering an order summary to Viber.
	TaskTypeOrderNotify = "order:notify"
	// TaskTypeLowStockScan is the task type for the nightly catalog stock scan.
	TaskTypeLowStockScan = "catalog:low-stock-scan"
)

// OrderNotifyPayload identifies the order whose summary should be delivered.
type OrderNotifyPayload struct {
	OrderID string `json:"order_id"`
}

// NewOrderNotifyTask constructs an Asynq task for order notification. Delivery
// is best-effort: a few retries, then the buyer's manual copy path covers it.
func NewOrderNotifyTask(orderID string) (*asynq.Task, error) {
	data, err := json.Marshal(OrderNotifyPayload{OrderID: orderID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeOrderNotify, data, asynq.Queue(QueueDefault), asynq.MaxRetry(3)), nil
}

// LowStockScanPayload carries scheduling metadata.
type LowStockScanPayload struct {
	ScheduledFor time.Time `json:"scheduled_for"`
}

// NewLowStockScanTask constructs an Asynq task for the stock scan.
func NewLowStockScanTask(at time.Time) (*asynq.Task, error) {
	data, err := json.Marshal(LowStockScanPayload{ScheduledFor: at})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeLowStockScan, data, asynq.Queue(QueueDefault)), nil
}
