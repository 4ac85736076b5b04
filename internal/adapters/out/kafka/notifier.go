// Package kafka publishes order status-change events to a Kafka topic.
// Events are fire-and-forget from the workflow's point of view: the
// committed transition never depends on the broker being reachable.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"medlogistics/internal/core/domain/model/audit"
	"medlogistics/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// StatusChangedEvent is the wire payload of one status change. The order id
// doubles as the message key so one order's events stay in one partition.
type StatusChangedEvent struct {
	OrderID     string    `json:"order_id"`
	PatientName string    `json:"patient_name"`
	Procedure   string    `json:"procedure"`
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	ChangedBy   string    `json:"changed_by"`
	Role        string    `json:"role"`
	ChangedAt   time.Time `json:"changed_at"`
	IsRollback  bool      `json:"is_rollback"`
	Notes       string    `json:"notes,omitempty"`
}

// Notifier implements ports.Notifier on top of a kafka-go writer.
type Notifier struct {
	writer *kafka.Writer
}

// NewWriter builds a kafka-go writer for the given brokers and topic.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
}

// NewNotifier creates a Kafka-backed notifier.
func NewNotifier(writer *kafka.Writer) *Notifier {
	return &Notifier{writer: writer}
}

// NotifyStatusChanged publishes one status-change event.
func (n *Notifier) NotifyStatusChanged(ctx context.Context, aggregate *order.Order, entry *audit.Entry) error {
	event := StatusChangedEvent{
		OrderID:     aggregate.ID().String(),
		PatientName: aggregate.PatientName(),
		Procedure:   aggregate.Procedure(),
		FromStatus:  entry.FromStatus().String(),
		ToStatus:    entry.ToStatus().String(),
		ChangedBy:   entry.ChangedBy(),
		Role:        entry.Role().String(),
		ChangedAt:   entry.ChangedAt(),
		IsRollback:  entry.IsRollback(),
		Notes:       entry.Notes(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}

// Close releases the underlying writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}
