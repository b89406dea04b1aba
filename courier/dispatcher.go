// Package courier implements the asynchronous courier-assignment leg: the
// dispatch publisher, the queue worker that commits stock and assigns a
// courier, and the notifier that signals the waiting workflow.
package courier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"bookstore-fulfillment/types"
)

// Dispatcher publishes courier dispatch requests for the queue worker.
type Dispatcher interface {
	Publish(ctx context.Context, orderID string, msg types.CourierDispatch) error
}

// KafkaDispatcher writes dispatch messages to the courier topic, keyed by
// order ID.
type KafkaDispatcher struct {
	writer *kafka.Writer
}

func NewKafkaDispatcher(writer *kafka.Writer) *KafkaDispatcher {
	return &KafkaDispatcher{writer: writer}
}

func (d *KafkaDispatcher) Publish(ctx context.Context, orderID string, msg types.CourierDispatch) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal dispatch for order %s: %w", orderID, err)
	}

	err = d.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(orderID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("publish dispatch for order %s: %w", orderID, err)
	}
	return nil
}
