package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"maropost_fixtures/models/maropost"
	repeatable "maropost_fixtures/pkg/utils"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const runIDHeader = "run-id"

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// OrderMessages encodes one message per order, keyed by OrderID.
func OrderMessages(orders []maropost.Order, runID string) ([]kafka.Message, error) {
	msgs := make([]kafka.Message, 0, len(orders))
	for _, o := range orders {
		value, err := json.Marshal(o)
		if err != nil {
			return nil, fmt.Errorf("encode order %s: %w", o.OrderID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:     []byte(o.OrderID),
			Value:   value,
			Headers: []kafka.Header{{Key: runIDHeader, Value: []byte(runID)}},
		})
	}
	return msgs, nil
}

// Publish sends msgs one by one, retrying each up to attempts times. It stops
// at the first message that cannot be delivered and returns how many were sent.
func Publish(ctx context.Context, w MessageWriter, msgs []kafka.Message, attempts int, delay time.Duration) (int, error) {
	for i, msg := range msgs {
		err := repeatable.DoWithTries(ctx, func(ctx context.Context) error {
			return w.WriteMessages(ctx, msg)
		}, attempts, delay)
		if err != nil {
			return i, fmt.Errorf("publish order %s: %w", msg.Key, err)
		}
		log.Debug().Bytes("order_id", msg.Key).Msg("Order published")
	}
	return len(msgs), nil
}
