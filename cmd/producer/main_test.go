package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"maropost_fixtures/internal/config"
	"maropost_fixtures/internal/generator"
	"maropost_fixtures/models/maropost"
	kafkaClient "maropost_fixtures/pkg/client/kafka"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockWriter для тестирования Kafka writer
type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func testOrders(n int) []maropost.Order {
	cfg := config.Default().Dataset
	cfg.Orders = n
	now := time.Date(2025, 5, 5, 5, 5, 5, 0, time.UTC)
	return generator.NewWithFaker(gofakeit.New(31), now, cfg).BuildDataset().Orders
}

func TestOrderMessages(t *testing.T) {
	orders := testOrders(3)

	msgs, err := OrderMessages(orders, "run-1")
	require.NoError(t, err)
	require.Len(t, msgs, 3)

	for i, msg := range msgs {
		assert.Equal(t, orders[i].OrderID, string(msg.Key))
		require.Len(t, msg.Headers, 1)
		assert.Equal(t, runIDHeader, msg.Headers[0].Key)
		assert.Equal(t, "run-1", string(msg.Headers[0].Value))

		var decoded maropost.Order
		require.NoError(t, json.Unmarshal(msg.Value, &decoded))
		assert.Equal(t, orders[i].OrderID, decoded.OrderID)
		assert.True(t, orders[i].GrandTotal.Equal(decoded.GrandTotal))
	}
}

func TestPublish(t *testing.T) {
	msgs, err := OrderMessages(testOrders(2), "run-2")
	require.NoError(t, err)

	w := new(MockWriter)
	w.On("WriteMessages", mock.Anything, mock.Anything).Return(nil)

	sent, err := Publish(context.Background(), w, msgs, 3, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	w.AssertNumberOfCalls(t, "WriteMessages", 2)
}

func TestPublishRetriesThenFails(t *testing.T) {
	msgs, err := OrderMessages(testOrders(2), "run-3")
	require.NoError(t, err)

	errBroker := errors.New("broker unavailable")
	w := new(MockWriter)
	w.On("WriteMessages", mock.Anything, mock.Anything).Return(nil).Once()
	w.On("WriteMessages", mock.Anything, mock.Anything).Return(errBroker)

	sent, err := Publish(context.Background(), w, msgs, 3, time.Millisecond)

	require.Error(t, err)
	assert.ErrorIs(t, err, errBroker)
	assert.Equal(t, 1, sent)
	w.AssertNumberOfCalls(t, "WriteMessages", 4)
}

func TestKafkaConfig(t *testing.T) {
	cfg := config.Default().Kafka.ToKafkaConfig()

	assert.Equal(t, []string{"localhost:9092"}, cfg.Brokers)
	assert.Equal(t, "maropost-orders", cfg.Topic)

	writer := kafkaClient.NewWriter(cfg)
	defer writer.Close()
	assert.Equal(t, "maropost-orders", writer.Topic)
	assert.IsType(t, &kafka.LeastBytes{}, writer.Balancer)
}
