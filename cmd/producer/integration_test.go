package main

import (
	"context"
	"os"
	"testing"
	"time"

	"maropost_fixtures/internal/config"
	kafkaClient "maropost_fixtures/pkg/client/kafka"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKafkaIntegration публикует заказы в настоящий брокер из KAFKA_BROKER.
func TestKafkaIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		t.Skip("KAFKA_BROKER is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := config.Default().Kafka
	cfg.Brokers = []string{broker}

	writer := kafkaClient.NewWriter(cfg.ToKafkaConfig())
	require.NotNil(t, writer)
	writer.AllowAutoTopicCreation = true
	defer func() {
		assert.NoError(t, writer.Close())
	}()

	msgs, err := OrderMessages(testOrders(3), uuid.NewString())
	require.NoError(t, err)

	sent, err := Publish(ctx, writer, msgs, cfg.MaxRetries, cfg.RetryDelay)
	require.NoError(t, err)
	assert.Equal(t, 3, sent)
}
