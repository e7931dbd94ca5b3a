package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"maropost_fixtures/internal/config"
	"maropost_fixtures/internal/generator"
	"maropost_fixtures/internal/logging"
	kafkaClient "maropost_fixtures/pkg/client/kafka"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.Setup("fixture-producer")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("Publishing failed")
		os.Exit(1)
	}
}

// run generates a dataset and publishes its orders to the configured topic.
func run(ctx context.Context) error {
	cfg, err := config.LoadOrDefault(config.DefaultConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ds := generator.New(cfg.Dataset).BuildDataset()
	runID := uuid.NewString()

	msgs, err := OrderMessages(ds.Orders, runID)
	if err != nil {
		return err
	}

	writer := kafkaClient.NewWriter(cfg.Kafka.ToKafkaConfig())
	defer func() {
		if err := writer.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing writer")
		}
	}()

	sent, err := Publish(ctx, writer, msgs, cfg.Kafka.MaxRetries, cfg.Kafka.RetryDelay)
	if err != nil {
		return fmt.Errorf("run %s stopped after %d of %d orders: %w", runID, sent, len(msgs), err)
	}

	log.Info().Int("sent", sent).Str("topic", cfg.Kafka.Topic).Str("run_id", runID).Msg("All orders sent")
	return nil
}
