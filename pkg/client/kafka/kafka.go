// Package kafka создает Kafka Writer для публикации фикстур.
package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// Config содержит адреса брокеров, топик и настройки Writer.
type Config struct {
	Brokers []string
	Topic   string
	Writer  WriterConfig
}

// WriterConfig содержит таймауты и имя балансировщика.
type WriterConfig struct {
	WriteTimeout time.Duration
	ReadTimeout  time.Duration
	Balancer     string
}

// NewWriter создает Kafka Writer по конфигурации. Нулевые таймауты заменяются на 10 секунд.
func NewWriter(cfg Config) *kafka.Writer {
	writeTimeout := cfg.Writer.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	readTimeout := cfg.Writer.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 10 * time.Second
	}

	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     Balancer(cfg.Writer.Balancer),
		WriteTimeout: writeTimeout,
		ReadTimeout:  readTimeout,
	}
}

// Balancer возвращает балансировщик по имени. Неизвестное имя дает LeastBytes.
func Balancer(name string) kafka.Balancer {
	switch name {
	case "hash":
		return &kafka.Hash{}
	case "round_robin":
		return &kafka.RoundRobin{}
	case "crc32":
		return &kafka.CRC32Balancer{}
	default:
		return &kafka.LeastBytes{}
	}
}
