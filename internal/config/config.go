// Package config содержит настройки генератора фикстур, mock-сервера и Kafka-публикатора и их загрузку из YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"maropost_fixtures/pkg/client/kafka"

	"gopkg.in/yaml.v3"
)

// Значения по умолчанию для набора данных.
const (
	DefaultOrderCount    = 50
	DefaultCustomerCount = 30
	DefaultProductCount  = 100
	DefaultMinOrderLines = 1
	DefaultMaxOrderLines = 4
	MaxOrderLinesLimit   = 4
	DefaultOutputPath    = "fixtures/db.json"
	DefaultConfigPath    = "config.yaml"
)

// ErrInvalid возвращается Validate для некорректной конфигурации.
var ErrInvalid = errors.New("invalid config")

// Config содержит все секции конфигурации.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Server  ServerConfig  `yaml:"server"`
	Cache   CacheConfig   `yaml:"cache"`
	Kafka   KafkaConfig   `yaml:"kafka"`
}

// DatasetConfig задает размеры коллекций, seed и путь к выходному файлу.
// Seed 0 означает случайный seed, пустой ReferenceTime означает текущее время.
type DatasetConfig struct {
	Orders        int    `yaml:"orders"`
	Customers     int    `yaml:"customers"`
	Products      int    `yaml:"products"`
	MinOrderLines int    `yaml:"min_order_lines"`
	MaxOrderLines int    `yaml:"max_order_lines"`
	Seed          int64  `yaml:"seed"`
	OutputPath    string `yaml:"output_path"`
	ReferenceTime string `yaml:"reference_time"`
}

// CacheConfig содержит настройки кэша записей mock-сервера.
type CacheConfig struct {
	ShardCount      int           `yaml:"shard_count"`
	MaxItems        int           `yaml:"max_items"`
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// ServerConfig содержит настройки mock-сервера.
type ServerConfig struct {
	Port            string        `yaml:"port"`
	FixturePath     string        `yaml:"fixture_path"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// KafkaConfig содержит настройки публикации заказов в Kafka.
type KafkaConfig struct {
	Brokers    []string      `yaml:"brokers"`
	Topic      string        `yaml:"topic"`
	Writer     WriterConfig  `yaml:"writer"`
	MaxRetries int           `yaml:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay"`
}

// WriterConfig содержит настройки Kafka Writer.
type WriterConfig struct {
	WriteTimeout time.Duration `yaml:"write_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	Balancer     string        `yaml:"balancer"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Orders:        DefaultOrderCount,
			Customers:     DefaultCustomerCount,
			Products:      DefaultProductCount,
			MinOrderLines: DefaultMinOrderLines,
			MaxOrderLines: DefaultMaxOrderLines,
			OutputPath:    DefaultOutputPath,
		},
		Server: ServerConfig{
			Port:            ":3000",
			FixturePath:     DefaultOutputPath,
			ShutdownTimeout: 5 * time.Second,
		},
		Cache: CacheConfig{
			ShardCount: 4,
		},
		Kafka: KafkaConfig{
			Brokers: []string{"localhost:9092"},
			Topic:   "maropost-orders",
			Writer: WriterConfig{
				WriteTimeout: 10 * time.Second,
				ReadTimeout:  10 * time.Second,
				Balancer:     "least_bytes",
			},
			MaxRetries: 3,
			RetryDelay: time.Second,
		},
	}
}

// Load загружает конфигурацию из файла YAML поверх значений по умолчанию.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault работает как Load, но отсутствие файла не является ошибкой.
func LoadOrDefault(configPath string) (*Config, error) {
	cfg, err := Load(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate проверяет значения, без которых генерация невозможна.
func (c *Config) Validate() error {
	d := c.Dataset
	if d.Orders < 0 || d.Customers < 0 || d.Products < 0 {
		return fmt.Errorf("%w: collection sizes must be >= 0", ErrInvalid)
	}
	if d.MinOrderLines < 1 || d.MaxOrderLines < d.MinOrderLines || d.MaxOrderLines > MaxOrderLinesLimit {
		return fmt.Errorf("%w: order lines range [%d, %d] must lie within [1, %d]", ErrInvalid, d.MinOrderLines, d.MaxOrderLines, MaxOrderLinesLimit)
	}
	if d.OutputPath == "" {
		return fmt.Errorf("%w: output_path is empty", ErrInvalid)
	}
	if d.ReferenceTime != "" {
		if _, err := time.Parse(time.RFC3339, d.ReferenceTime); err != nil {
			return fmt.Errorf("%w: reference_time: %v", ErrInvalid, err)
		}
	}
	return nil
}

// Now возвращает опорное время генерации.
func (d DatasetConfig) Now() time.Time {
	if d.ReferenceTime == "" {
		return time.Now().UTC()
	}
	t, _ := time.Parse(time.RFC3339, d.ReferenceTime)
	return t.UTC()
}

// ToKafkaConfig преобразует KafkaConfig в kafka.Config.
func (c *KafkaConfig) ToKafkaConfig() kafka.Config {
	return kafka.Config{
		Brokers: c.Brokers,
		Topic:   c.Topic,
		Writer:  kafka.WriterConfig(c.Writer),
	}
}
