package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL string        `env:"DATABASE_URL"`
	BatchSize   uint          `env:"BATCH_SIZE" envDefault:"50"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	MetricsAddr string        `env:"METRICS_ADDR"`

	Pagination Pagination
	RabbitMQ   RabbitMQ
}

// Pagination holds basket view paging defaults.
type Pagination struct {
	DefaultPage  uint `env:"DEFAULT_PAGE" envDefault:"1"`
	DefaultLimit uint `env:"DEFAULT_LIMIT" envDefault:"10"`
	MaxLimit     uint `env:"MAX_LIMIT" envDefault:"100"`
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"basket-ex"`
	Queue    string `env:"RABBITMQ_QUEUE" envDefault:"basket-service.commands"`
}
