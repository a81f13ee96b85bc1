package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MichalMitros/basket-service/cmd/basket/config"
	"github.com/MichalMitros/basket-service/internal/basket"
	"github.com/MichalMitros/basket-service/internal/decoder"
	"github.com/MichalMitros/basket-service/internal/fetcher"
	"github.com/MichalMitros/basket-service/internal/handler"
	"github.com/MichalMitros/basket-service/internal/importer"
	"github.com/MichalMitros/basket-service/internal/platform/metrics"
	"github.com/MichalMitros/basket-service/internal/platform/rabbitmq"
	"github.com/MichalMitros/basket-service/internal/platform/storage"
	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const (
	// UserAgent is user agent header value used when fetching retailer feeds.
	UserAgent = "basket-service/0.0.1"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("level", cfg.LogLevel).
			Msg("can't parse log level")
	}
	logger = logger.Level(level)

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ channel")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	pg := storage.NewPostgres(pgDB)

	svc := basket.NewService(
		pg,
		&logger,
		basket.WithPagination(cfg.Pagination.DefaultPage, cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit),
	)

	imp := importer.NewImporter(
		fetcher.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, UserAgent),
		&decoder.Decoder{},
		pg,
		cfg.BatchSize,
	)

	met := metrics.New()
	if cfg.MetricsAddr != "" {
		go func() {
			if err := met.ServeHTTP(ctx, cfg.MetricsAddr); err != nil {
				logger.Error().
					Err(err).
					Str("addr", cfg.MetricsAddr).
					Msg("can't serve metrics")
			}
		}()
	}

	han := handler.NewHandler(conn, svc, imp, met, &logger)

	// start consuming and handling commands
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	logger.Info().Msg("basket service up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer and running price imports to finish
	<-conn.Done()
	han.Wait()

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
