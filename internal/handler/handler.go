// Package handler dispatches basket service commands consumed from RabbitMQ.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MichalMitros/basket-service/internal/basket"
	"github.com/MichalMitros/basket-service/internal/platform"
	"github.com/MichalMitros/basket-service/internal/platform/models"
	"github.com/MichalMitros/basket-service/internal/platform/rabbitmq"
	"github.com/MichalMitros/basket-service/internal/platform/response"
	"github.com/MichalMitros/basket-service/internal/pricing"
	"github.com/MichalMitros/basket-service/pkg/v1/commander"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
)

//go:generate mockery --name Broker --filename broker.go
//go:generate mockery --name Basket --filename basket.go
//go:generate mockery --name Importer --filename importer.go
//go:generate mockery --name Metrics --filename metrics.go

// ErrUnknownCommand is returned for commands of unsupported type.
var ErrUnknownCommand = errors.New("unknown command type")

// Broker consumes commands and publishes replies.
type Broker interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
	Reply(ctx context.Context, replyTo, correlationID string, message []byte) error
}

// Basket handles basket commands.
type Basket interface {
	ViewBasket(ctx context.Context, req basket.ViewBasketRequest) response.Response[pricing.ViewBasket]
	AddToBasket(ctx context.Context, req basket.AddToBasketRequest) response.Response[basket.Item]
	RemoveFromBasket(ctx context.Context, req basket.RemoveFromBasketRequest) response.Response[basket.Removal]
	ClearBasket(ctx context.Context, req basket.ClearBasketRequest) response.Response[basket.Removal]
}

// Importer imports retailer price feeds.
type Importer interface {
	Import(ctx context.Context, retailerID uuid.UUID) (*models.ImportRun, error)
}

// Metrics records handled commands and imports.
type Metrics interface {
	RecordCommand(command, status string, duration time.Duration)
	RecordImport(retailer string, success bool, matched, unmatched, failed, deleted int32)
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	broker   Broker
	basket   Basket
	importer Importer
	metrics  Metrics
	logger   *zerolog.Logger
	imports  sync.WaitGroup
}

// NewHandler returns new RMQHandler.
func NewHandler(
	broker Broker,
	basket Basket,
	importer Importer,
	metrics Metrics,
	logger *zerolog.Logger,
) *RMQHandler {
	return &RMQHandler{
		broker:   broker,
		basket:   basket,
		importer: importer,
		metrics:  metrics,
		logger:   logger,
	}
}

// Start starts consuming and handling commands from RMQ queue.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.broker.Consume(ctx, queue, h.Handle)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

// Handle handles single command message and replies with the result when message has reply address.
// It returns error only for messages which can't be handled, they are rejected by the broker.
// Price imports run in background, their failures are logged.
func (h *RMQHandler) Handle(ctx context.Context, msg rabbitmq.Message) error {
	start := time.Now()

	cmd, err := decodeMessage(msg.Body)
	if err != nil {
		return err
	}

	if cmd.Type != commander.ImportPricesType {
		return h.process(ctx, cmd, msg, start)
	}

	importCtx := context.WithoutCancel(ctx)
	h.imports.Add(1)
	go func() {
		defer h.imports.Done()
		if err := h.process(importCtx, cmd, msg, start); err != nil {
			h.logger.Error().
				Err(err).
				Str("command", cmd.Type).
				Msg("can't handle message")
		}
	}()

	return nil
}

// Wait blocks until all background price imports are finished.
func (h *RMQHandler) Wait() {
	h.imports.Wait()
}

func (h *RMQHandler) process(ctx context.Context, cmd *commander.Command, msg rabbitmq.Message, start time.Time) error {
	result, status, err := h.dispatch(ctx, cmd)
	if err != nil {
		return err
	}

	h.metrics.RecordCommand(cmd.Type, status.String(), time.Since(start))

	h.logger.Debug().
		Str("command", cmd.Type).
		Str("status", status.String()).
		Msg("command handled")

	if msg.ReplyTo == "" {
		return nil
	}

	reply, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("can't marshal %s reply: %w", cmd.Type, err)
	}

	if err := h.broker.Reply(ctx, msg.ReplyTo, msg.CorrelationID, reply); err != nil {
		return fmt.Errorf("can't reply to %s: %w", cmd.Type, err)
	}

	return nil
}

func (h *RMQHandler) dispatch(ctx context.Context, cmd *commander.Command) (any, codes.Code, error) {
	switch cmd.Type {
	case commander.ViewBasketType:
		return handle(ctx, cmd.Payload, h.basket.ViewBasket)
	case commander.AddToBasketType:
		return handle(ctx, cmd.Payload, h.basket.AddToBasket)
	case commander.RemoveFromBasketType:
		return handle(ctx, cmd.Payload, h.basket.RemoveFromBasket)
	case commander.ClearBasketType:
		return handle(ctx, cmd.Payload, h.basket.ClearBasket)
	case commander.ImportPricesType:
		return handle(ctx, cmd.Payload, h.importPrices)
	default:
		return nil, codes.Unknown, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type)
	}
}

// handle decodes payload into request and passes it to fn.
// Undecodable payload gets INVALID_ARGUMENT response.
func handle[Req, Resp any](
	ctx context.Context,
	payload json.RawMessage,
	fn func(context.Context, Req) response.Response[Resp],
) (any, codes.Code, error) {
	var req Req
	if err := json.Unmarshal(payload, &req); err != nil {
		resp := response.Failure[Resp](fmt.Errorf("%w: can't decode payload", platform.ErrInvalidArgument))
		return resp, resp.Status, nil
	}

	resp := fn(ctx, req)

	return resp, resp.Status, nil
}

func decodeMessage(msg []byte) (*commander.Command, error) {
	var cmd commander.Command
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode command: %w", err)
	}

	return &cmd, nil
}
