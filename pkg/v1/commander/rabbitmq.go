package commander

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name RabbitMQPublisher --filename rabbitmqpublisher.go

// RabbitMQPublisher is RabbitMQ messages publisher.
type RabbitMQPublisher interface {
	Publish(ctx context.Context, routingKey string, message []byte) error
	Request(ctx context.Context, routingKey, replyTo, correlationID string, message []byte) error
}

// SenderOption is custom configuration of RabbitMQSender.
type SenderOption func(s *RabbitMQSender)

// RabbitMQSender sends RMQ messages to routing key.
type RabbitMQSender struct {
	publisher     RabbitMQPublisher
	cmdRoutingKey string
	replyTo       string
	correlationID func() string
}

// NewRabbitMQSender returns new RabbitMQSender using provided publisher for sending messages to provided routing key.
func NewRabbitMQSender(publisher RabbitMQPublisher, cmdRoutingKey string, ops ...SenderOption) RabbitMQSender {
	sender := RabbitMQSender{
		publisher:     publisher,
		cmdRoutingKey: cmdRoutingKey,
		correlationID: uuid.NewString,
	}

	for _, op := range ops {
		op(&sender)
	}

	return sender
}

// Send sends message to RabbitMQSender's routing key.
// With reply queue set every message gets new correlation ID.
func (s RabbitMQSender) Send(ctx context.Context, msg []byte) error {
	if s.replyTo == "" {
		return s.publisher.Publish(ctx, s.cmdRoutingKey, msg)
	}

	return s.publisher.Request(ctx, s.cmdRoutingKey, s.replyTo, s.correlationID(), msg)
}

// WithReplyTo makes RabbitMQSender ask for replies to provided queue.
func WithReplyTo(queue string) SenderOption {
	return func(s *RabbitMQSender) {
		s.replyTo = queue
	}
}

// WithCorrelationID sets function generating correlation IDs of requests.
func WithCorrelationID(fn func() string) SenderOption {
	return func(s *RabbitMQSender) {
		s.correlationID = fn
	}
}
