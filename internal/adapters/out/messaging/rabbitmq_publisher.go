package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"orderdesk/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	dialAttempts   = 5
	publishTimeout = 10 * time.Second
)

// amqpChannel is the part of *amqp.Channel the publisher needs.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher sends order events to a durable fanout exchange.
// The event type is used as routing key so topic consumers can bind to it later.
type RabbitMQPublisher struct {
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
	logger   *slog.Logger
}

// NewRabbitMQPublisher connects to url, retrying with a growing pause, and
// declares exchange.
func NewRabbitMQPublisher(url, exchange string, logger *slog.Logger) (*RabbitMQPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		conn *amqp.Connection
		err  error
	)
	for attempt := 1; attempt <= dialAttempts; attempt++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		if attempt < dialAttempts {
			wait := time.Duration(attempt) * 2 * time.Second
			logger.Warn("rabbitmq connection failed, retrying", "attempt", attempt, "wait", wait, "error", err)
			time.Sleep(wait)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", dialAttempts, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"fanout", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare %s exchange: %w", exchange, err)
	}

	publisher := newRabbitMQPublisher(ch, exchange, logger)
	publisher.conn = conn
	return publisher, nil
}

func newRabbitMQPublisher(ch amqpChannel, exchange string, logger *slog.Logger) *RabbitMQPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &RabbitMQPublisher{channel: ch, exchange: exchange, logger: logger}
}

// Publish sends every event; it keeps going after a failure and returns all errors joined.
func (p *RabbitMQPublisher) Publish(ctx context.Context, events ...order.Event) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	var errs []error
	for _, event := range events {
		body, err := EncodeEvent(event)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		err = p.channel.PublishWithContext(ctx,
			p.exchange,         // exchange
			string(event.Type), // routing key
			false,              // mandatory
			false,              // immediate
			amqp.Publishing{
				ContentType:  contentType,
				DeliveryMode: amqp.Persistent,
				MessageId:    event.ID.String(),
				Type:         string(event.Type),
				Timestamp:    event.OccurredAt,
				Body:         body,
			},
		)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to publish %s for order %s: %w", event.Type, event.OrderID, err))
			continue
		}

		p.logger.DebugContext(ctx, "order event published",
			"broker", "rabbitmq",
			"exchange", p.exchange,
			"type", event.Type,
			"order_id", event.OrderID.String(),
		)
	}

	return errors.Join(errs...)
}

func (p *RabbitMQPublisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
