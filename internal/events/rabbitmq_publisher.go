// Package events publishes account events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/abrar2030/FinovaBank/internal/domain"
)

const publishTimeout = 5 * time.Second

// RabbitMQPublisher publishes account events to a topic exchange. The
// routing key of each event is the configured prefix followed by the
// event type, e.g. bank.accounts.transaction.applied.
type RabbitMQPublisher struct {
	mu            sync.Mutex
	conn          *amqp.Connection
	channel       *amqp.Channel
	exchange      string
	routingPrefix string
}

// NewRabbitMQPublisher connects to RabbitMQ and declares the exchange.
func NewRabbitMQPublisher(url, exchange, routingPrefix string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &RabbitMQPublisher{
		conn:          conn,
		channel:       channel,
		exchange:      exchange,
		routingPrefix: routingPrefix,
	}, nil
}

// RoutingKey returns the routing key used for an event type.
func (p *RabbitMQPublisher) RoutingKey(eventType string) string {
	return RoutingKey(p.routingPrefix, eventType)
}

// RoutingKey joins a routing prefix and an event type.
func RoutingKey(prefix, eventType string) string {
	if prefix == "" {
		return eventType
	}
	return prefix + "." + eventType
}

// Publish sends the event as a persistent JSON message.
func (p *RabbitMQPublisher) Publish(ctx context.Context, event *domain.AccountEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx,
		p.exchange,                    // exchange
		p.RoutingKey(event.EventType), // routing key
		false,                         // mandatory
		false,                         // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.EventID,
			Timestamp:    time.Now().UTC(),
			Type:         event.EventType,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.EventType, err)
	}
	return nil
}

// Close closes the channel and the connection.
func (p *RabbitMQPublisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			return fmt.Errorf("failed to close channel: %w", err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("failed to close connection: %w", err)
		}
	}
	return nil
}
