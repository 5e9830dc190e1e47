package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	DefaultExchange = "eventix.events"

	TopicEventCreated = "event.created"
	TopicEventDeleted = "event.deleted"
	TopicOrderCreated = "order.created"
	TopicOrderPaid    = "order.paid"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, payload interface{}) error
	Close() error
}

// Message is the JSON body of every published domain event.
type Message struct {
	Topic      string          `json:"topic"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data"`
}

func Encode(topic string, payload interface{}, now time.Time) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("broker: encode %s payload: %w", topic, err)
	}
	return json.Marshal(Message{Topic: topic, OccurredAt: now.UTC(), Data: data})
}

// Broker publishes to a durable topic exchange.
type Broker struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	url      string
	logger   *zap.Logger
}

func NewBroker(url, exchange string, logger *zap.Logger) (*Broker, error) {
	b := &Broker{
		exchange: exchange,
		url:      url,
		logger:   logger.Named("broker"),
	}
	if err := b.connect(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Broker) connect() error {
	conn, err := amqp.Dial(b.url)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		b.exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	b.conn = conn
	b.channel = ch
	return nil
}

func (b *Broker) ensureConnection() error {
	if b.conn == nil || b.conn.IsClosed() || b.channel == nil || b.channel.IsClosed() {
		b.logger.Warn("reconnecting to RabbitMQ")
		return b.connect()
	}
	return nil
}

func (b *Broker) Publish(ctx context.Context, topic string, payload interface{}) error {
	body, err := Encode(topic, payload, time.Now())
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.ensureConnection(); err != nil {
		return err
	}

	err = b.channel.PublishWithContext(ctx,
		b.exchange,
		topic,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}

	b.logger.Debug("published", zap.String("topic", topic))
	return nil
}

func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.channel != nil {
		b.channel.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}

// NoopPublisher is used when no RabbitMQ URL is configured.
type NoopPublisher struct {
	logger *zap.Logger
}

func NewNoopPublisher(logger *zap.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger.Named("broker")}
}

func (p *NoopPublisher) Publish(ctx context.Context, topic string, payload interface{}) error {
	p.logger.Debug("broker disabled, dropping message", zap.String("topic", topic))
	return nil
}

func (p *NoopPublisher) Close() error { return nil }
