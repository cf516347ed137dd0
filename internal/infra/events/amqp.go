package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"furnicraft/internal/pkg/errs"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes events to a durable topic exchange, routed by topic.
type AMQPPublisher struct {
	url      string
	exchange string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url, exchange: exchange}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *AMQPPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Wrap(err, "failed to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "failed to open rabbitmq channel")
	}

	if err := ch.ExchangeDeclare(
		p.exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrapf(err, "failed to declare exchange %s", p.exchange)
	}

	p.conn, p.ch = conn, ch
	slog.Info("Connected to RabbitMQ", "exchange", p.exchange)
	return nil
}

func (p *AMQPPublisher) Name() string { return "amqp" }

func (p *AMQPPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		p.closeLocked()
		if err := p.connect(); err != nil {
			return err
		}
	}

	err := p.ch.PublishWithContext(ctx,
		p.exchange,
		topic,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now(),
			Type:         topic,
			Body:         payload,
		},
	)
	if err != nil {
		return errs.Wrapf(err, "failed to publish %s", topic)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closeLocked()
}

func (p *AMQPPublisher) closeLocked() error {
	var err error
	if p.ch != nil && !p.ch.IsClosed() {
		err = errs.Combine(err, p.ch.Close())
	}
	if p.conn != nil && !p.conn.IsClosed() {
		err = errs.Combine(err, p.conn.Close())
	}
	p.ch, p.conn = nil, nil
	return err
}
