package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher sends JSON messages to one durable queue over the default exchange.
type Publisher struct {
	mu    sync.Mutex
	ch    *amqp.Channel
	queue string
	log   *zap.Logger
}

func NewPublisher(conn *amqp.Connection, queue string, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return &Publisher{ch: ch, queue: queue, log: log}, nil
}

func (p *Publisher) PublishJSON(ctx context.Context, v any) error {
	body, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		p.log.Sugar().Warnw("publish failed", "queue", p.queue, "err", err)
		return err
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Close()
}
