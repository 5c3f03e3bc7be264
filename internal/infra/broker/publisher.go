// Package broker moves reconcile tasks through RabbitMQ.
package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"halisaha-api/internal/pkg/config"
	"halisaha-api/internal/pkg/errs"
	"halisaha-api/internal/usecase/venuestate"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher keeps one connection and channel open and redials after either closes.
type Publisher struct {
	url    string
	queue  string
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewPublisher(cfg config.BrokerConfig, logger *slog.Logger) *Publisher {
	return &Publisher{url: cfg.URL, queue: cfg.Queue, logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, task venuestate.Task) error {
	body, err := json.Marshal(task)
	if err != nil {
		return errs.Wrap(err, "marshal reconcile task")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}
	err = ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         string(task.Kind),
		Body:         body,
	})
	if err != nil {
		p.reset()
		return errs.Wrapf(err, "publish %s task", task.Kind)
	}

	p.logger.Debug("reconcile task published",
		slog.String("kind", string(task.Kind)),
		slog.String("venue_id", task.VenueID.String()),
		slog.Int("attempt", task.Attempt))
	return nil
}

func (p *Publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "dial broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := declareQueue(ch, p.queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

// durable so queued repairs survive a broker restart
func declareQueue(ch *amqp.Channel, name string) error {
	if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
		return errs.Wrapf(err, "declare queue %s", name)
	}
	return nil
}
