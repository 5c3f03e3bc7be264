package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"halisaha-api/internal/pkg/config"
	"halisaha-api/internal/pkg/errs"
	"halisaha-api/internal/usecase/venuestate"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	minBackoff = time.Second
	maxBackoff = 30 * time.Second
)

type TaskHandler interface {
	Handle(ctx context.Context, task venuestate.Task) error
}

// Consumer replays reconcile tasks. A task that fails again is re-published with its
// attempt count raised until MaxAttempts, then dropped; the periodic sweep covers the rest.
type Consumer struct {
	url         string
	queue       string
	prefetch    int
	maxAttempts int
	handler     TaskHandler
	retry       venuestate.TaskPublisher
	logger      *slog.Logger
}

func NewConsumer(cfg config.BrokerConfig, handler TaskHandler, retry venuestate.TaskPublisher, logger *slog.Logger) *Consumer {
	return &Consumer{
		url:         cfg.URL,
		queue:       cfg.Queue,
		prefetch:    cfg.Prefetch,
		maxAttempts: cfg.MaxAttempts,
		handler:     handler,
		retry:       retry,
		logger:      logger,
	}
}

// Run reconnects with exponential backoff until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	backoff := minBackoff
	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.logger.Warn("reconcile consumer: dial failed",
				slog.String("error", err.Error()),
				slog.Duration("retry_in", backoff))
			if !sleep(ctx, backoff) {
				return
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}
		backoff = minBackoff

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return
		}
		c.logger.Warn("reconcile consumer: loop ended, reconnecting", slog.String("error", errString(err)))
		if !sleep(ctx, 2*time.Second) {
			return
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "open channel")
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		c.logger.Warn("reconcile consumer: set QoS failed", slog.String("error", err.Error()))
	}
	if err := declareQueue(ch, c.queue); err != nil {
		return err
	}
	msgs, err := ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return errs.Wrap(err, "consume")
	}

	c.logger.Info("reconcile consumer started", slog.String("queue", c.queue))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errs.New("deliveries channel closed")
			}
			c.HandleDelivery(ctx, d)
		}
	}
}

// HandleDelivery always settles d: ack on success or after a re-publish, nack without requeue otherwise.
func (c *Consumer) HandleDelivery(ctx context.Context, d amqp.Delivery) {
	var task venuestate.Task
	if err := json.Unmarshal(d.Body, &task); err != nil {
		c.logger.Error("reconcile consumer: undecodable task dropped", slog.String("error", err.Error()))
		_ = d.Nack(false, false)
		return
	}

	err := c.handler.Handle(ctx, task)
	if err == nil {
		_ = d.Ack(false)
		return
	}

	attrs := []any{
		slog.String("kind", string(task.Kind)),
		slog.String("venue_id", task.VenueID.String()),
		slog.Int("attempt", task.Attempt),
		slog.String("error", err.Error()),
	}
	if task.Validate() != nil || task.Attempt >= c.maxAttempts {
		c.logger.Error("reconcile task dropped", attrs...)
		_ = d.Nack(false, false)
		return
	}

	task.Attempt++
	task.Reason = err.Error()
	if perr := c.retry.Publish(ctx, task); perr != nil {
		c.logger.Error("reconcile task re-publish failed, requeueing", append(attrs, slog.String("publish_error", perr.Error()))...)
		_ = d.Nack(false, true)
		return
	}
	c.logger.Warn("reconcile task failed, re-queued", attrs...)
	_ = d.Ack(false)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
