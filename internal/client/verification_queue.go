package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"golang.org/x/sync/semaphore"
)

// VerificationJob asks the worker to run automated verification for a slip.
type VerificationJob struct {
	SlipID     string    `json:"slip_id"`
	BookingID  string    `json:"booking_id"`
	SlipURL    string    `json:"slip_url"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// JobHandler processes one verification job.
type JobHandler func(ctx context.Context, job VerificationJob) error

// RabbitMQConfig holds broker settings for the verification queue.
type RabbitMQConfig struct {
	URL        string
	Exchange   string
	Queue      string
	RoutingKey string
	Prefetch   int
}

// VerificationQueue publishes and consumes verification jobs over a durable
// RabbitMQ topic exchange.
type VerificationQueue struct {
	cfg   RabbitMQConfig
	conn  *amqp.Connection
	pubCh *amqp.Channel
	pubMu sync.Mutex
	log   zerolog.Logger
}

// NewVerificationQueue dials the broker and declares the exchange, queue and
// binding.
func NewVerificationQueue(cfg RabbitMQConfig, log zerolog.Logger) (*VerificationQueue, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	q, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("bind %s: %w", cfg.RoutingKey, err)
	}

	return &VerificationQueue{cfg: cfg, conn: conn, pubCh: ch, log: log}, nil
}

// Dispatch publishes a job for the slip. It satisfies the workflow's
// dispatcher interface.
func (q *VerificationQueue) Dispatch(ctx context.Context, slipID, bookingID, slipURL string) error {
	body, err := json.Marshal(VerificationJob{
		SlipID:     slipID,
		BookingID:  bookingID,
		SlipURL:    slipURL,
		EnqueuedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	headers := amqp.Table{}
	otel.GetTextMapPropagator().Inject(ctx, amqpHeaderCarrier(headers))

	q.pubMu.Lock()
	defer q.pubMu.Unlock()
	return q.pubCh.PublishWithContext(ctx, q.cfg.Exchange, q.cfg.RoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    slipID,
		Headers:      headers,
		Body:         body,
	})
}

// Consume delivers jobs to handle until ctx is cancelled. Up to Prefetch
// jobs are handled concurrently. Handler errors and malformed messages are
// dropped; the slip stays pending and is picked up again by the stale-pending
// sweep.
func (q *VerificationQueue) Consume(ctx context.Context, handle JobHandler) error {
	ch, err := q.conn.Channel()
	if err != nil {
		return fmt.Errorf("open consumer channel: %w", err)
	}
	defer ch.Close()

	prefetch := q.cfg.Prefetch
	if prefetch <= 0 {
		prefetch = 8
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx, q.cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	return q.serve(ctx, deliveries, prefetch, handle)
}

// serve fans deliveries out to at most limit concurrent handlers and waits
// for in-flight jobs before returning.
func (q *VerificationQueue) serve(ctx context.Context, deliveries <-chan amqp.Delivery, limit int, handle JobHandler) error {
	sem := semaphore.NewWeighted(int64(limit))
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			if err := sem.Acquire(ctx, 1); err != nil {
				// Shutting down: hand the job back to the broker.
				_ = d.Nack(false, true)
				return nil
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release(1)
				q.handleDelivery(ctx, d, handle)
			}()
		}
	}
}

func (q *VerificationQueue) handleDelivery(ctx context.Context, d amqp.Delivery, handle JobHandler) {
	var job VerificationJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		q.log.Warn().Err(err).Msg("verification queue: malformed job dropped")
		_ = d.Nack(false, false)
		return
	}

	if d.Headers != nil {
		ctx = otel.GetTextMapPropagator().Extract(ctx, amqpHeaderCarrier(d.Headers))
	}

	if err := handle(ctx, job); err != nil {
		q.log.Warn().Err(err).
			Str("slip_id", job.SlipID).
			Msg("verification queue: job failed (slip stays pending)")
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

// Close closes the channel and connection.
func (q *VerificationQueue) Close() error {
	if q.pubCh != nil {
		_ = q.pubCh.Close()
	}
	if q.conn != nil {
		return q.conn.Close()
	}
	return nil
}

// amqpHeaderCarrier adapts AMQP headers to the OpenTelemetry text map carrier.
type amqpHeaderCarrier amqp.Table

var _ propagation.TextMapCarrier = amqpHeaderCarrier(nil)

func (c amqpHeaderCarrier) Get(key string) string {
	if v, ok := c[key].(string); ok {
		return v
	}
	return ""
}

func (c amqpHeaderCarrier) Set(key, value string) { c[key] = value }

func (c amqpHeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
