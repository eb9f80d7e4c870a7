package nats

import (
	"context"
	"errors"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// MessageHandler processes the payload of one message
type MessageHandler func(ctx context.Context, data []byte) error

// Fetcher pulls batches of messages. jetstream.Consumer satisfies it.
type Fetcher interface {
	Fetch(batch int, opts ...jetstream.FetchOpt) (jetstream.MessageBatch, error)
}

// PullConsumerConfig tunes a PullConsumer
type PullConsumerConfig struct {
	Name      string
	BatchSize int
	FetchWait time.Duration
	Backoff   time.Duration
}

// PullConsumer drives a fetch, handle, acknowledge loop over one durable consumer
type PullConsumer struct {
	fetcher Fetcher
	handler MessageHandler
	config  PullConsumerConfig
}

// NewPullConsumer creates a pull loop, filling unset config with batch 10 and 5s waits
func NewPullConsumer(fetcher Fetcher, handler MessageHandler, config PullConsumerConfig) *PullConsumer {
	if config.BatchSize <= 0 {
		config.BatchSize = 10
	}
	if config.FetchWait <= 0 {
		config.FetchWait = 5 * time.Second
	}
	if config.Backoff <= 0 {
		config.Backoff = 5 * time.Second
	}
	return &PullConsumer{fetcher: fetcher, handler: handler, config: config}
}

// Run pulls until ctx is cancelled. Fetch failures are logged and retried after
// a fixed backoff; unacknowledged messages stay with the server.
func (c *PullConsumer) Run(ctx context.Context) {
	logger.Info("Pull consumer started", logger.String("consumer", c.config.Name))
	for {
		if ctx.Err() != nil {
			logger.Info("Pull consumer stopped", logger.String("consumer", c.config.Name))
			return
		}

		batch, err := c.fetcher.Fetch(c.config.BatchSize, jetstream.FetchMaxWait(c.config.FetchWait))
		if err != nil {
			logger.Error("Failed to fetch messages",
				logger.String("consumer", c.config.Name),
				logger.Err(err))
			if !sleep(ctx, c.config.Backoff) {
				logger.Info("Pull consumer stopped", logger.String("consumer", c.config.Name))
				return
			}
			continue
		}

		for msg := range batch.Messages() {
			if ctx.Err() != nil {
				// left unacked, the server redelivers after AckWait
				continue
			}
			c.handle(ctx, msg)
		}

		if err := batch.Error(); err != nil && !errors.Is(err, jetstream.ErrNoMessages) && !errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("Fetch batch ended with error",
				logger.String("consumer", c.config.Name),
				logger.Err(err))
		}
	}
}

func (c *PullConsumer) handle(ctx context.Context, msg jetstream.Msg) {
	err := c.handler(ctx, msg.Data())
	if err == nil {
		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message",
				logger.String("subject", msg.Subject()),
				logger.Err(ackErr))
		}
		return
	}

	// a payload that fails validation fails the same way on every redelivery
	if errors.Is(err, models.ErrValidation) {
		logger.Error("Dropping unprocessable message",
			logger.String("subject", msg.Subject()),
			logger.Err(err))
		if termErr := msg.Term(); termErr != nil {
			logger.Error("Failed to TERM message", logger.Err(termErr))
		}
		return
	}

	delay := c.config.Backoff
	var retryable interface{ RetryAfter() time.Duration }
	if errors.As(err, &retryable) {
		delay = retryable.RetryAfter()
	} else {
		logger.Error("Error processing message",
			logger.String("subject", msg.Subject()),
			logger.Err(err))
	}

	if nakErr := msg.NakWithDelay(delay); nakErr != nil {
		logger.Error("Failed to NAK message", logger.Err(nakErr))
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
