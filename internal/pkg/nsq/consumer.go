package nsq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// MessageHandler processes the body of one NSQ message
type MessageHandler func(ctx context.Context, body []byte) error

// Consumer handles consuming messages from an NSQ topic/channel
type Consumer struct {
	consumer *nsq.Consumer
	ctx      context.Context
	cancel   context.CancelFunc
}

// ConsumerConfig tunes a Consumer
type ConsumerConfig struct {
	Topic       string
	Channel     string
	MaxInFlight int
	Backoff     time.Duration
}

// NewConsumer creates a consumer for a topic/channel. Messages are retried
// without an attempt limit.
func NewConsumer(config ConsumerConfig, handler MessageHandler) (*Consumer, error) {
	nsqConfig := nsq.NewConfig()
	nsqConfig.MaxAttempts = 0
	if config.MaxInFlight > 0 {
		nsqConfig.MaxInFlight = config.MaxInFlight
	}
	if config.Backoff <= 0 {
		config.Backoff = 5 * time.Second
	}

	consumer, err := nsq.NewConsumer(config.Topic, config.Channel, nsqConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelWarning)

	ctx, cancel := context.WithCancel(context.Background())
	c := &Consumer{consumer: consumer, ctx: ctx, cancel: cancel}
	consumer.AddHandler(&messageHandler{ctx: ctx, handle: handler, backoff: config.Backoff, topic: config.Topic})
	return c, nil
}

// Message is the part of *nsq.Message the handler touches
type Message interface {
	Finish()
	Requeue(delay time.Duration)
	RequeueWithoutBackoff(delay time.Duration)
}

type messageHandler struct {
	ctx     context.Context
	handle  MessageHandler
	backoff time.Duration
	topic   string
}

// HandleMessage implements nsq.Handler. Responses are sent explicitly so the
// requeue delay can follow the handler's error.
func (h *messageHandler) HandleMessage(message *nsq.Message) error {
	message.DisableAutoResponse()
	h.process(message, message.Body)
	return nil
}

func (h *messageHandler) process(message Message, body []byte) {
	err := h.handle(h.ctx, body)
	if err == nil {
		message.Finish()
		return
	}

	if errors.Is(err, models.ErrValidation) {
		logger.Error("Dropping unprocessable message",
			logger.String("topic", h.topic),
			logger.Err(err))
		message.Finish()
		return
	}

	// not due yet: hold it back without pausing the consumer
	var retryable interface{ RetryAfter() time.Duration }
	if errors.As(err, &retryable) {
		message.RequeueWithoutBackoff(retryable.RetryAfter())
		return
	}

	logger.Error("Error processing message",
		logger.String("topic", h.topic),
		logger.Err(err))
	message.Requeue(h.backoff)
}

// ConnectToNSQD connects the consumer directly to an nsqd
func (c *Consumer) ConnectToNSQD(address string) error {
	if err := c.consumer.ConnectToNSQD(address); err != nil {
		return fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return nil
}

// ConnectToLookupd connects the consumer to NSQ lookupd instances
func (c *Consumer) ConnectToLookupd(addresses []string) error {
	for _, addr := range addresses {
		err := c.consumer.ConnectToNSQLookupd(addr)
		if err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd at %s: %w", addr, err)
		}
	}
	return nil
}

// Stop gracefully stops the consumer and waits for in-flight handlers
func (c *Consumer) Stop() {
	c.cancel()
	c.consumer.Stop()
	<-c.consumer.StopChan
}
