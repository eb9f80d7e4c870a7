package nsq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/cabbooking/internal/pkg/logger"
)

// Producer publishes JSON messages to nsqd topics
type Producer struct {
	producer *nsq.Producer
}

// NewProducer connects to the nsqd at address and pings it once
func NewProducer(address string) (*Producer, error) {
	producer, err := nsq.NewProducer(address, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping nsqd at %s: %w", address, err)
	}
	return &Producer{producer: producer}, nil
}

// Publish sends message to topic right away
func (p *Producer) Publish(topic string, message interface{}) error {
	body, err := encode(message)
	if err != nil {
		return err
	}
	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	logger.Debug("Published NSQ message", logger.String("topic", topic))
	return nil
}

// DeferredPublish asks nsqd to hold message back for delay before delivery
func (p *Producer) DeferredPublish(topic string, delay time.Duration, message interface{}) error {
	body, err := encode(message)
	if err != nil {
		return err
	}
	if err := p.producer.DeferredPublish(topic, delay, body); err != nil {
		return fmt.Errorf("failed to defer publish to %s: %w", topic, err)
	}
	logger.Debug("Deferred NSQ message",
		logger.String("topic", topic),
		logger.Duration("delay", delay))
	return nil
}

// Ping checks the connection to nsqd
func (p *Producer) Ping() error {
	return p.producer.Ping()
}

// Stop flushes and closes the connection
func (p *Producer) Stop() {
	p.producer.Stop()
}

func encode(message interface{}) ([]byte, error) {
	body, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}
	return body, nil
}
