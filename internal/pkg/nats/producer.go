package nats

import (
	"context"
	"encoding/json"
	"fmt"
)

// Publisher is the part of Client a Producer needs
type Publisher interface {
	Publish(ctx context.Context, subject string, data []byte, msgID string) error
}

// Producer publishes JSON encoded messages to JetStream
type Producer struct {
	publisher Publisher
}

// NewProducer creates a producer on top of publisher
func NewProducer(publisher Publisher) *Producer {
	return &Producer{publisher: publisher}
}

// Publish marshals message and stores it on subject under msgID
func (p *Producer) Publish(ctx context.Context, subject, msgID string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return p.publisher.Publish(ctx, subject, msgBytes, msgID)
}
