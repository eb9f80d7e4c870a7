package gateway

import (
	"context"
	"time"

	"github.com/piresc/cabbooking/internal/pkg/constants"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// NSQPublisher is the part of *nsqpkg.Producer the gateway needs
type NSQPublisher interface {
	Publish(topic string, message interface{}) error
	DeferredPublish(topic string, delay time.Duration, message interface{}) error
}

// NSQGateway publishes notification events to NSQ topics
type NSQGateway struct {
	producer NSQPublisher
}

// NewNSQGateway creates a new NSQ gateway
func NewNSQGateway(producer NSQPublisher) *NSQGateway {
	return &NSQGateway{producer: producer}
}

// PublishDiscountEarned publishes a discount-earned event
func (g *NSQGateway) PublishDiscountEarned(_ context.Context, event models.NotificationEvent) error {
	return g.producer.Publish(constants.TopicDiscount, event)
}

// PublishCabReady defers the event on nsqd so it arrives close to its deliverAt
func (g *NSQGateway) PublishCabReady(_ context.Context, event models.NotificationEvent, delay time.Duration) error {
	if delay <= 0 {
		return g.producer.Publish(constants.TopicCabReady, event)
	}
	return g.producer.DeferredPublish(constants.TopicCabReady, delay, event)
}
