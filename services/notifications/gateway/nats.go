package gateway

import (
	"context"
	"time"

	"github.com/piresc/cabbooking/internal/pkg/constants"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/notifications"
)

// JetStreamPublisher publishes JSON payloads under a dedupe id.
// *natspkg.Producer satisfies it.
type JetStreamPublisher interface {
	Publish(ctx context.Context, subject, msgID string, message interface{}) error
}

// NATSGateway publishes notification events to the JetStream stream. Delays
// travel inside the event as deliverAt.
type NATSGateway struct {
	publisher JetStreamPublisher
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(publisher JetStreamPublisher) *NATSGateway {
	return &NATSGateway{publisher: publisher}
}

// PublishDiscountEarned publishes a discount-earned event
func (g *NATSGateway) PublishDiscountEarned(ctx context.Context, event models.NotificationEvent) error {
	return g.publisher.Publish(ctx, constants.SubjectDiscountEarned, notifications.MessageID(event), event)
}

// PublishCabReady publishes a cab-ready event. The subscriber holds it back
// until its deliverAt.
func (g *NATSGateway) PublishCabReady(ctx context.Context, event models.NotificationEvent, _ time.Duration) error {
	return g.publisher.Publish(ctx, constants.SubjectCabReady, notifications.MessageID(event), event)
}
