package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	nrpkg "github.com/piresc/cabbooking/internal/pkg/newrelic"
)

// DecodeEvent parses a message body and checks it belongs to the expected
// category. Every failure wraps models.ErrValidation.
func DecodeEvent(data []byte, category models.NotificationCategory) (models.NotificationEvent, error) {
	var event models.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return event, fmt.Errorf("%w: malformed notification event: %v", models.ErrValidation, err)
	}
	if err := event.Validate(); err != nil {
		return event, err
	}
	if event.Category != category {
		return event, fmt.Errorf("%w: %s event on the %s channel", models.ErrValidation, event.Category, category)
	}
	return event, nil
}

// MessageID is the broker-side dedupe key of an event
func MessageID(event models.NotificationEvent) string {
	return event.UID + ":" + event.NotificationID()
}

// DeliverFunc adapts uc.Deliver to a broker message handler for one category.
// Each message runs in its own background transaction.
func DeliverFunc(uc NotificationUC, nrApp *newrelic.Application, category models.NotificationCategory, txnName string) func(ctx context.Context, data []byte) error {
	return func(ctx context.Context, data []byte) (err error) {
		ctx, end := nrpkg.StartBackgroundTransaction(ctx, nrApp, txnName)
		defer func() { end(err) }()

		event, err := DecodeEvent(data, category)
		if err != nil {
			logger.ErrorCtx(ctx, "Rejected notification event",
				logger.String("category", string(category)),
				logger.String("raw_message", string(data)),
				logger.ErrorField(err))
			return err
		}

		if txn := nrpkg.FromContext(ctx); txn != nil {
			nrpkg.AddTransactionAttribute(txn, "user.id", event.UID)
			nrpkg.AddTransactionAttribute(txn, "booking.id", event.BookingID)
		}

		return uc.Deliver(ctx, event)
	}
}
