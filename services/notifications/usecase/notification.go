package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/notifications"
)

const publishTimeout = 10 * time.Second

// notificationUC implements the notifications.NotificationUC interface
type notificationUC struct {
	repo    notifications.NotificationRepo
	gw      notifications.NotificationGW
	now     func() time.Time
	pending sync.WaitGroup
}

// NotificationUC is the concrete use case. Wait blocks until scheduled
// publishes have finished.
type NotificationUC interface {
	notifications.NotificationUC
	Wait()
}

// NewNotificationUC creates a new notification use case
func NewNotificationUC(repo notifications.NotificationRepo, gw notifications.NotificationGW) NotificationUC {
	return &notificationUC{
		repo: repo,
		gw:   gw,
		now:  time.Now,
	}
}

// ScheduleCabReady publishes one durable cab-ready event due after delay. The
// publish outlives the caller's request and its failures are only logged.
func (uc *notificationUC) ScheduleCabReady(ctx context.Context, ownerID, bookingID, start, end string, delay time.Duration) {
	deliverAt := uc.now().Add(delay).UTC()
	event := models.NotificationEvent{
		UID:       ownerID,
		BookingID: bookingID,
		Message:   models.CabReadyMessage(bookingID, start, end),
		Category:  models.CategoryCabReady,
		DeliverAt: &deliverAt,
	}

	detached := context.WithoutCancel(ctx)
	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()
		pubCtx, cancel := context.WithTimeout(detached, publishTimeout)
		defer cancel()

		if err := uc.gw.PublishCabReady(pubCtx, event, delay); err != nil {
			logger.Error("Failed to schedule cab-ready notification",
				logger.String("booking_id", bookingID),
				logger.String("user_id", ownerID),
				logger.ErrorField(err))
			return
		}
		logger.Info("Cab-ready notification scheduled",
			logger.String("booking_id", bookingID),
			logger.Time("deliver_at", deliverAt))
	}()
}

// Wait blocks until every scheduled publish has returned
func (uc *notificationUC) Wait() {
	uc.pending.Wait()
}

// Deliver writes the inbox document of an event. Events that are not due yet
// come back as *models.NotDueError so the transport can hold them.
func (uc *notificationUC) Deliver(ctx context.Context, event models.NotificationEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	now := uc.now().UTC()
	if event.DeliverAt != nil && event.DeliverAt.After(now) {
		return &models.NotDueError{Remaining: event.DeliverAt.Sub(now)}
	}

	n := &models.Notification{
		ID:        event.NotificationID(),
		UserID:    event.UID,
		Message:   event.Message,
		CreatedAt: now,
		Read:      false,
	}

	var (
		inserted bool
		err      error
	)
	if event.Category == models.CategoryDiscount {
		inserted, err = uc.repo.InsertDiscountIfEligible(ctx, n)
	} else {
		inserted, err = uc.repo.InsertIfAbsent(ctx, n)
	}
	if err != nil {
		return err
	}

	if inserted {
		logger.InfoCtx(ctx, "Notification delivered",
			logger.String("user_id", n.UserID),
			logger.String("notification_id", n.ID))
	} else {
		logger.InfoCtx(ctx, "Notification skipped",
			logger.String("user_id", n.UserID),
			logger.String("notification_id", n.ID))
	}
	return nil
}

// Add appends a free-form notification to the caller's inbox
func (uc *notificationUC) Add(ctx context.Context, callerID, userID, message string) (*models.Notification, error) {
	if err := checkOwner(callerID, userID); err != nil {
		return nil, err
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", models.ErrValidation)
	}

	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Message:   message,
		CreatedAt: uc.now().UTC(),
	}
	if _, err := uc.repo.InsertIfAbsent(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// List returns the caller's inbox, newest first
func (uc *notificationUC) List(ctx context.Context, callerID, userID string) ([]*models.Notification, error) {
	if err := checkOwner(callerID, userID); err != nil {
		return nil, err
	}
	return uc.repo.List(ctx, userID)
}

// Delete removes one notification from the caller's inbox
func (uc *notificationUC) Delete(ctx context.Context, callerID, userID, id string) error {
	if err := checkOwner(callerID, userID); err != nil {
		return err
	}
	found, err := uc.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("notification %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// MarkRead flags one notification of the caller's inbox as read
func (uc *notificationUC) MarkRead(ctx context.Context, callerID, userID, id string) error {
	if err := checkOwner(callerID, userID); err != nil {
		return err
	}
	found, err := uc.repo.MarkRead(ctx, userID, id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("notification %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func checkOwner(callerID, userID string) error {
	if callerID == "" || callerID != userID {
		return fmt.Errorf("inbox of %s: %w", userID, models.ErrForbidden)
	}
	return nil
}
