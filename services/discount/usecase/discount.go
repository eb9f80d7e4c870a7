package usecase

import (
	"context"
	"errors"

	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/discount"
)

// discountUC implements the discount.DiscountUC interface
type discountUC struct {
	repo discount.DiscountRepo
	gw   discount.DiscountGW
}

// NewDiscountUC creates a new discount use case
func NewDiscountUC(repo discount.DiscountRepo, gw discount.DiscountGW) discount.DiscountUC {
	return &discountUC{
		repo: repo,
		gw:   gw,
	}
}

// OnBookingCreated grants the discount when bookingID is the owner's third
// booking. Replays and concurrent creations grant at most once.
func (uc *discountUC) OnBookingCreated(ctx context.Context, ownerID, bookingID string) error {
	ordinal, err := uc.repo.BookingOrdinal(ctx, ownerID, bookingID)
	if err != nil {
		return err
	}
	if ordinal != discount.EligibleOrdinal {
		return nil
	}

	granted, err := uc.repo.GrantDiscount(ctx, ownerID)
	if err != nil {
		return err
	}
	if !granted {
		logger.Debug("Discount already granted",
			logger.String("user_id", ownerID),
			logger.String("booking_id", bookingID))
		return nil
	}

	logger.Info("Discount granted",
		logger.String("user_id", ownerID),
		logger.String("booking_id", bookingID))

	pubErr := uc.gw.PublishDiscountEarned(ctx, models.NotificationEvent{
		UID:       ownerID,
		BookingID: bookingID,
		Message:   models.DiscountEarnedMessage,
		Category:  models.CategoryDiscount,
	})
	if pubErr == nil {
		return nil
	}

	// a committed grant is never replayed
	logger.Warn("Failed to publish discount event, writing inbox entry directly",
		logger.String("user_id", ownerID),
		logger.String("booking_id", bookingID),
		logger.Err(pubErr))
	if err := uc.repo.SaveDiscountNotification(ctx, ownerID, models.DiscountEarnedMessage); err != nil {
		logger.Error("Discount granted without inbox entry",
			logger.String("user_id", ownerID),
			logger.String("booking_id", bookingID),
			logger.Err(err))
		return errors.Join(pubErr, err)
	}
	return nil
}

// TryConsume returns the discount multiplier and clears the flag when the
// user holds a discount. It runs in the caller's transaction.
func (uc *discountUC) TryConsume(ctx context.Context, ownerID string) (float64, error) {
	consumed, err := uc.repo.ConsumeDiscount(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	if !consumed {
		return discount.NoDiscount, nil
	}
	if err := uc.repo.RemoveDiscountNotification(ctx, ownerID); err != nil {
		return 0, err
	}

	logger.Info("Discount consumed", logger.String("user_id", ownerID))
	return discount.Multiplier, nil
}

// IsAvailable reports whether the user currently holds a discount
func (uc *discountUC) IsAvailable(ctx context.Context, ownerID string) (bool, error) {
	return uc.repo.IsAvailable(ctx, ownerID)
}
