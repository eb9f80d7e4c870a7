package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/bookings"
)

const (
	defaultLeadTime      = 10 * time.Minute
	defaultCabReadyDelay = 3 * time.Minute
)

// bookingUC implements the bookings.BookingUC interface
type bookingUC struct {
	cfg      *models.Config
	repo     bookings.BookingRepo
	discount bookings.DiscountTrigger
	cabReady bookings.CabReadyScheduler
	now      func() time.Time
}

// NewBookingUC creates a new booking use case
func NewBookingUC(
	cfg *models.Config,
	repo bookings.BookingRepo,
	discount bookings.DiscountTrigger,
	cabReady bookings.CabReadyScheduler,
) (bookings.BookingUC, error) {
	return &bookingUC{
		cfg:      cfg,
		repo:     repo,
		discount: discount,
		cabReady: cabReady,
		now:      time.Now,
	}, nil
}

// CreateBooking validates and persists a booking, then kicks off the discount
// check and the cab-ready notification. Neither follow-up can fail the call.
func (uc *bookingUC) CreateBooking(ctx context.Context, ownerID string, req models.CreateBookingRequest) (string, error) {
	class, ok := models.ParseCabClass(req.CabType)
	if !ok {
		return "", fmt.Errorf("%w: unknown cab type %q", models.ErrValidation, req.CabType)
	}
	if req.Passengers < 1 || req.Passengers > class.MaxPassengers() {
		return "", fmt.Errorf("%w: passengers must be between 1 and %d for %s",
			models.ErrValidation, class.MaxPassengers(), class)
	}
	start := strings.TrimSpace(req.StartLocation)
	end := strings.TrimSpace(req.EndLocation)
	if start == "" || end == "" {
		return "", fmt.Errorf("%w: start and end locations are required", models.ErrValidation)
	}

	now := uc.now().UTC()
	scheduledAt := now.Add(uc.leadTime())
	if req.ScheduledAt != nil {
		scheduledAt = req.ScheduledAt.UTC()
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		OwnerID:        ownerID,
		StartLocation:  start,
		EndLocation:    end,
		ScheduledAt:    scheduledAt,
		PassengerCount: req.Passengers,
		CabClass:       class,
		Paid:           false,
		CreatedAt:      now,
	}

	if err := uc.repo.CreateBooking(ctx, booking); err != nil {
		logger.Error("Failed to create booking",
			logger.String("user_id", ownerID),
			logger.ErrorField(err))
		return "", err
	}

	logger.Info("Booking created",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", ownerID),
		logger.String("cab_class", string(class)),
		logger.Int("passengers", booking.PassengerCount))

	if err := uc.discount.OnBookingCreated(ctx, ownerID, booking.ID); err != nil {
		logger.Warn("Discount check failed after booking",
			logger.String("booking_id", booking.ID),
			logger.String("user_id", ownerID),
			logger.ErrorField(err))
	}

	uc.cabReady.ScheduleCabReady(ctx, ownerID, booking.ID, start, end, uc.cabReadyDelay())

	return booking.ID, nil
}

// GetCurrent lists the owner's bookings that have not started yet
func (uc *bookingUC) GetCurrent(ctx context.Context, ownerID string) ([]*models.Booking, error) {
	return uc.repo.ListUpcoming(ctx, ownerID, uc.now().UTC())
}

// GetPast lists the owner's bookings whose schedule has passed
func (uc *bookingUC) GetPast(ctx context.Context, ownerID string) ([]*models.Booking, error) {
	return uc.repo.ListPast(ctx, ownerID, uc.now().UTC())
}

// GetByID returns a booking owned by ownerID
func (uc *bookingUC) GetByID(ctx context.Context, ownerID, id string) (*models.Booking, error) {
	booking, err := uc.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.OwnerID != ownerID {
		return nil, fmt.Errorf("booking %s: %w", id, models.ErrForbidden)
	}
	return booking, nil
}

// MarkPaid flips the paid flag once. A false result means nothing changed.
func (uc *bookingUC) MarkPaid(ctx context.Context, ownerID, id string) (bool, error) {
	changed, err := uc.repo.MarkPaid(ctx, ownerID, id)
	if err != nil {
		return false, err
	}
	if changed {
		logger.Info("Booking marked paid",
			logger.String("booking_id", id),
			logger.String("user_id", ownerID))
	}
	return changed, nil
}

func (uc *bookingUC) leadTime() time.Duration {
	if uc.cfg != nil && uc.cfg.Booking.DefaultLeadTime > 0 {
		return time.Duration(uc.cfg.Booking.DefaultLeadTime) * time.Minute
	}
	return defaultLeadTime
}

func (uc *bookingUC) cabReadyDelay() time.Duration {
	if uc.cfg != nil && uc.cfg.Booking.CabReadyDelay > 0 {
		return time.Duration(uc.cfg.Booking.CabReadyDelay) * time.Second
	}
	return defaultCabReadyDelay
}
