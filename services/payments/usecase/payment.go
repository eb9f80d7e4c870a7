package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/database"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	nrpkg "github.com/piresc/cabbooking/internal/pkg/newrelic"
	"github.com/piresc/cabbooking/services/payments"
)

// paymentUC implements the payments.PaymentUC interface
type paymentUC struct {
	repo     payments.PaymentRepo
	bookings payments.BookingStore
	discount payments.DiscountConsumer
	geo      payments.GeoLookup
	fares    payments.FareLookup
	tx       database.Transactor
	loc      *time.Location
	now      func() time.Time
}

// NewPaymentUC creates a new payment use case. Night pricing is read in the
// configured timezone, UTC when unset.
func NewPaymentUC(
	cfg *models.Config,
	repo payments.PaymentRepo,
	bookings payments.BookingStore,
	discount payments.DiscountConsumer,
	geo payments.GeoLookup,
	fares payments.FareLookup,
	tx database.Transactor,
) (payments.PaymentUC, error) {
	loc := time.UTC
	if cfg != nil && cfg.Pricing.Timezone != "" {
		l, err := time.LoadLocation(cfg.Pricing.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid pricing timezone %q: %w", cfg.Pricing.Timezone, err)
		}
		loc = l
	}

	return &paymentUC{
		repo:     repo,
		bookings: bookings,
		discount: discount,
		geo:      geo,
		fares:    fares,
		tx:       tx,
		loc:      loc,
		now:      time.Now,
	}, nil
}

// Pay prices the booking and settles it. Marking the booking paid, consuming
// the discount and storing the payment commit together or not at all.
func (uc *paymentUC) Pay(ctx context.Context, ownerID, bookingID string) (*models.PaymentDTO, error) {
	booking, err := uc.bookings.GetByID(ctx, ownerID, bookingID)
	if err != nil {
		if errors.Is(err, models.ErrForbidden) {
			return nil, fmt.Errorf("booking %s: %w", bookingID, models.ErrNotFound)
		}
		return nil, err
	}
	if booking.Paid {
		return nil, fmt.Errorf("booking %s is already paid: %w", bookingID, models.ErrConflict)
	}

	cabMultiplier, ok := booking.CabClass.Multiplier()
	if !ok {
		return nil, fmt.Errorf("%w: unknown cab class %q", models.ErrValidation, booking.CabClass)
	}
	passengerMult, err := passengerMultiplier(booking.PassengerCount)
	if err != nil {
		return nil, err
	}
	timeMult := timeOfDayMultiplier(booking.ScheduledAt, uc.loc)

	baseFare, err := uc.quote(ctx, booking)
	if err != nil {
		return nil, err
	}

	var payment *models.Payment
	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		changed, err := uc.bookings.MarkPaid(ctx, ownerID, bookingID)
		if err != nil {
			return err
		}
		if !changed {
			return fmt.Errorf("booking %s is already paid: %w", bookingID, models.ErrConflict)
		}

		discountMult, err := uc.discount.TryConsume(ctx, ownerID)
		if err != nil {
			return err
		}

		payment = &models.Payment{
			ID:                  uuid.New().String(),
			BookingID:           bookingID,
			UserID:              ownerID,
			BaseFare:            baseFare,
			CabMultiplier:       cabMultiplier,
			TimeOfDayMultiplier: timeMult,
			PassengerMultiplier: passengerMult,
			DiscountMultiplier:  discountMult,
			Total:               round2(baseFare * cabMultiplier * timeMult * passengerMult * discountMult),
			CreatedAt:           uc.now().UTC(),
		}
		return uc.repo.CreatePayment(ctx, payment)
	})
	if err != nil {
		logger.Error("Payment failed",
			logger.String("booking_id", bookingID),
			logger.String("user_id", ownerID),
			logger.ErrorField(err))
		return nil, err
	}

	logger.Info("Payment completed",
		logger.String("payment_id", payment.ID),
		logger.String("booking_id", bookingID),
		logger.Float64("total", payment.Total),
		logger.Float64("discount_multiplier", payment.DiscountMultiplier))

	dto := payment.ToDTO()
	return &dto, nil
}

func (uc *paymentUC) quote(ctx context.Context, booking *models.Booking) (float64, error) {
	var fare float64
	err := nrpkg.WithSegment(ctx, "Payments.Quote", func() error {
		from, err := uc.geo.Geocode(ctx, booking.StartLocation)
		if err != nil {
			return fmt.Errorf("failed to geocode %q: %w", booking.StartLocation, err)
		}
		to, err := uc.geo.Geocode(ctx, booking.EndLocation)
		if err != nil {
			return fmt.Errorf("failed to geocode %q: %w", booking.EndLocation, err)
		}
		fare, err = uc.fares.BaseFare(ctx, from, to)
		if err != nil {
			return fmt.Errorf("failed to look up fare: %w", err)
		}
		return nil
	})
	return fare, err
}

// GetPayments lists the payments of userID for that same user
func (uc *paymentUC) GetPayments(ctx context.Context, callerID, userID string) ([]*models.Payment, error) {
	if callerID == "" || callerID != userID {
		return nil, fmt.Errorf("payments of %s: %w", userID, models.ErrForbidden)
	}
	return uc.repo.ListByUser(ctx, userID)
}

// GetReceipt renders one of userID's payments as a PDF. A payment owned by
// someone else reads as missing.
func (uc *paymentUC) GetReceipt(ctx context.Context, callerID, userID, paymentID string) (*models.Receipt, error) {
	if callerID == "" || callerID != userID {
		return nil, fmt.Errorf("receipt of %s: %w", userID, models.ErrForbidden)
	}

	payment, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.UserID != userID {
		return nil, fmt.Errorf("payment %s: %w", paymentID, models.ErrNotFound)
	}

	booking, err := uc.bookings.GetByID(ctx, userID, payment.BookingID)
	if err != nil {
		return nil, err
	}

	content, err := renderReceipt(payment, booking, uc.loc)
	if err != nil {
		logger.Error("Failed to render receipt",
			logger.String("payment_id", paymentID),
			logger.ErrorField(err))
		return nil, err
	}

	return &models.Receipt{
		Filename:    fmt.Sprintf("receipt-%s.pdf", payment.ID),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}
