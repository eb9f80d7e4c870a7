package usecase

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/payments/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inlineTx runs fn directly and records the outcome
type inlineTx struct {
	calls int
	err   error
}

func (t *inlineTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	t.err = fn(ctx)
	return t.err
}

type paymentDeps struct {
	repo     *mocks.MockPaymentRepo
	bookings *mocks.MockBookingStore
	discount *mocks.MockDiscountConsumer
	geo      *mocks.MockGeoLookup
	fares    *mocks.MockFareLookup
	tx       *inlineTx
}

var (
	london = models.Coordinates{Latitude: 51.5074, Longitude: -0.1278}
	paris  = models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}
)

func newPaymentUC(t *testing.T) (*paymentUC, paymentDeps) {
	ctrl := gomock.NewController(t)
	deps := paymentDeps{
		repo:     mocks.NewMockPaymentRepo(ctrl),
		bookings: mocks.NewMockBookingStore(ctrl),
		discount: mocks.NewMockDiscountConsumer(ctrl),
		geo:      mocks.NewMockGeoLookup(ctrl),
		fares:    mocks.NewMockFareLookup(ctrl),
		tx:       &inlineTx{},
	}
	uc, err := NewPaymentUC(&models.Config{}, deps.repo, deps.bookings, deps.discount, deps.geo, deps.fares, deps.tx)
	require.NoError(t, err)
	impl := uc.(*paymentUC)
	impl.now = func() time.Time { return time.Date(2024, 5, 1, 2, 5, 0, 0, time.UTC) }
	return impl, deps
}

func premiumNightBooking() *models.Booking {
	return &models.Booking{
		ID:             "b-1",
		OwnerID:        "u-1",
		StartLocation:  "London",
		EndLocation:    "Paris",
		ScheduledAt:    time.Date(2024, 5, 1, 2, 0, 0, 0, time.UTC),
		PassengerCount: 6,
		CabClass:       models.CabPremium,
	}
}

func expectQuote(deps paymentDeps, fare float64) {
	deps.geo.EXPECT().Geocode(gomock.Any(), "London").Return(london, nil)
	deps.geo.EXPECT().Geocode(gomock.Any(), "Paris").Return(paris, nil)
	deps.fares.EXPECT().BaseFare(gomock.Any(), london, paris).Return(fare, nil)
}

func TestPay_PremiumSixPassengersAtNight(t *testing.T) {
	// Arrange
	uc, deps := newPaymentUC(t)
	ctx := context.Background()

	deps.bookings.EXPECT().GetByID(ctx, "u-1", "b-1").Return(premiumNightBooking(), nil)
	expectQuote(deps, 10.0)
	deps.bookings.EXPECT().MarkPaid(ctx, "u-1", "b-1").Return(true, nil)
	deps.discount.EXPECT().TryConsume(ctx, "u-1").Return(1.0, nil)

	var stored *models.Payment
	deps.repo.EXPECT().CreatePayment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Payment) error {
			stored = p
			return nil
		})

	// Act
	dto, err := uc.Pay(ctx, "u-1", "b-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 28.8, dto.TotalPrice)
	assert.Equal(t, "b-1", dto.BookingID)
	require.NotNil(t, stored)
	assert.Equal(t, 1.2, stored.CabMultiplier)
	assert.Equal(t, 1.2, stored.TimeOfDayMultiplier)
	assert.Equal(t, 2.0, stored.PassengerMultiplier)
	assert.Equal(t, 1.0, stored.DiscountMultiplier)
	assert.Equal(t, stored.ID, dto.ID)
}

func TestPay_AppliesDiscount(t *testing.T) {
	uc, deps := newPaymentUC(t)
	ctx := context.Background()

	deps.bookings.EXPECT().GetByID(ctx, "u-1", "b-1").Return(premiumNightBooking(), nil)
	expectQuote(deps, 10.0)
	deps.bookings.EXPECT().MarkPaid(ctx, "u-1", "b-1").Return(true, nil)
	deps.discount.EXPECT().TryConsume(ctx, "u-1").Return(0.3, nil)
	deps.repo.EXPECT().CreatePayment(ctx, gomock.Any()).Return(nil)

	dto, err := uc.Pay(ctx, "u-1", "b-1")

	require.NoError(t, err)
	assert.Equal(t, 8.64, dto.TotalPrice)
}

func TestPay_AlreadyPaid(t *testing.T) {
	uc, deps := newPaymentUC(t)

	booking := premiumNightBooking()
	booking.Paid = true
	deps.bookings.EXPECT().GetByID(gomock.Any(), "u-1", "b-1").Return(booking, nil)

	_, err := uc.Pay(context.Background(), "u-1", "b-1")

	assert.ErrorIs(t, err, models.ErrConflict)
	assert.Zero(t, deps.tx.calls)
}

func TestPay_LostRaceOnMarkPaid(t *testing.T) {
	uc, deps := newPaymentUC(t)

	deps.bookings.EXPECT().GetByID(gomock.Any(), "u-1", "b-1").Return(premiumNightBooking(), nil)
	expectQuote(deps, 10.0)
	deps.bookings.EXPECT().MarkPaid(gomock.Any(), "u-1", "b-1").Return(false, nil)

	_, err := uc.Pay(context.Background(), "u-1", "b-1")

	assert.ErrorIs(t, err, models.ErrConflict)
	assert.ErrorIs(t, deps.tx.err, models.ErrConflict)
}

func TestPay_ForeignBookingIsNotFound(t *testing.T) {
	uc, deps := newPaymentUC(t)

	deps.bookings.EXPECT().GetByID(gomock.Any(), "u-2", "b-1").Return(nil, models.ErrForbidden)

	_, err := uc.Pay(context.Background(), "u-2", "b-1")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPay_UpstreamFailure(t *testing.T) {
	uc, deps := newPaymentUC(t)

	deps.bookings.EXPECT().GetByID(gomock.Any(), "u-1", "b-1").Return(premiumNightBooking(), nil)
	deps.geo.EXPECT().Geocode(gomock.Any(), "London").Return(london, nil)
	deps.geo.EXPECT().Geocode(gomock.Any(), "Paris").Return(paris, nil)
	deps.fares.EXPECT().BaseFare(gomock.Any(), london, paris).Return(0.0, models.ErrUpstream)

	_, err := uc.Pay(context.Background(), "u-1", "b-1")

	assert.ErrorIs(t, err, models.ErrUpstream)
	assert.Zero(t, deps.tx.calls)
}

func TestPay_InvalidStoredBooking(t *testing.T) {
	uc, deps := newPaymentUC(t)

	booking := premiumNightBooking()
	booking.CabClass = "Limo"
	deps.bookings.EXPECT().GetByID(gomock.Any(), "u-1", "b-1").Return(booking, nil)
	_, err := uc.Pay(context.Background(), "u-1", "b-1")
	assert.ErrorIs(t, err, models.ErrValidation)

	booking = premiumNightBooking()
	booking.PassengerCount = 9
	deps.bookings.EXPECT().GetByID(gomock.Any(), "u-1", "b-2").Return(booking, nil)
	_, err = uc.Pay(context.Background(), "u-1", "b-2")
	assert.ErrorIs(t, err, models.ErrInternal)
}

func TestPay_PersistFailureIsReturned(t *testing.T) {
	uc, deps := newPaymentUC(t)

	deps.bookings.EXPECT().GetByID(gomock.Any(), "u-1", "b-1").Return(premiumNightBooking(), nil)
	expectQuote(deps, 10.0)
	deps.bookings.EXPECT().MarkPaid(gomock.Any(), "u-1", "b-1").Return(true, nil)
	deps.discount.EXPECT().TryConsume(gomock.Any(), "u-1").Return(0.3, nil)
	deps.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(assert.AnError)

	_, err := uc.Pay(context.Background(), "u-1", "b-1")

	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorIs(t, deps.tx.err, assert.AnError)
}

func TestGetPayments(t *testing.T) {
	uc, deps := newPaymentUC(t)
	ctx := context.Background()

	_, err := uc.GetPayments(ctx, "u-2", "u-1")
	assert.ErrorIs(t, err, models.ErrForbidden)

	deps.repo.EXPECT().ListByUser(ctx, "u-1").Return([]*models.Payment{{ID: "p-1"}}, nil)
	list, err := uc.GetPayments(ctx, "u-1", "u-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestNewPaymentUC_BadTimezone(t *testing.T) {
	_, err := NewPaymentUC(&models.Config{Pricing: models.PricingConfig{Timezone: "Mars/Olympus"}},
		nil, nil, nil, nil, nil, nil)
	assert.Error(t, err)
}

func TestGetReceipt(t *testing.T) {
	// Arrange
	uc, deps := newPaymentUC(t)
	ctx := context.Background()
	payment := &models.Payment{
		ID:                  "p-1",
		BookingID:           "b-1",
		UserID:              "u-1",
		BaseFare:            10,
		CabMultiplier:       1.2,
		TimeOfDayMultiplier: 1.2,
		PassengerMultiplier: 2,
		DiscountMultiplier:  1,
		Total:               28.8,
		CreatedAt:           time.Date(2024, 5, 1, 2, 5, 0, 0, time.UTC),
	}
	deps.repo.EXPECT().GetPayment(ctx, "p-1").Return(payment, nil)
	deps.bookings.EXPECT().GetByID(ctx, "u-1", "b-1").Return(premiumNightBooking(), nil)

	// Act
	receipt, err := uc.GetReceipt(ctx, "u-1", "u-1", "p-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "receipt-p-1.pdf", receipt.Filename)
	assert.Equal(t, "application/pdf", receipt.ContentType)
	assert.True(t, bytes.HasPrefix(receipt.Content, []byte("%PDF-")))
}

func TestGetReceipt_Ownership(t *testing.T) {
	uc, deps := newPaymentUC(t)
	ctx := context.Background()

	_, err := uc.GetReceipt(ctx, "u-2", "u-1", "p-1")
	assert.ErrorIs(t, err, models.ErrForbidden)

	deps.repo.EXPECT().GetPayment(ctx, "p-9").Return(&models.Payment{ID: "p-9", UserID: "u-2"}, nil)
	_, err = uc.GetReceipt(ctx, "u-1", "u-1", "p-9")
	assert.ErrorIs(t, err, models.ErrNotFound)

	deps.repo.EXPECT().GetPayment(ctx, "p-0").Return(nil, models.ErrNotFound)
	_, err = uc.GetReceipt(ctx, "u-1", "u-1", "p-0")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
