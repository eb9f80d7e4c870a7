package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/bookings/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

type testDeps struct {
	repo     *mocks.MockBookingRepo
	discount *mocks.MockDiscountTrigger
	cabReady *mocks.MockCabReadyScheduler
}

func newTestUC(t *testing.T, cfg *models.Config) (*bookingUC, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		repo:     mocks.NewMockBookingRepo(ctrl),
		discount: mocks.NewMockDiscountTrigger(ctrl),
		cabReady: mocks.NewMockCabReadyScheduler(ctrl),
	}
	uc, err := NewBookingUC(cfg, deps.repo, deps.discount, deps.cabReady)
	require.NoError(t, err)
	impl := uc.(*bookingUC)
	impl.now = func() time.Time { return fixedNow }
	return impl, deps
}

func TestCreateBooking_Success(t *testing.T) {
	// Arrange
	uc, deps := newTestUC(t, &models.Config{})
	ctx := context.Background()
	req := models.CreateBookingRequest{
		StartLocation: " London ",
		EndLocation:   "Paris",
		Passengers:    4,
		CabType:       "premium",
	}

	var saved *models.Booking
	deps.repo.EXPECT().CreateBooking(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Booking) error {
			saved = b
			return nil
		})
	deps.discount.EXPECT().OnBookingCreated(ctx, "u-1", gomock.Any()).Return(nil)
	deps.cabReady.EXPECT().ScheduleCabReady(ctx, "u-1", gomock.Any(), "London", "Paris", 3*time.Minute)

	// Act
	id, err := uc.CreateBooking(ctx, "u-1", req)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, saved.ID, id)
	assert.Equal(t, models.CabPremium, saved.CabClass)
	assert.False(t, saved.Paid)
	assert.Equal(t, fixedNow.Add(10*time.Minute), saved.ScheduledAt)
	assert.Equal(t, fixedNow, saved.CreatedAt)
}

func TestCreateBooking_ExplicitScheduleAndConfiguredDelay(t *testing.T) {
	cfg := &models.Config{Booking: models.BookingConfig{CabReadyDelay: 30}}
	uc, deps := newTestUC(t, cfg)
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 2, 0, 0, 0, time.FixedZone("WIB", 7*3600))

	deps.repo.EXPECT().CreateBooking(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Booking) error {
			assert.Equal(t, at.UTC(), b.ScheduledAt)
			return nil
		})
	deps.discount.EXPECT().OnBookingCreated(ctx, "u-1", gomock.Any()).Return(nil)
	deps.cabReady.EXPECT().ScheduleCabReady(ctx, "u-1", gomock.Any(), "A", "B", 30*time.Second)

	_, err := uc.CreateBooking(ctx, "u-1", models.CreateBookingRequest{
		StartLocation: "A", EndLocation: "B", Passengers: 1, CabType: "Economic", ScheduledAt: &at,
	})
	assert.NoError(t, err)
}

func TestCreateBooking_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateBookingRequest
	}{
		{name: "unknown cab type", req: models.CreateBookingRequest{StartLocation: "A", EndLocation: "B", Passengers: 1, CabType: "Limo"}},
		{name: "zero passengers", req: models.CreateBookingRequest{StartLocation: "A", EndLocation: "B", Passengers: 0, CabType: "Economic"}},
		{name: "nine passengers", req: models.CreateBookingRequest{StartLocation: "A", EndLocation: "B", Passengers: 9, CabType: "Executive"}},
		{name: "missing start", req: models.CreateBookingRequest{EndLocation: "B", Passengers: 1, CabType: "Economic"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no repository or collaborator calls are expected
			uc, _ := newTestUC(t, &models.Config{})

			id, err := uc.CreateBooking(context.Background(), "u-1", tt.req)

			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Empty(t, id)
		})
	}
}

func TestCreateBooking_PassengerBoundaries(t *testing.T) {
	for _, n := range []int{1, 8} {
		uc, deps := newTestUC(t, &models.Config{})
		ctx := context.Background()
		deps.repo.EXPECT().CreateBooking(ctx, gomock.Any()).Return(nil)
		deps.discount.EXPECT().OnBookingCreated(ctx, "u-1", gomock.Any()).Return(nil)
		deps.cabReady.EXPECT().ScheduleCabReady(ctx, "u-1", gomock.Any(), "A", "B", gomock.Any())

		_, err := uc.CreateBooking(ctx, "u-1", models.CreateBookingRequest{
			StartLocation: "A", EndLocation: "B", Passengers: n, CabType: "Economic",
		})
		assert.NoError(t, err, "passengers=%d", n)
	}
}

func TestCreateBooking_DiscountFailureIsNotReturned(t *testing.T) {
	uc, deps := newTestUC(t, &models.Config{})
	ctx := context.Background()

	deps.repo.EXPECT().CreateBooking(ctx, gomock.Any()).Return(nil)
	deps.discount.EXPECT().OnBookingCreated(ctx, "u-1", gomock.Any()).Return(errors.New("broker down"))
	deps.cabReady.EXPECT().ScheduleCabReady(ctx, "u-1", gomock.Any(), "A", "B", gomock.Any())

	id, err := uc.CreateBooking(ctx, "u-1", models.CreateBookingRequest{
		StartLocation: "A", EndLocation: "B", Passengers: 2, CabType: "Economic",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestCreateBooking_RepositoryError(t *testing.T) {
	uc, deps := newTestUC(t, &models.Config{})
	ctx := context.Background()

	deps.repo.EXPECT().CreateBooking(ctx, gomock.Any()).Return(assert.AnError)

	_, err := uc.CreateBooking(ctx, "u-1", models.CreateBookingRequest{
		StartLocation: "A", EndLocation: "B", Passengers: 2, CabType: "Economic",
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGetByID(t *testing.T) {
	uc, deps := newTestUC(t, &models.Config{})
	ctx := context.Background()
	booking := &models.Booking{ID: "b-1", OwnerID: "u-1"}

	deps.repo.EXPECT().GetBookingByID(ctx, "b-1").Return(booking, nil).Times(2)

	got, err := uc.GetByID(ctx, "u-1", "b-1")
	assert.NoError(t, err)
	assert.Equal(t, booking, got)

	_, err = uc.GetByID(ctx, "u-2", "b-1")
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestGetCurrentAndPast_UseClock(t *testing.T) {
	uc, deps := newTestUC(t, &models.Config{})
	ctx := context.Background()

	deps.repo.EXPECT().ListUpcoming(ctx, "u-1", fixedNow).Return([]*models.Booking{}, nil)
	deps.repo.EXPECT().ListPast(ctx, "u-1", fixedNow).Return([]*models.Booking{}, nil)

	_, err := uc.GetCurrent(ctx, "u-1")
	assert.NoError(t, err)
	_, err = uc.GetPast(ctx, "u-1")
	assert.NoError(t, err)
}

func TestMarkPaid_Idempotent(t *testing.T) {
	uc, deps := newTestUC(t, &models.Config{})
	ctx := context.Background()

	gomock.InOrder(
		deps.repo.EXPECT().MarkPaid(ctx, "u-1", "b-1").Return(true, nil),
		deps.repo.EXPECT().MarkPaid(ctx, "u-1", "b-1").Return(false, nil),
	)

	first, err := uc.MarkPaid(ctx, "u-1", "b-1")
	assert.NoError(t, err)
	assert.True(t, first)

	second, err := uc.MarkPaid(ctx, "u-1", "b-1")
	assert.NoError(t, err)
	assert.False(t, second)
}
