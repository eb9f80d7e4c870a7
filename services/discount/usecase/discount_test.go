package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/discount"
	"github.com/piresc/cabbooking/services/discount/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnBookingCreated_GrantsOnThirdBooking(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDiscountRepo(ctrl)
	gw := mocks.NewMockDiscountGW(ctrl)
	uc := NewDiscountUC(repo, gw)
	ctx := context.Background()

	repo.EXPECT().BookingOrdinal(ctx, "u-1", "b-3").Return(3, nil)
	repo.EXPECT().GrantDiscount(ctx, "u-1").Return(true, nil)
	gw.EXPECT().PublishDiscountEarned(ctx, models.NotificationEvent{
		UID:       "u-1",
		BookingID: "b-3",
		Message:   "User has made their 3rd booking.",
		Category:  models.CategoryDiscount,
	}).Return(nil)

	// Act
	err := uc.OnBookingCreated(ctx, "u-1", "b-3")

	// Assert
	assert.NoError(t, err)
}

func TestOnBookingCreated_OtherOrdinalsDoNothing(t *testing.T) {
	for _, ordinal := range []int{0, 1, 2, 4, 7} {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockDiscountRepo(ctrl)
		uc := NewDiscountUC(repo, mocks.NewMockDiscountGW(ctrl))

		repo.EXPECT().BookingOrdinal(gomock.Any(), "u-1", "b").Return(ordinal, nil)

		assert.NoError(t, uc.OnBookingCreated(context.Background(), "u-1", "b"), "ordinal %d", ordinal)
	}
}

func TestOnBookingCreated_ReplayDoesNotPublishAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDiscountRepo(ctrl)
	uc := NewDiscountUC(repo, mocks.NewMockDiscountGW(ctrl))

	repo.EXPECT().BookingOrdinal(gomock.Any(), "u-1", "b-3").Return(3, nil)
	repo.EXPECT().GrantDiscount(gomock.Any(), "u-1").Return(false, nil)

	assert.NoError(t, uc.OnBookingCreated(context.Background(), "u-1", "b-3"))
}

func TestOnBookingCreated_PublishFailureWritesInboxDirectly(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDiscountRepo(ctrl)
	gw := mocks.NewMockDiscountGW(ctrl)
	uc := NewDiscountUC(repo, gw)

	repo.EXPECT().BookingOrdinal(gomock.Any(), "u-1", "b-3").Return(3, nil)
	repo.EXPECT().GrantDiscount(gomock.Any(), "u-1").Return(true, nil)
	gw.EXPECT().PublishDiscountEarned(gomock.Any(), gomock.Any()).Return(assert.AnError)
	repo.EXPECT().SaveDiscountNotification(gomock.Any(), "u-1", models.DiscountEarnedMessage).Return(nil)

	// Act
	err := uc.OnBookingCreated(context.Background(), "u-1", "b-3")

	// Assert
	assert.NoError(t, err)
}

func TestOnBookingCreated_PropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDiscountRepo(ctrl)
	gw := mocks.NewMockDiscountGW(ctrl)
	uc := NewDiscountUC(repo, gw)
	dbErr := errors.New("db down")

	repo.EXPECT().BookingOrdinal(gomock.Any(), "u-1", "b-3").Return(3, nil)
	repo.EXPECT().GrantDiscount(gomock.Any(), "u-1").Return(true, nil)
	gw.EXPECT().PublishDiscountEarned(gomock.Any(), gomock.Any()).Return(assert.AnError)
	repo.EXPECT().SaveDiscountNotification(gomock.Any(), "u-1", gomock.Any()).Return(dbErr)

	err := uc.OnBookingCreated(context.Background(), "u-1", "b-3")
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorIs(t, err, dbErr)
}

func TestTryConsume(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDiscountRepo(ctrl)
	uc := NewDiscountUC(repo, mocks.NewMockDiscountGW(ctrl))
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().ConsumeDiscount(ctx, "u-1").Return(true, nil),
		repo.EXPECT().RemoveDiscountNotification(ctx, "u-1").Return(nil),
		repo.EXPECT().ConsumeDiscount(ctx, "u-1").Return(false, nil),
	)

	first, err := uc.TryConsume(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, 0.3, first)

	second, err := uc.TryConsume(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, second)
}

func TestTryConsume_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDiscountRepo(ctrl)
	uc := NewDiscountUC(repo, mocks.NewMockDiscountGW(ctrl))

	repo.EXPECT().ConsumeDiscount(gomock.Any(), "u-1").Return(false, assert.AnError)

	_, err := uc.TryConsume(context.Background(), "u-1")
	assert.ErrorIs(t, err, assert.AnError)
}

// flagRepo keeps the flag in memory with the same compare-and-clear contract
// as the SQL statement.
type flagRepo struct {
	discount.DiscountRepo
	mu        sync.Mutex
	available bool
}

func (r *flagRepo) ConsumeDiscount(context.Context, string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.available {
		return false, nil
	}
	r.available = false
	return true, nil
}

func (r *flagRepo) RemoveDiscountNotification(context.Context, string) error { return nil }

func TestTryConsume_ConcurrentCallersConsumeOnce(t *testing.T) {
	uc := NewDiscountUC(&flagRepo{available: true}, nil)

	const callers = 32
	results := make(chan float64, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := uc.TryConsume(context.Background(), "u-1")
			assert.NoError(t, err)
			results <- m
		}()
	}
	wg.Wait()
	close(results)

	discounted := 0
	for m := range results {
		if m == discount.Multiplier {
			discounted++
		}
	}
	assert.Equal(t, 1, discounted)
}
