package location

import (
	"context"
	"time"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// FavouriteRepo defines the interface for favourite location data access
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/cabbooking/services/location FavouriteRepo,GeocodeCache
type FavouriteRepo interface {
	CreateFavourite(ctx context.Context, fav *models.FavouriteLocation) error
	GetFavourite(ctx context.Context, id string) (*models.FavouriteLocation, error)
	ListFavourites(ctx context.Context, userID string) ([]*models.FavouriteLocation, error)
	UpdateFavourite(ctx context.Context, fav *models.FavouriteLocation) (bool, error)
	DeleteFavourite(ctx context.Context, userID, id string) (bool, error)
}

// GeocodeCache keeps resolved place names
type GeocodeCache interface {
	Get(ctx context.Context, name string) (models.Coordinates, bool, error)
	Set(ctx context.Context, name string, coords models.Coordinates, ttl time.Duration) error
}
