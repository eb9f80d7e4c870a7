package location

import (
	"context"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// LocationUC defines the interface for location business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/cabbooking/services/location LocationUC
type LocationUC interface {
	Geocode(ctx context.Context, name string) (models.Coordinates, error)
	GetWeather(ctx context.Context, name string) (*models.Weather, error)

	CreateFavourite(ctx context.Context, userID string, req models.FavouriteLocationRequest) (*models.FavouriteLocation, error)
	ListFavourites(ctx context.Context, userID string) ([]*models.FavouriteLocation, error)
	GetFavourite(ctx context.Context, userID, id string) (*models.FavouriteLocation, error)
	UpdateFavourite(ctx context.Context, userID, id string, req models.FavouriteLocationRequest) (*models.FavouriteLocation, error)
	DeleteFavourite(ctx context.Context, userID, id string) error
}
