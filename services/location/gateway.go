package location

import (
	"context"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// WeatherGW looks a place up at the weather provider
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/cabbooking/services/location WeatherGW
type WeatherGW interface {
	Forecast(ctx context.Context, name string) (*models.Forecast, error)
}
