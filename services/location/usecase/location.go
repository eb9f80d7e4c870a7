package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/internal/utils"
	"github.com/piresc/cabbooking/services/location"
)

const (
	// GeocodeTTL is how long a resolved place name is reused
	GeocodeTTL = 24 * time.Hour

	// favouritePrecision stores favourites at street level, about 150m
	favouritePrecision uint = 7
)

// locationUC implements the location.LocationUC interface
type locationUC struct {
	repo    location.FavouriteRepo
	cache   location.GeocodeCache
	weather location.WeatherGW
	now     func() time.Time
}

// NewLocationUC creates a new location use case
func NewLocationUC(repo location.FavouriteRepo, cache location.GeocodeCache, weather location.WeatherGW) location.LocationUC {
	return &locationUC{
		repo:    repo,
		cache:   cache,
		weather: weather,
		now:     time.Now,
	}
}

// Geocode resolves a place name to coordinates. Answers are cached per
// normalised name and cache failures only cost a provider call.
func (uc *locationUC) Geocode(ctx context.Context, name string) (models.Coordinates, error) {
	key := normaliseName(name)
	if key == "" {
		return models.Coordinates{}, fmt.Errorf("%w: location name is required", models.ErrValidation)
	}

	coords, hit, err := uc.cache.Get(ctx, key)
	if err != nil {
		logger.WarnCtx(ctx, "Geocode cache read failed",
			logger.String("location", key),
			logger.ErrorField(err))
	}
	if hit {
		return coords, nil
	}

	forecast, err := uc.weather.Forecast(ctx, key)
	if err != nil {
		return models.Coordinates{}, err
	}

	if err := uc.cache.Set(ctx, key, forecast.Location, GeocodeTTL); err != nil {
		logger.WarnCtx(ctx, "Geocode cache write failed",
			logger.String("location", key),
			logger.ErrorField(err))
	}
	return forecast.Location, nil
}

// GetWeather returns today's weather summary for a place
func (uc *locationUC) GetWeather(ctx context.Context, name string) (*models.Weather, error) {
	key := normaliseName(name)
	if key == "" {
		return nil, fmt.Errorf("%w: location name is required", models.ErrValidation)
	}

	forecast, err := uc.weather.Forecast(ctx, key)
	if err != nil {
		return nil, err
	}

	// the answer already resolves the place, so warm the geocode cache with it
	if err := uc.cache.Set(ctx, key, forecast.Location, GeocodeTTL); err != nil {
		logger.WarnCtx(ctx, "Geocode cache write failed",
			logger.String("location", key),
			logger.ErrorField(err))
	}

	weather := forecast.Today
	return &weather, nil
}

// CreateFavourite geocodes the address and saves it under the user's chosen name
func (uc *locationUC) CreateFavourite(ctx context.Context, userID string, req models.FavouriteLocationRequest) (*models.FavouriteLocation, error) {
	name, address, err := validateFavourite(req)
	if err != nil {
		return nil, err
	}

	coords, err := uc.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	fav := &models.FavouriteLocation{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Address:   address,
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		Geohash:   utils.EncodeCoordinates(coords, favouritePrecision),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.CreateFavourite(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

// ListFavourites returns the caller's favourites
func (uc *locationUC) ListFavourites(ctx context.Context, userID string) ([]*models.FavouriteLocation, error) {
	return uc.repo.ListFavourites(ctx, userID)
}

// GetFavourite returns one favourite. Another user's favourite is Forbidden.
func (uc *locationUC) GetFavourite(ctx context.Context, userID, id string) (*models.FavouriteLocation, error) {
	fav, err := uc.repo.GetFavourite(ctx, id)
	if err != nil {
		return nil, err
	}
	if fav.UserID != userID {
		return nil, fmt.Errorf("%w: favourite location belongs to another user", models.ErrForbidden)
	}
	return fav, nil
}

// UpdateFavourite renames a favourite and re-geocodes its address
func (uc *locationUC) UpdateFavourite(ctx context.Context, userID, id string, req models.FavouriteLocationRequest) (*models.FavouriteLocation, error) {
	name, address, err := validateFavourite(req)
	if err != nil {
		return nil, err
	}

	fav, err := uc.GetFavourite(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	coords, err := uc.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	fav.Name = name
	fav.Address = address
	fav.Latitude = coords.Latitude
	fav.Longitude = coords.Longitude
	fav.Geohash = utils.EncodeCoordinates(coords, favouritePrecision)
	fav.UpdatedAt = uc.now().UTC()

	updated, err := uc.repo.UpdateFavourite(ctx, fav)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("favourite location %s: %w", id, models.ErrNotFound)
	}
	return fav, nil
}

// DeleteFavourite removes one of the caller's favourites
func (uc *locationUC) DeleteFavourite(ctx context.Context, userID, id string) error {
	if _, err := uc.GetFavourite(ctx, userID, id); err != nil {
		return err
	}

	deleted, err := uc.repo.DeleteFavourite(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("favourite location %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func validateFavourite(req models.FavouriteLocationRequest) (string, string, error) {
	name := strings.TrimSpace(req.Name)
	address := strings.TrimSpace(req.Address)
	if name == "" || address == "" {
		return "", "", fmt.Errorf("%w: name and address are required", models.ErrValidation)
	}
	return name, address, nil
}

// normaliseName lower-cases and collapses whitespace so "  New  York" and
// "new york" share a cache entry.
func normaliseName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
