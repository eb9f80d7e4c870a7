package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/cabbooking/internal/pkg/constants"
	"github.com/piresc/cabbooking/internal/pkg/database"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// GeocodeCache stores resolved coordinates in Redis under their normalised name
type GeocodeCache struct {
	redisClient *database.RedisClient
}

// NewGeocodeCache creates a Redis backed geocode cache
func NewGeocodeCache(redisClient *database.RedisClient) *GeocodeCache {
	return &GeocodeCache{redisClient: redisClient}
}

// Get returns the cached coordinates of name, if any
func (c *GeocodeCache) Get(ctx context.Context, name string) (models.Coordinates, bool, error) {
	var coords models.Coordinates
	hit, err := c.redisClient.GetJSON(ctx, fmt.Sprintf(constants.KeyGeocode, name), &coords)
	if err != nil {
		return models.Coordinates{}, false, fmt.Errorf("failed to read geocode cache: %w", err)
	}
	return coords, hit, nil
}

// Set caches the coordinates of name for ttl
func (c *GeocodeCache) Set(ctx context.Context, name string, coords models.Coordinates, ttl time.Duration) error {
	if err := c.redisClient.SetJSON(ctx, fmt.Sprintf(constants.KeyGeocode, name), coords, ttl); err != nil {
		return fmt.Errorf("failed to write geocode cache: %w", err)
	}
	return nil
}
