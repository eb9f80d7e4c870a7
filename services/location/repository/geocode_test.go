package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/cabbooking/internal/pkg/database"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/services/location/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })
	cache := repository.NewGeocodeCache(client)
	ctx := context.Background()

	_, hit, err := cache.Get(ctx, "new york")
	require.NoError(t, err)
	assert.False(t, hit)

	coords := models.Coordinates{Latitude: 40.71, Longitude: -74.01}
	require.NoError(t, cache.Set(ctx, "new york", coords, time.Hour))
	assert.True(t, mr.Exists("location:geocode:new york"))

	got, hit, err := cache.Get(ctx, "new york")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, coords, got)

	mr.FastForward(2 * time.Hour)
	_, hit, err = cache.Get(ctx, "new york")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestGeocodeCache_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })
	cache := repository.NewGeocodeCache(client)
	mr.Close()

	_, _, err := cache.Get(context.Background(), "malta")
	assert.Error(t, err)
}
