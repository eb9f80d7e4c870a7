package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/cabbooking/internal/pkg/constants"
	"github.com/piresc/cabbooking/internal/pkg/database"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/piresc/cabbooking/internal/utils"
	"github.com/piresc/cabbooking/services/payments"
)

// DefaultFareTTL is how long a quoted fare is reused for the same route cells
const DefaultFareTTL = time.Hour

// CachedFareLookup serves fares from Redis keyed by the geohash cells of both
// endpoints and falls back to next on a miss. Cache failures never fail a lookup.
type CachedFareLookup struct {
	next  payments.FareLookup
	cache *database.RedisClient
	ttl   time.Duration
}

// NewCachedFareLookup wraps next with a Redis cache
func NewCachedFareLookup(next payments.FareLookup, cache *database.RedisClient, ttl time.Duration) *CachedFareLookup {
	if ttl <= 0 {
		ttl = DefaultFareTTL
	}
	return &CachedFareLookup{next: next, cache: cache, ttl: ttl}
}

// BaseFare implements payments.FareLookup
func (c *CachedFareLookup) BaseFare(ctx context.Context, from, to models.Coordinates) (float64, error) {
	fromCell, toCell := utils.RouteCells(from, to)
	key := fmt.Sprintf(constants.KeyFare, fromCell, toCell)

	var fare float64
	hit, err := c.cache.GetJSON(ctx, key, &fare)
	if err != nil {
		logger.Warn("Fare cache read failed", logger.String("key", key), logger.ErrorField(err))
	}
	if hit {
		return fare, nil
	}

	fare, err = c.next.BaseFare(ctx, from, to)
	if err != nil {
		return 0, err
	}

	if err := c.cache.SetJSON(ctx, key, fare, c.ttl); err != nil {
		logger.Warn("Fare cache write failed", logger.String("key", key), logger.ErrorField(err))
	}
	return fare, nil
}
