package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/cabbooking/internal/pkg/circuitbreaker"
	"github.com/piresc/cabbooking/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRegisterHealthEndpoints_Healthy(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	svc := NewHealthService()
	svc.AddChecker("redis", NewRedisHealthChecker(redisClient))
	svc.AddChecker("nsq", NewPingHealthChecker(func() error { return nil }))
	svc.SetBreakerStats(func() []circuitbreaker.Stats {
		return []circuitbreaker.Stats{{Name: "fare-api", State: "CLOSED"}}
	})

	e := echo.New()
	RegisterHealthEndpoints(e, "cabbooking-api", "1.0.0", svc)

	assert.Equal(t, http.StatusOK, serve(e, "/health").Code)
	assert.Equal(t, http.StatusOK, serve(e, "/health/live").Code)
	assert.Equal(t, http.StatusOK, serve(e, "/health/ready").Code)

	rec := serve(e, "/health/detailed")
	require.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "cabbooking-api", body.Service)
	assert.Equal(t, "1.0.0", body.Version)
	assert.Equal(t, "healthy", body.Dependencies["redis"].Status)
	require.Len(t, body.Upstreams, 1)
	assert.Equal(t, "fare-api", body.Upstreams[0].Name)
}

func TestRegisterHealthEndpoints_Unhealthy(t *testing.T) {
	svc := NewHealthService()
	svc.AddChecker("postgres", CheckerFunc(func(ctx context.Context) error { return errors.New("connection refused") }))

	e := echo.New()
	RegisterHealthEndpoints(e, "cabbooking-notifier", "", svc)

	assert.Equal(t, http.StatusOK, serve(e, "/health/live").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(e, "/health/ready").Code)

	rec := serve(e, "/health/detailed")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}
