package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httppkg "github.com/piresc/cabbooking/internal/pkg/http"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWeatherServer(t *testing.T, status int, body string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast.json", r.URL.Path)
		assert.Equal(t, "malta", r.URL.Query().Get("q"))
		assert.Equal(t, "key", r.Header.Get("X-RapidAPI-Key"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newClient(baseURL string) *WeatherClient {
	enhanced := httppkg.NewEnhancedClient(logger.NewNopLogger(), httppkg.ClientConfig{Timeout: 2 * time.Second})
	return NewWeatherClient(enhanced, baseURL, "key")
}

func TestWeatherClient_Forecast(t *testing.T) {
	body := `{
		"location": {"name": "Valletta", "lat": 35.9, "lon": 14.51},
		"forecast": {"forecastday": [
			{"day": {"avgtemp_c": 21.4, "avghumidity": 68, "condition": {"text": "Sunny"}}},
			{"day": {"avgtemp_c": 18.0, "avghumidity": 80, "condition": {"text": "Rain"}}}
		]}
	}`
	server := newWeatherServer(t, http.StatusOK, body)

	forecast, err := newClient(server.URL).Forecast(context.Background(), "malta")

	require.NoError(t, err)
	assert.Equal(t, models.Coordinates{Latitude: 35.9, Longitude: 14.51}, forecast.Location)
	assert.Equal(t, models.Weather{Description: "Sunny", AvgTempC: 21.4, AvgHumidity: 68}, forecast.Today)
}

func TestWeatherClient_UnknownPlace(t *testing.T) {
	server := newWeatherServer(t, http.StatusBadRequest, `{"error":{"code":1006,"message":"No matching location found."}}`)

	_, err := newClient(server.URL).Forecast(context.Background(), "malta")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestWeatherClient_ProviderFailure(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusBadGateway, body: `{}`},
		{name: "no forecast days", status: http.StatusOK, body: `{"location":{"lat":1,"lon":2},"forecast":{"forecastday":[]}}`},
		{name: "bad key", status: http.StatusForbidden, body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newWeatherServer(t, tt.status, tt.body)

			_, err := newClient(server.URL).Forecast(context.Background(), "malta")

			assert.ErrorIs(t, err, models.ErrUpstream)
		})
	}
}
