package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	httppkg "github.com/piresc/cabbooking/internal/pkg/http"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

type forecastResponse struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"location"`
	Forecast struct {
		ForecastDay []struct {
			Day struct {
				AvgTempC    float64 `json:"avgtemp_c"`
				AvgHumidity float64 `json:"avghumidity"`
				Condition   struct {
					Text string `json:"text"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

// WeatherClient queries the weather API. It is also the geocoder: the
// forecast answer carries the resolved coordinates of the place.
type WeatherClient struct {
	client  *httppkg.EnhancedClient
	baseURL string
	headers map[string]string
}

// NewWeatherClient creates a weather client for the API at baseURL
func NewWeatherClient(client *httppkg.EnhancedClient, baseURL, apiKey string) *WeatherClient {
	return &WeatherClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: httppkg.RapidAPIHeaders(baseURL, apiKey),
	}
}

// Forecast returns the coordinates of name and today's weather there.
// The provider answers 400 for places it cannot match.
func (w *WeatherClient) Forecast(ctx context.Context, name string) (*models.Forecast, error) {
	q := url.Values{}
	q.Set("q", name)
	q.Set("days", "1")

	var resp forecastResponse
	if err := w.client.GetJSON(ctx, w.baseURL+"/forecast.json?"+q.Encode(), w.headers, &resp); err != nil {
		var httpErr *httppkg.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusBadRequest {
			return nil, fmt.Errorf("location %q: %w", name, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: weather lookup: %v", models.ErrUpstream, err)
	}

	if len(resp.Forecast.ForecastDay) == 0 {
		return nil, fmt.Errorf("%w: weather lookup returned no forecast days", models.ErrUpstream)
	}
	day := resp.Forecast.ForecastDay[0].Day

	return &models.Forecast{
		Location: models.Coordinates{
			Latitude:  resp.Location.Lat,
			Longitude: resp.Location.Lon,
		},
		Today: models.Weather{
			Description: day.Condition.Text,
			AvgTempC:    day.AvgTempC,
			AvgHumidity: day.AvgHumidity,
		},
	}, nil
}
