package gateway

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	httppkg "github.com/piresc/cabbooking/internal/pkg/http"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// dayFareName is the fare the provider quotes for daytime rides
const dayFareName = "by Day"

type fareResponse struct {
	Journey struct {
		Fares []struct {
			Name         string `json:"name"`
			PriceInCents int    `json:"price_in_cents"`
		} `json:"fares"`
	} `json:"journey"`
}

// FareClient queries the taxi fare API
type FareClient struct {
	client  *httppkg.EnhancedClient
	baseURL string
	headers map[string]string
}

// NewFareClient creates a fare client for the API at baseURL
func NewFareClient(client *httppkg.EnhancedClient, baseURL, apiKey string) *FareClient {
	return &FareClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: httppkg.RapidAPIHeaders(baseURL, apiKey),
	}
}

// BaseFare returns the day fare between two points in major currency units.
// Coordinates are rounded to one decimal before the call.
func (f *FareClient) BaseFare(ctx context.Context, from, to models.Coordinates) (float64, error) {
	q := url.Values{}
	q.Set("dep_lat", formatCoord(from.Latitude))
	q.Set("dep_lng", formatCoord(from.Longitude))
	q.Set("arr_lat", formatCoord(to.Latitude))
	q.Set("arr_lng", formatCoord(to.Longitude))

	var resp fareResponse
	if err := f.client.GetJSON(ctx, f.baseURL+"/search-geo?"+q.Encode(), f.headers, &resp); err != nil {
		return 0, fmt.Errorf("%w: fare lookup: %v", models.ErrUpstream, err)
	}

	for _, fare := range resp.Journey.Fares {
		if fare.Name == dayFareName {
			return float64(fare.PriceInCents) / 100, nil
		}
	}
	return 0, fmt.Errorf("%w: no %q fare in response", models.ErrUpstream, dayFareName)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
