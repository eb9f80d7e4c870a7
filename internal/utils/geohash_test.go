package utils

import (
	"testing"

	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestEncodeCoordinates(t *testing.T) {
	tests := []struct {
		name      string
		coords    models.Coordinates
		precision uint
		expected  string
	}{
		{
			name:      "London precision 5",
			coords:    models.Coordinates{Latitude: 51.5074, Longitude: -0.1278},
			precision: 5,
			expected:  "gcpvj",
		},
		{
			name:      "Jakarta precision 6",
			coords:    models.Coordinates{Latitude: -6.175392, Longitude: 106.827153},
			precision: 6,
			expected:  "qqguyg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodeCoordinates(tt.coords, tt.precision))
		})
	}
}

func TestRouteCells(t *testing.T) {
	from := models.Coordinates{Latitude: 51.5074, Longitude: -0.1278}
	nearby := models.Coordinates{Latitude: 51.5080, Longitude: -0.1270}
	far := models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}

	a, b := RouteCells(from, far)
	assert.Len(t, a, int(FarePrecision))
	assert.NotEqual(t, a, b)

	c, _ := RouteCells(nearby, far)
	assert.Equal(t, a, c, "points a few hundred meters apart share a cell")
}
