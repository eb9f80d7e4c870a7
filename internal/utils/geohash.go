package utils

import (
	"github.com/mmcloughlin/geohash"
	"github.com/piresc/cabbooking/internal/pkg/models"
)

// FarePrecision groups points into cells of roughly 5km, about the resolution
// the fare API prices at.
const FarePrecision uint = 5

// EncodeCoordinates converts coordinates to a geohash string
func EncodeCoordinates(c models.Coordinates, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// RouteCells returns the geohash cells of both ends of a route
func RouteCells(from, to models.Coordinates) (string, string) {
	return EncodeCoordinates(from, FarePrecision), EncodeCoordinates(to, FarePrecision)
}
