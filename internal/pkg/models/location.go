package models

import "time"

// Coordinates is a resolved geographic point
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Weather is the day summary returned by GET /locations/weather
type Weather struct {
	Description string  `json:"weatherDesc"`
	AvgTempC    float64 `json:"avgTemp_C"`
	AvgHumidity float64 `json:"avgHumidity"`
}

// Forecast is what the weather provider tells about a place
type Forecast struct {
	Location Coordinates
	Today    Weather
}

// FavouriteLocation is a named place saved by a user
type FavouriteLocation struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	Latitude  float64   `json:"lat" db:"latitude"`
	Longitude float64   `json:"lon" db:"longitude"`
	Geohash   string    `json:"geohash" db:"geohash"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// FavouriteLocationRequest is the body for creating or updating a favourite
type FavouriteLocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}
