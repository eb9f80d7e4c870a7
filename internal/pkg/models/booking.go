package models

import (
	"strings"
	"time"
)

// CabClass is the service tier of a booking
type CabClass string

const (
	CabEconomic  CabClass = "Economic"
	CabPremium   CabClass = "Premium"
	CabExecutive CabClass = "Executive"
)

// MaxPassengers is the seat cap shared by every cab class
const MaxPassengers = 8

type cabClassInfo struct {
	multiplier    float64
	maxPassengers int
}

var cabClasses = map[CabClass]cabClassInfo{
	CabEconomic:  {multiplier: 1.0, maxPassengers: MaxPassengers},
	CabPremium:   {multiplier: 1.2, maxPassengers: MaxPassengers},
	CabExecutive: {multiplier: 1.4, maxPassengers: MaxPassengers},
}

// ParseCabClass resolves a cab type name, ignoring case
func ParseCabClass(s string) (CabClass, bool) {
	for class := range cabClasses {
		if strings.EqualFold(string(class), strings.TrimSpace(s)) {
			return class, true
		}
	}
	return "", false
}

// Valid reports whether c is one of the known cab classes
func (c CabClass) Valid() bool {
	_, ok := cabClasses[c]
	return ok
}

// Multiplier returns the fare multiplier of the class
func (c CabClass) Multiplier() (float64, bool) {
	info, ok := cabClasses[c]
	return info.multiplier, ok
}

// MaxPassengers returns the passenger cap of the class, 0 when unknown
func (c CabClass) MaxPassengers() int {
	return cabClasses[c].maxPassengers
}

// Booking represents a reserved cab ride
type Booking struct {
	ID             string    `json:"id" db:"id"`
	OwnerID        string    `json:"ownerId" db:"owner_id"`
	StartLocation  string    `json:"startLocation" db:"start_location"`
	EndLocation    string    `json:"endLocation" db:"end_location"`
	ScheduledAt    time.Time `json:"scheduledAt" db:"scheduled_at"`
	PassengerCount int       `json:"passengers" db:"passenger_count"`
	CabClass       CabClass  `json:"cabType" db:"cab_class"`
	Paid           bool      `json:"paid" db:"paid"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// CreateBookingRequest is the body of POST /bookings
type CreateBookingRequest struct {
	StartLocation string     `json:"startLocation"`
	EndLocation   string     `json:"endLocation"`
	Passengers    int        `json:"passengers"`
	CabType       string     `json:"cabType"`
	ScheduledAt   *time.Time `json:"scheduledAt,omitempty"`
}

// BookingCreated is returned after a booking is persisted
type BookingCreated struct {
	ID string `json:"id"`
}
