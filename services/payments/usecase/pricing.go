package usecase

import (
	"fmt"
	"math"
	"time"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

const (
	nightMultiplier     = 1.2
	nightEndHour        = 8
	largeGroupThreshold = 4
	largeGroupFactor    = 2.0
)

// timeOfDayMultiplier charges night rides, [00:00, 08:00) local time, 20% more
func timeOfDayMultiplier(scheduledAt time.Time, loc *time.Location) float64 {
	if scheduledAt.In(loc).Hour() < nightEndHour {
		return nightMultiplier
	}
	return 1.0
}

// passengerMultiplier doubles the fare for groups above four. Counts above the
// cab cap cannot come from a validated booking.
func passengerMultiplier(passengers int) (float64, error) {
	switch {
	case passengers < 1 || passengers > models.MaxPassengers:
		return 0, fmt.Errorf("%w: booking has %d passengers", models.ErrInternal, passengers)
	case passengers > largeGroupThreshold:
		return largeGroupFactor, nil
	default:
		return 1.0, nil
	}
}

// round2 rounds half away from zero to cents
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
