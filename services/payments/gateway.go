package payments

import (
	"context"

	"github.com/piresc/cabbooking/internal/pkg/models"
)

// FareLookup prices a trip between two points
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/cabbooking/services/payments FareLookup,GeoLookup,BookingStore,DiscountConsumer
type FareLookup interface {
	BaseFare(ctx context.Context, from, to models.Coordinates) (float64, error)
}

// GeoLookup resolves a place name to coordinates
type GeoLookup interface {
	Geocode(ctx context.Context, name string) (models.Coordinates, error)
}

// BookingStore is the part of the booking service a payment needs
type BookingStore interface {
	GetByID(ctx context.Context, ownerID, id string) (*models.Booking, error)
	MarkPaid(ctx context.Context, ownerID, id string) (bool, error)
}

// DiscountConsumer hands out the discount multiplier at most once
type DiscountConsumer interface {
	TryConsume(ctx context.Context, ownerID string) (float64, error)
}
