package constants

// Redis key formats
const (
	// Location Service
	KeyGeocode = "location:geocode:%s" // Format: location:geocode:{normalised name}

	// Payment Service
	KeyFare = "payment:fare:%s:%s" // Format: payment:fare:{from geohash}:{to geohash}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
