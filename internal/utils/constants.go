package utils

// Application Constants
const (
	AppName    = "TripMind"
	AppVersion = "1.0.0"

	// Collections
	CollectionTrip       = "trip"
	CollectionPreference = "preference"

	// Trip listing
	DefaultTripLimit = 50

	// Response statuses
	StatusSuccess = "success"
	StatusError   = "error"

	// Error messages
	ErrValidationFailed = "Validation failed"
	ErrInternalServer   = "Internal server error"
)
