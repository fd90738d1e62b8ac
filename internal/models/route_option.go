package models

// DefaultCurrency applies whenever a price is synthesized or persisted
// without an explicit currency code.
const DefaultCurrency = "INR"

type TransportMode string

const (
	ModeCab    TransportMode = "cab"
	ModeMetro  TransportMode = "metro"
	ModeBus    TransportMode = "bus"
	ModeTrain  TransportMode = "train"
	ModeAuto   TransportMode = "auto"
	ModeFlight TransportMode = "flight"
)

func IsValidTransportMode(mode TransportMode) bool {
	switch mode {
	case ModeCab, ModeMetro, ModeBus, ModeTrain, ModeAuto, ModeFlight:
		return true
	}
	return false
}

// TripLeg is one segment of a multi-modal option. The store does not
// enforce a schema on legs, so they stay free-form key/value maps.
type TripLeg map[string]interface{}

// RouteOption is a synthesized candidate route. It is never persisted on
// its own; booking embeds its fields into a Trip.
type RouteOption struct {
	Mode            TransportMode `json:"mode" bson:"mode" validate:"required,transport_mode"`
	Provider        string        `json:"provider" bson:"provider" validate:"required"`
	Price           float64       `json:"price" bson:"price" validate:"gte=0"`
	Currency        string        `json:"currency" bson:"currency"`
	DurationMinutes int           `json:"duration_minutes" bson:"duration_minutes" validate:"gte=0"`
	ETA             string        `json:"eta" bson:"eta"`
	Legs            []TripLeg     `json:"legs,omitempty" bson:"legs,omitempty"`
}

type PlanRequest struct {
	Query  string `json:"query" binding:"required,min=3"`
	UserID string `json:"user_id"`
}

type PlanResponse struct {
	Query   string        `json:"query"`
	Options []RouteOption `json:"options"`
}
