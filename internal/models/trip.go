package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TripStatus string

const (
	TripStatusPending   TripStatus = "pending"
	TripStatusConfirmed TripStatus = "confirmed"
	TripStatusCancelled TripStatus = "cancelled"
	TripStatusCompleted TripStatus = "completed"
)

// Trip is a booked trip document in the "trip" collection. Mode is kept
// as an open string at the storage boundary even though requests carry
// the enum; the store does not enforce it.
type Trip struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID          string             `json:"user_id" bson:"user_id" validate:"required"`
	Query           string             `json:"query" bson:"query" validate:"required"`
	Origin          string             `json:"origin,omitempty" bson:"origin,omitempty"`
	Destination     string             `json:"destination,omitempty" bson:"destination,omitempty"`
	Mode            string             `json:"mode" bson:"mode" validate:"required"`
	Provider        string             `json:"provider" bson:"provider" validate:"required"`
	Price           float64            `json:"price" bson:"price" validate:"gte=0"`
	Currency        string             `json:"currency" bson:"currency"`
	DurationMinutes int                `json:"duration_minutes" bson:"duration_minutes" validate:"gte=0"`
	ETA             string             `json:"eta,omitempty" bson:"eta,omitempty"`
	DepartureTime   *time.Time         `json:"departure_time,omitempty" bson:"departure_time,omitempty"`
	ReturnTrip      bool               `json:"return_trip" bson:"return_trip"`
	Status          TripStatus         `json:"status" bson:"status" validate:"required,trip_status"`
	Legs            []TripLeg          `json:"legs,omitempty" bson:"legs,omitempty"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

func IsValidTripStatus(status TripStatus) bool {
	switch status {
	case TripStatusPending, TripStatusConfirmed, TripStatusCancelled, TripStatusCompleted:
		return true
	}
	return false
}

type BookRequest struct {
	UserID      string      `json:"user_id" binding:"required"`
	Query       string      `json:"query" binding:"required"`
	Selection   RouteOption `json:"selection" binding:"required"`
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	ReturnTrip  bool        `json:"return_trip"`
}
