package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Preference holds a user's saved travel preferences in the "preference"
// collection. Writes are insert-only: each set call adds a new document,
// reads surface the first match.
type Preference struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID            string             `json:"user_id" bson:"user_id" binding:"required" validate:"required"`
	Budget            *float64           `json:"budget,omitempty" bson:"budget,omitempty" validate:"omitempty,gte=0"`
	FavoriteModes     []TransportMode    `json:"favorite_modes,omitempty" bson:"favorite_modes,omitempty" validate:"omitempty,dive,transport_mode"`
	FavoriteProviders []string           `json:"favorite_providers,omitempty" bson:"favorite_providers,omitempty"`
	TimeWindows       []string           `json:"time_windows,omitempty" bson:"time_windows,omitempty"`
	Home              string             `json:"home,omitempty" bson:"home,omitempty"`
	Work              string             `json:"work,omitempty" bson:"work,omitempty"`
	Notes             string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" bson:"updated_at"`
}
