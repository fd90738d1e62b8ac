package interfaces

import (
	"context"

	"tripmind/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PreferenceRepository persists user travel preferences. Create always
// inserts a new document, never replaces one. GetByUserID returns the
// first matching document, or nil when the user has none.
type PreferenceRepository interface {
	Create(ctx context.Context, pref *models.Preference) (string, error)
	GetByUserID(ctx context.Context, userID string) (bson.M, error)
}
