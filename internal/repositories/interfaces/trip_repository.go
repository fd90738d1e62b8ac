package interfaces

import (
	"context"

	"tripmind/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TripRepository persists booked trips. Create returns the hex form of
// the inserted document id. List returns raw store documents in the
// store's natural order, capped at limit; an empty userID means no
// filter.
type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) (string, error)
	List(ctx context.Context, userID string, limit int64) ([]bson.M, error)
}
