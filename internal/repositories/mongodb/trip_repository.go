package mongodb

import (
	"context"
	"fmt"
	"time"

	"tripmind/internal/models"
	"tripmind/internal/repositories/interfaces"
	"tripmind/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type tripRepository struct {
	collection *mongo.Collection
}

func NewTripRepository(db *mongo.Database) interfaces.TripRepository {
	return &tripRepository{
		collection: db.Collection(utils.CollectionTrip),
	}
}

func (r *tripRepository) Create(ctx context.Context, trip *models.Trip) (string, error) {
	trip.ID = primitive.NewObjectID()
	trip.CreatedAt = time.Now()
	trip.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, trip)
	if err != nil {
		return "", fmt.Errorf("failed to create trip: %w", err)
	}

	return trip.ID.Hex(), nil
}

func (r *tripRepository) List(ctx context.Context, userID string, limit int64) ([]bson.M, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode trips: %w", err)
	}

	return docs, nil
}
