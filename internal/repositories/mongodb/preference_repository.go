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
)

type preferenceRepository struct {
	collection *mongo.Collection
}

func NewPreferenceRepository(db *mongo.Database) interfaces.PreferenceRepository {
	return &preferenceRepository{
		collection: db.Collection(utils.CollectionPreference),
	}
}

// Create is insert-only: repeated calls for the same user accumulate
// documents instead of replacing the previous one.
func (r *preferenceRepository) Create(ctx context.Context, pref *models.Preference) (string, error) {
	pref.ID = primitive.NewObjectID()
	pref.CreatedAt = time.Now()
	pref.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, pref)
	if err != nil {
		return "", fmt.Errorf("failed to create preference: %w", err)
	}

	return pref.ID.Hex(), nil
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID string) (bson.M, error) {
	var doc bson.M
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}

	return doc, nil
}
