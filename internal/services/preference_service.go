package services

import (
	"context"
	"fmt"

	"tripmind/internal/models"
	"tripmind/internal/repositories/interfaces"
	"tripmind/internal/utils"
	"tripmind/pkg/logger"
)

type PreferenceService struct {
	preferences interfaces.PreferenceRepository
	logger      *logger.Logger
}

func NewPreferenceService(preferences interfaces.PreferenceRepository, log *logger.Logger) *PreferenceService {
	return &PreferenceService{
		preferences: preferences,
		logger:      log,
	}
}

// Set inserts a new preference document. There is no upsert: calling
// twice for the same user leaves two records, and Get surfaces the
// first one the store returns.
func (s *PreferenceService) Set(ctx context.Context, pref *models.Preference) (string, error) {
	id, err := s.preferences.Create(ctx, pref)
	if err != nil {
		return "", fmt.Errorf("failed to set preferences: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"preference_id": id,
		"user_id":       pref.UserID,
	}).Info("preferences saved")

	return id, nil
}

// Get returns the user's first stored preference document with
// transport-safe fields, or nil when none exists. A missing record is
// not an error.
func (s *PreferenceService) Get(ctx context.Context, userID string) (map[string]interface{}, error) {
	doc, err := s.preferences.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	if doc == nil {
		return nil, nil
	}

	return utils.ToTransportDocument(doc), nil
}
