package services

import (
	"context"
	"fmt"

	"tripmind/internal/models"
	"tripmind/internal/repositories/interfaces"
	"tripmind/internal/utils"
	"tripmind/pkg/logger"
)

type TripService struct {
	trips  interfaces.TripRepository
	logger *logger.Logger
}

func NewTripService(trips interfaces.TripRepository, log *logger.Logger) *TripService {
	return &TripService{
		trips:  trips,
		logger: log,
	}
}

// Book persists the selected option as a confirmed trip and returns the
// new document id. The caller's price and duration are trusted as-is;
// status is always set here, never taken from the request.
func (s *TripService) Book(ctx context.Context, req *models.BookRequest) (string, error) {
	trip := &models.Trip{
		UserID:          req.UserID,
		Query:           req.Query,
		Origin:          req.Origin,
		Destination:     req.Destination,
		Mode:            string(req.Selection.Mode),
		Provider:        req.Selection.Provider,
		Price:           req.Selection.Price,
		Currency:        req.Selection.Currency,
		DurationMinutes: req.Selection.DurationMinutes,
		ETA:             req.Selection.ETA,
		ReturnTrip:      req.ReturnTrip,
		Status:          models.TripStatusConfirmed,
		Legs:            req.Selection.Legs,
	}
	if trip.Currency == "" {
		trip.Currency = models.DefaultCurrency
	}

	id, err := s.trips.Create(ctx, trip)
	if err != nil {
		return "", fmt.Errorf("failed to book trip: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"trip_id":  id,
		"user_id":  req.UserID,
		"mode":     trip.Mode,
		"provider": trip.Provider,
	}).Info("trip booked")

	return id, nil
}

// List returns up to limit trips in store order, filtered by user when
// userID is non-empty, with ids and timestamps stringified for
// transport.
func (s *TripService) List(ctx context.Context, userID string, limit int64) ([]map[string]interface{}, error) {
	if limit <= 0 {
		limit = utils.DefaultTripLimit
	}

	docs, err := s.trips.List(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	return utils.ToTransportDocuments(docs), nil
}
