package services

import (
	"tripmind/internal/models"
	"tripmind/internal/planner"
	"tripmind/pkg/logger"
)

// PlannerService wraps the option synthesizer. Planning never touches
// the store and cannot fail.
type PlannerService struct {
	synthesizer *planner.Synthesizer
	logger      *logger.Logger
}

func NewPlannerService(synthesizer *planner.Synthesizer, log *logger.Logger) *PlannerService {
	return &PlannerService{
		synthesizer: synthesizer,
		logger:      log,
	}
}

func (s *PlannerService) Plan(query, userID string) *models.PlanResponse {
	options := s.synthesizer.Synthesize(query)

	s.logger.WithFields(map[string]interface{}{
		"query":   query,
		"user_id": userID,
		"options": len(options),
	}).Debug("synthesized route options")

	return &models.PlanResponse{
		Query:   query,
		Options: options,
	}
}
