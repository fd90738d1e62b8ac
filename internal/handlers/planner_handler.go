package handlers

import (
	"net/http"

	"tripmind/internal/models"
	"tripmind/internal/services"
	"tripmind/internal/utils"

	"github.com/gin-gonic/gin"
)

type PlannerHandler struct {
	plannerService *services.PlannerService
}

func NewPlannerHandler(plannerService *services.PlannerService) *PlannerHandler {
	return &PlannerHandler{
		plannerService: plannerService,
	}
}

// PlanTrip synthesizes route options for a natural-language query.
// Nothing is persisted.
func (h *PlannerHandler) PlanTrip(c *gin.Context) {
	var request models.PlanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.UnprocessableEntityResponse(c, "Invalid request: "+err.Error())
		return
	}

	response := h.plannerService.Plan(request.Query, request.UserID)
	c.JSON(http.StatusOK, response)
}
