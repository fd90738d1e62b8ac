package handlers

import (
	"net/http"
	"strconv"

	"tripmind/internal/models"
	"tripmind/internal/services"
	"tripmind/internal/utils"
	"tripmind/internal/validators"

	"github.com/gin-gonic/gin"
)

type TripHandler struct {
	tripService *services.TripService
}

func NewTripHandler(tripService *services.TripService) *TripHandler {
	return &TripHandler{
		tripService: tripService,
	}
}

// BookTrip persists the caller's selected option as a confirmed trip.
// The selection is not checked against any prior plan call; any
// well-formed option is accepted.
func (h *TripHandler) BookTrip(c *gin.Context) {
	var request models.BookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.UnprocessableEntityResponse(c, "Invalid request: "+err.Error())
		return
	}

	if details := validators.ValidateBookRequest(&request); details != nil {
		utils.ValidationErrorResponse(c, details)
		return
	}

	id, err := h.tripService.Book(c.Request.Context(), &request)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "BOOKING_FAILED", "Failed to book trip: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

// ListTrips returns booked trips, optionally filtered by user_id,
// capped at limit (default 50).
func (h *TripHandler) ListTrips(c *gin.Context) {
	userID := c.Query("user_id")

	limit := int64(utils.DefaultTripLimit)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	items, err := h.tripService.List(c.Request.Context(), userID, limit)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "TRIP_LIST_FAILED", "Failed to list trips: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
