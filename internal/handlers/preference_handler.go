package handlers

import (
	"net/http"

	"tripmind/internal/models"
	"tripmind/internal/services"
	"tripmind/internal/utils"
	"tripmind/internal/validators"

	"github.com/gin-gonic/gin"
)

type PreferenceHandler struct {
	preferenceService *services.PreferenceService
}

func NewPreferenceHandler(preferenceService *services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceService: preferenceService,
	}
}

// GetPreferences returns the first stored preference record for the
// user, or a null item when none exists.
func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		utils.UnprocessableEntityResponse(c, "user_id query parameter is required")
		return
	}

	item, err := h.preferenceService.Get(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "PREFERENCE_FETCH_FAILED", "Failed to get preferences: "+err.Error())
		return
	}

	if item == nil {
		c.JSON(http.StatusOK, gin.H{"item": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// SetPreferences inserts a new preference record for the user.
func (h *PreferenceHandler) SetPreferences(c *gin.Context) {
	var request models.Preference
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.UnprocessableEntityResponse(c, "Invalid request: "+err.Error())
		return
	}

	if details := validators.ValidatePreference(&request); details != nil {
		utils.ValidationErrorResponse(c, details)
		return
	}

	id, err := h.preferenceService.Set(c.Request.Context(), &request)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "PREFERENCE_SAVE_FAILED", "Failed to save preferences: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}
