package routes

import (
	"tripmind/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes registers the planning, booking and preference
// endpoints on the given group.
func SetupAPIRoutes(r *gin.RouterGroup, plannerHandler *handlers.PlannerHandler, tripHandler *handlers.TripHandler, preferenceHandler *handlers.PreferenceHandler) {
	r.POST("/plan", plannerHandler.PlanTrip)

	r.POST("/book", tripHandler.BookTrip)
	r.GET("/trips", tripHandler.ListTrips)

	r.GET("/preferences", preferenceHandler.GetPreferences)
	r.POST("/preferences", preferenceHandler.SetPreferences)
}
