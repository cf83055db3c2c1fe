package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripwise/internal/api/controllers"
	"tripwise/pkg/middleware"
	"tripwise/pkg/utils"
)

// RouterParams carries everything the HTTP surface needs.
type RouterParams struct {
	Logger         *zap.Logger
	AllowedOrigins []string
	Verifier       middleware.TokenVerifier

	Itinerary *controllers.ItineraryController
	Trips     *controllers.TripController
	Interests *controllers.InterestController
}

func NewRouter(p RouterParams) *gin.Engine {
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(middleware.CORSMiddleware(p.AllowedOrigins))

	RegisterRoutes(r, p)
	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	auth := middleware.AuthMiddleware(p.Verifier)

	r.GET("/healthz", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})
	r.GET("/interests", p.Interests.ListInterests)

	itineraryGroup := r.Group("/itineraries", auth)
	itineraryGroup.POST("/generate", p.Itinerary.GenerateItinerary)

	tripsGroup := r.Group("/trips", auth)
	tripsGroup.GET("", p.Trips.ListTrips)
	tripsGroup.POST("", p.Trips.SaveTrip)
	tripsGroup.GET("/:id", p.Trips.GetTrip)
	tripsGroup.DELETE("/:id", p.Trips.DeleteTrip)

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})
}
