package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/services"
	"tripwise/pkg/middleware"
	"tripwise/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// resolveOwner prefers the authenticated owner. A client-supplied owner id
// that disagrees with it is rejected.
func resolveOwner(c *gin.Context, requested string) (string, error) {
	authOwner := middleware.AuthenticatedOwner(c)
	if authOwner == "" {
		return requested, nil
	}
	if requested != "" && requested != authOwner {
		return "", utils.ErrForbidden
	}
	return authOwner, nil
}

// ListTrips godoc
// @Summary List saved trips
// @Description Saved trips of one owner, newest first, optionally filtered by text and interest
// @Tags Trips
// @Produce json
// @Param ownerId query string false "Owner ID (taken from the token when authenticated)"
// @Param q query string false "Case-insensitive match on name or destination"
// @Param interest query string false "Only trips planned with this interest"
// @Success 200 {array} trip_models.SavedTrip
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [get]
func (tc *TripController) ListTrips(c *gin.Context) {
	var query request_models.ListTripsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	owner, err := resolveOwner(c, query.OwnerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	query.OwnerID = owner

	trips, err := tc.tripService.ListTrips(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get a saved trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} trip_models.SavedTrip
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [get]
func (tc *TripController) GetTrip(c *gin.Context) {
	owner, err := resolveOwner(c, c.Query("ownerId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	trip, err := tc.tripService.GetTrip(c.Request.Context(), c.Param("id"), owner)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// SaveTrip godoc
// @Summary Save a generated trip
// @Description Stores a trip request with its itinerary. Repeating a save with the same requestId returns the same id.
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SaveTripRequest true "Trip to save"
// @Success 201 {object} response_models.SaveTripResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (tc *TripController) SaveTrip(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, utils.NewValidationError(err))
		return
	}

	owner, err := resolveOwner(c, req.OwnerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	req.OwnerID = owner

	id, err := tc.tripService.SaveTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.SaveTripResponse{ID: id}, "Trip saved successfully")
}

// DeleteTrip godoc
// @Summary Delete a saved trip
// @Tags Trips
// @Param id path string true "Trip ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [delete]
func (tc *TripController) DeleteTrip(c *gin.Context) {
	owner, err := resolveOwner(c, c.Query("ownerId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := tc.tripService.DeleteTrip(c.Request.Context(), c.Param("id"), owner); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
