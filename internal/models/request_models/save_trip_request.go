package request_models

import "tripwise/internal/models/trip_models"

// SaveTripRequest is the body of POST /trips.
type SaveTripRequest struct {
	OwnerID     string                    `json:"ownerId"`
	Name        string                    `json:"name"`
	Destination string                    `json:"destination"`
	RequestID   string                    `json:"requestId,omitempty" binding:"omitempty,max=128"`
	Request     trip_models.TripRequest   `json:"request"`
	Itinerary   trip_models.TripItinerary `json:"itinerary"`
}

type ListTripsQuery struct {
	OwnerID  string `form:"ownerId"`
	Query    string `form:"q"`
	Interest string `form:"interest"`
}
