package trip_models

import "strings"

// TripRequest holds the traveler's planning preferences.
type TripRequest struct {
	Destination   string   `json:"destination" bson:"destination" firestore:"destination" binding:"required,min=2"`
	Duration      string   `json:"duration" bson:"duration" firestore:"duration" binding:"required"`
	Budget        string   `json:"budget" bson:"budget" firestore:"budget" binding:"required"`
	Accommodation string   `json:"accommodation,omitempty" bson:"accommodation,omitempty" firestore:"accommodation,omitempty"`
	Interests     []string `json:"interests" bson:"interests" firestore:"interests" binding:"required,min=1,dive,required"`
}

// HasAccommodation reports whether a non-blank lodging was given.
func (r TripRequest) HasAccommodation() bool {
	return strings.TrimSpace(r.Accommodation) != ""
}

func (r TripRequest) HasInterest(interest string) bool {
	for _, i := range r.Interests {
		if strings.EqualFold(i, interest) {
			return true
		}
	}
	return false
}
