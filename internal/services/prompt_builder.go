package services

import (
	"fmt"
	"net/url"
	"strings"

	"tripwise/internal/models/trip_models"
)

const (
	placeSearchURL  = "https://www.google.com/maps/search/?api=1&query="
	directionsURL   = "https://www.google.com/maps/dir/?api=1&destination="
	itinerarySchema = `{
  "summary": "A brief summary of the trip",
  "days": [
    {
      "day": 1,
      "title": "Day title",
      "activities": [
        {
          "time": "9:00 AM",
          "title": "Activity title",
          "description": "Activity description",
          "mapLink": "https://www.google.com/maps/search/?api=1&query=PLACE+NAME"
        }
      ]
    }
  ],
  "tips": ["Tip 1", "Tip 2"]
}`
)

// ReturnTripMapLink is the directions URL for getting back to the accommodation.
func ReturnTripMapLink(accommodation string) string {
	return directionsURL + url.QueryEscape(strings.TrimSpace(accommodation))
}

// BuildItineraryPrompt renders the generation prompt for req. The output only
// depends on req, so equal requests always produce identical prompts.
func BuildItineraryPrompt(req trip_models.TripRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a detailed travel itinerary for a trip to %s for a duration of %s.\n",
		req.Destination, req.Duration)
	fmt.Fprintf(&b, "The budget is %s and the traveler is interested in: %s.\n",
		req.Budget, strings.Join(req.Interests, ", "))

	if req.HasAccommodation() {
		stay := strings.TrimSpace(req.Accommodation)
		fmt.Fprintf(&b, "\nThe traveler will be staying at: %s.\n", stay)
		b.WriteString("End each day with an activity whose time is \"End of day\" and whose title is " +
			"\"Return to accommodation\", describing how to get back to the accommodation.\n")
		fmt.Fprintf(&b, "For that return activity use exactly this mapLink: %s\n", ReturnTripMapLink(stay))
		b.WriteString("Include one tip about the best transportation method for returning to the accommodation.\n")
		b.WriteString("Make sure each day ends with detailed instructions for returning to the accommodation, " +
			"including specific transportation options, routes, estimated time and costs.\n")
	}

	b.WriteString("\nFormat the response as JSON with the following structure:\n")
	b.WriteString(itinerarySchema)
	b.WriteString("\n\n")

	b.WriteString("The itinerary should include day-by-day activities with timing, dining recommendations and must-see attractions.\n")
	b.WriteString("Focus on the selected interests and stay within the budget. Include local experiences and hidden gems.\n")
	b.WriteString("Include 3-5 practical travel tips specific to the destination.\n")
	fmt.Fprintf(&b, "For every activity, set mapLink to %sPLACE+NAME, replacing PLACE+NAME with the place name "+
		"and joining its words with '+'.\n", placeSearchURL)
	b.WriteString("Please strictly follow the JSON structure provided and return only the JSON object.\n")

	return b.String()
}
