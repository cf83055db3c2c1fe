package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tripwise/internal/models/trip_models"
	"tripwise/pkg/utils"
)

// ParseItineraryResponse extracts the itinerary object from model output and
// checks its top-level shape: summary must be a non-empty string, days and
// tips must be arrays. Nested entries are decoded leniently, so a day with a
// wrongly typed field still comes through with whatever did decode.
//
// When the text holds several JSON objects, the first one with a valid shape
// wins; if none has one, the first object's error is returned.
func ParseItineraryResponse(text string) (*trip_models.TripItinerary, error) {
	spans, err := utils.JSONObjectCandidates(text)
	if err != nil {
		return nil, err
	}

	var firstErr error
	for _, span := range spans {
		itinerary, err := parseItinerarySpan(span)
		if err == nil {
			return itinerary, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

func parseItinerarySpan(span string) (*trip_models.TripItinerary, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &top); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrParse, err)
	}

	var summary string
	if raw, ok := top["summary"]; !ok || json.Unmarshal(raw, &summary) != nil || strings.TrimSpace(summary) == "" {
		return nil, fmt.Errorf("%w: summary must be a non-empty string", utils.ErrSchema)
	}

	dayItems, ok := rawArray(top["days"])
	if !ok {
		return nil, fmt.Errorf("%w: days must be an array", utils.ErrSchema)
	}
	tipItems, ok := rawArray(top["tips"])
	if !ok {
		return nil, fmt.Errorf("%w: tips must be an array", utils.ErrSchema)
	}

	itinerary := &trip_models.TripItinerary{
		Summary: summary,
		Days:    make([]trip_models.Day, 0, len(dayItems)),
		Tips:    make([]string, 0, len(tipItems)),
	}

	for _, raw := range dayItems {
		var day trip_models.Day
		if err := decodeLenient(raw, &day); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrParse, err)
		}
		if day.Activities == nil {
			day.Activities = []trip_models.Activity{}
		}
		itinerary.Days = append(itinerary.Days, day)
	}

	for _, raw := range tipItems {
		var tip string
		if err := decodeLenient(raw, &tip); err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrParse, err)
		}
		itinerary.Tips = append(itinerary.Tips, tip)
	}

	return itinerary, nil
}

// rawArray reports whether raw holds a JSON array and splits it into elements.
func rawArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, false
	}
	return items, true
}

// decodeLenient ignores type mismatches; encoding/json keeps filling the
// remaining fields after one.
func decodeLenient(raw json.RawMessage, v any) error {
	err := json.Unmarshal(raw, v)
	var typeErr *json.UnmarshalTypeError
	if err != nil && !errors.As(err, &typeErr) {
		return err
	}
	return nil
}
