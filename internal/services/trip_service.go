package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/trip_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, req request_models.SaveTripRequest) (string, error)
	ListTrips(ctx context.Context, query request_models.ListTripsQuery) ([]trip_models.SavedTrip, error)
	GetTrip(ctx context.Context, id, ownerID string) (*trip_models.SavedTrip, error)
	DeleteTrip(ctx context.Context, id, ownerID string) error
}

// TripServiceOptions tunes owner scoping.
type TripServiceOptions struct {
	// AllowUnscopedList lets a list request without an owner return every trip.
	AllowUnscopedList bool
}

type TripService struct {
	repo   repositories.TripRepository
	opts   TripServiceOptions
	logger *zap.Logger
}

func NewTripService(repo repositories.TripRepository, opts TripServiceOptions, logger *zap.Logger) TripServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TripService{repo: repo, opts: opts, logger: logger.Named("trips")}
}

func (s *TripService) SaveTrip(ctx context.Context, req request_models.SaveTripRequest) (string, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return "", err
	}

	owner := strings.TrimSpace(req.OwnerID)
	if owner == "" {
		return "", utils.ErrOwnerRequired
	}

	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		destination = strings.TrimSpace(req.Request.Destination)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Trip to " + destination
	}

	trip := trip_models.SavedTrip{
		OwnerID:     owner,
		Name:        name,
		Destination: destination,
		RequestID:   strings.TrimSpace(req.RequestID),
		Request:     req.Request,
		Itinerary:   req.Itinerary,
	}
	if trip.RequestID != "" {
		trip.ID = trip_models.DeriveTripID(owner, trip.RequestID)
	}
	normalizeItinerary(&trip.Itinerary)

	id, err := s.repo.Save(ctx, trip)
	if err != nil {
		s.logger.Error("Error saving trip", zap.String("owner", owner), zap.Error(err))
		return "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	s.logger.Info("Trip saved", zap.String("id", id), zap.String("owner", owner))
	return id, nil
}

// ListTrips returns the owner's trips newest first, narrowed by the optional
// text and interest filters.
func (s *TripService) ListTrips(ctx context.Context, query request_models.ListTripsQuery) ([]trip_models.SavedTrip, error) {
	owner := strings.TrimSpace(query.OwnerID)
	if owner == "" && !s.opts.AllowUnscopedList {
		return nil, utils.ErrOwnerRequired
	}

	trips, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		s.logger.Error("Error listing trips", zap.String("owner", owner), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	interest := strings.TrimSpace(query.Interest)
	filtered := make([]trip_models.SavedTrip, 0, len(trips))
	for _, t := range trips {
		if !t.MatchesQuery(query.Query) {
			continue
		}
		if interest != "" && !t.Request.HasInterest(interest) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered, nil
}

// GetTrip hides trips owned by someone else behind ErrTripNotFound.
// An empty ownerID skips the ownership check.
func (s *TripService) GetTrip(ctx context.Context, id, ownerID string) (*trip_models.SavedTrip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Error fetching trip", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if trip == nil || (ownerID != "" && trip.OwnerID != ownerID) {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, id, ownerID string) error {
	if ownerID != "" {
		if _, err := s.GetTrip(ctx, id, ownerID); err != nil {
			return err
		}
	}

	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		s.logger.Error("Error deleting trip", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !deleted {
		return utils.ErrTripNotFound
	}

	s.logger.Info("Trip deleted", zap.String("id", id))
	return nil
}

// normalizeItinerary replaces nil slices so stored documents always carry arrays.
func normalizeItinerary(it *trip_models.TripItinerary) {
	if it.Days == nil {
		it.Days = []trip_models.Day{}
	}
	if it.Tips == nil {
		it.Tips = []string{}
	}
	for i := range it.Days {
		if it.Days[i].Activities == nil {
			it.Days[i].Activities = []trip_models.Activity{}
		}
	}
}
