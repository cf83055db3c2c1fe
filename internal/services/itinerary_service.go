package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tripwise/internal/models/trip_models"
	"tripwise/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req trip_models.TripRequest) (*trip_models.TripItinerary, error)
}

type ItineraryService struct {
	generator utils.ItineraryGenerator
	logger    *zap.Logger
}

func NewItineraryService(generator utils.ItineraryGenerator, logger *zap.Logger) ItineraryServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItineraryService{
		generator: generator,
		logger:    logger.Named("itinerary"),
	}
}

// GenerateItinerary makes one upstream call per request. Nothing is cached or retried.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, req trip_models.TripRequest) (*trip_models.TripItinerary, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	prompt := BuildItineraryPrompt(req)
	log := s.logger.With(
		zap.String("provider", s.generator.Provider()),
		zap.String("destination", req.Destination),
	)

	start := time.Now()
	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		var upstream *utils.UpstreamError
		switch {
		case errors.As(err, &upstream):
			log.Error("Generation API returned an error",
				zap.Int("status", upstream.StatusCode),
				zap.String("body", upstream.Body))
		case errors.Is(err, utils.ErrConfiguration):
			log.Warn("Generation provider is not configured", zap.Error(err))
		default:
			log.Error("Generation request failed", zap.Error(err))
		}
		return nil, err
	}
	log.Debug("Generation finished", zap.Duration("elapsed", time.Since(start)), zap.Int("chars", len(text)))

	itinerary, err := ParseItineraryResponse(text)
	if err != nil {
		log.Error("Error parsing generation response", zap.Error(err))
		return nil, err
	}

	log.Info("Itinerary generated", zap.Int("days", len(itinerary.Days)), zap.Int("tips", len(itinerary.Tips)))
	return itinerary, nil
}
