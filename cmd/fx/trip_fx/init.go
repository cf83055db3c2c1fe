package trip_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripwise/internal/config"
	"tripwise/internal/repositories"
	"tripwise/internal/services"
)

var Module = fx.Provide(provideTripService)

func provideTripService(repo repositories.TripRepository, cfg *config.Config, logger *zap.Logger) services.TripServiceInterface {
	return services.NewTripService(repo, services.TripServiceOptions{
		AllowUnscopedList: cfg.AllowUnscopedTripList,
	}, logger)
}
