package db_fx

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripwise/internal/config"
	"tripwise/internal/infra"
	"tripwise/internal/models/db_models"
	"tripwise/internal/repositories"
)

var Module = fx.Provide(provideTripRepository)

func provideTripRepository(
	lc fx.Lifecycle,
	cfg *config.Config,
	app *firebase.App,
	logger *zap.Logger,
) (repositories.TripRepository, error) {
	logger.Info("Initializing trip store", zap.String("driver", cfg.StoreDriver))
	ctx := context.Background()

	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := infra.InitPostgresql(cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrate(&db_models.Trip{}); err != nil {
			infra.ClosePostgresql(db)
			return nil, fmt.Errorf("migrate trips table: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				infra.ClosePostgresql(db)
				return nil
			},
		})
		return repositories.NewTripGormRepository(db), nil

	case config.StoreMongo:
		client, err := infra.InitMongo(ctx, cfg.MongoURL)
		if err != nil {
			return nil, err
		}
		repo := repositories.NewTripMongoRepository(client.Database(cfg.MongoDatabase))
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Warn("Could not create trip indexes", zap.Error(err))
		}
		lc.Append(fx.Hook{
			OnStop: func(stopCtx context.Context) error {
				infra.CloseMongo(stopCtx, client)
				return nil
			},
		})
		return repo, nil

	case config.StoreFirestore:
		client, err := app.Firestore(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create Firestore client: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})
		return repositories.NewTripFirestoreRepository(client), nil

	default:
		logger.Warn("Using in-memory trip store; trips are lost on restart")
		return repositories.NewTripMemoryRepository(), nil
	}
}
