package firebase_fx

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripwise/internal/config"
	"tripwise/internal/infra"
)

var Module = fx.Provide(provideFirebaseApp)

// provideFirebaseApp returns nil unless the Firestore store or Firebase auth is enabled.
func provideFirebaseApp(cfg *config.Config, logger *zap.Logger) (*firebase.App, error) {
	if cfg.StoreDriver != config.StoreFirestore && cfg.AuthMode != config.AuthFirebase {
		return nil, nil
	}

	logger.Info("Initializing Firebase app", zap.String("project", cfg.FirebaseProjectID))
	return infra.NewFirebaseApp(context.Background(), cfg.FirebaseProjectID, cfg.FirebaseCredentialsFile)
}
