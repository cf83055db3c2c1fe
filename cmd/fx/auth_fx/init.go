package auth_fx

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripwise/internal/config"
	"tripwise/pkg/middleware"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(provideTokenVerifier)

// provideTokenVerifier returns a nil verifier when AUTH_MODE=none, which
// leaves the trip routes open.
func provideTokenVerifier(cfg *config.Config, app *firebase.App, logger *zap.Logger) (middleware.TokenVerifier, error) {
	logger.Info("Configuring authentication", zap.String("mode", cfg.AuthMode))

	switch cfg.AuthMode {
	case config.AuthJWT:
		return utils.NewJWTVerifier(cfg.JWTSecret), nil
	case config.AuthFirebase:
		client, err := app.Auth(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to create Firebase auth client: %w", err)
		}
		return utils.NewFirebaseVerifier(client), nil
	default:
		return nil, nil
	}
}
