package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripwise/internal/config"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(provideLogger)

// provideLogger also installs the logger as zap's global so package-level
// helpers log through it.
func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	restore := zap.ReplaceGlobals(logger)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			restore()
			// Sync fails on stdout/stderr for some terminals; nothing to do about it.
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}
