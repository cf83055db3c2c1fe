package config_fx

import (
	"go.uber.org/fx"

	"tripwise/internal/config"
)

var Module = fx.Provide(config.Load)
