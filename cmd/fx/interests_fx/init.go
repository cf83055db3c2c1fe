package interests_fx

import (
	"go.uber.org/fx"

	"tripwise/internal/services"
)

var Module = fx.Provide(services.NewInterestService)
