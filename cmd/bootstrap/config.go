package bootstrap

import (
	"time"

	"padel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBusinessLocation,
	),
)

// NewBusinessLocation is the club's timezone, used to decide which dates are in the past.
func NewBusinessLocation(cfg config.Config) *time.Location {
	return cfg.Server.Location()
}
