package bootstrap

import (
	"trainer-booking/internal/pkg/config"
	"trainer-booking/internal/pkg/timefmt"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(func(cfg config.Config) error {
		return timefmt.SetLegacyLocation(cfg.Booking.LegacyTimeZone)
	}),
)
