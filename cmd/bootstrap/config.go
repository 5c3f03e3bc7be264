package bootstrap

import (
	"halisaha-api/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigSections exposes the parts of config.Config that constructors take on their own.
// It expects a config.Config to be provided elsewhere.
var ConfigSections = fx.Provide(splitConfig)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	ConfigSections,
)

type configSections struct {
	fx.Out

	RateLimit config.RateLimitConfig
	Booking   config.BookingConfig
	Policy    config.PolicyConfig
}

func splitConfig(cfg config.Config) configSections {
	return configSections{
		RateLimit: cfg.RateLimit,
		Booking:   cfg.Booking,
		Policy:    cfg.Policy,
	}
}
