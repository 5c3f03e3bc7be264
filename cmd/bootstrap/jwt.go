package bootstrap

import (
	"halisaha-api/internal/pkg/clock"
	"halisaha-api/internal/pkg/config"
	"halisaha-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	ttl, err := cfg.JWT.TokenTTL()
	if err != nil {
		return nil, err
	}
	return jwt.NewService(cfg.JWT.Secret, ttl, clk), nil
}
