package bootstrap

import (
	"errors"

	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/pkg/config"
	"furnicraft/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	if cfg.JWT.Duration <= 0 {
		return nil, errors.New("JWT_DURATION must be positive")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, clk), nil
}
