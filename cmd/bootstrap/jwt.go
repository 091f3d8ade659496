package bootstrap

import (
	"time"

	"bakery-orders/internal/pkg/clock"
	"bakery-orders/internal/pkg/config"
	"bakery-orders/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	accessTokenDuration, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, err
	}

	return jwt.NewService(cfg.JWT.Secret, accessTokenDuration, clk), nil
}
