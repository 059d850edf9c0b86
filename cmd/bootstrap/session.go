package bootstrap

import (
	"hotelcart/internal/pkg/config"
	"hotelcart/internal/pkg/sessiontoken"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionTokenService,
	),
)

func NewSessionTokenService(cfg config.Config) *sessiontoken.Service {
	return sessiontoken.NewService(cfg.Session.Secret, cfg.Session.TokenTTL)
}
