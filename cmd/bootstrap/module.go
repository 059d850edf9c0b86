package bootstrap

import (
	"hotelcart/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	SessionModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
