package bootstrap

import (
	"halisaha-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	RedisModule,
	BrokerModule,
	SchedulerModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
