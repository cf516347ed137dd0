package bootstrap

import (
	"furnicraft/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	MetricsModule,
	components.PersistenceModule,
	components.UseCaseModule,
	JWTModule,
	EventsModule,
	components.HandlerModule,
)
