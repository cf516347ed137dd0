package components

import (
	"furnicraft/internal/domain/order"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/pkg/config"
	"furnicraft/internal/pkg/jwt"
	"furnicraft/internal/pkg/metrics"
	"furnicraft/internal/usecase"
	"furnicraft/internal/usecase/commands"
	"furnicraft/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewTransitionPolicy,
	func(m *metrics.Metrics) queries.ValidationRecorder { return m },
	func(m *metrics.Metrics) commands.StatusUpdateRecorder { return m },
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCouponCommands,
		commands.NewOrderCommands,
		commands.NewReviewCommands,
		commands.NewUserCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCouponQueries,
		queries.NewOrderQueries,
		queries.NewDashboardQueries,
		queries.NewProductQueries,
		queries.NewReviewQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewTransitionPolicy(cfg config.Config) (order.TransitionPolicy, error) {
	return order.NewTransitionPolicy(cfg.Orders.TransitionPolicy)
}
