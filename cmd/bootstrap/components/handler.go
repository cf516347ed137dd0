package components

import (
	"time"

	"furnicraft/internal/handler"
	"furnicraft/internal/handler/api"
	"furnicraft/internal/handler/middleware"
	"furnicraft/internal/infra/events"
	"furnicraft/internal/pkg/config"
	"furnicraft/internal/usecase/commands"
	"furnicraft/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		NewOrderHandler,
		NewOrderFeedHandler,
		api.NewCouponHandler,
		api.NewDashboardHandler,
		api.NewProductHandler,
		api.NewReviewHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(cmds, q, cfg.Cookie)
}

// NewOrderHandler reads date filters in the database session time zone so
// they agree with the day buckets used by the aggregations.
func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries, cfg config.Config) (*api.OrderHandler, error) {
	loc, err := time.LoadLocation(cfg.DB.TimeZone)
	if err != nil {
		return nil, err
	}
	return api.NewOrderHandler(cmds, q, loc), nil
}

func NewOrderFeedHandler(hub *events.Hub, cfg config.Config) *api.OrderFeedHandler {
	return api.NewOrderFeedHandler(hub, cfg.CORS)
}
