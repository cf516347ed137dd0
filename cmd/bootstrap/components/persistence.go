package components

import (
	"furnicraft/internal/infra/export"
	"furnicraft/internal/infra/readstore"
	"furnicraft/internal/infra/uow"
	"furnicraft/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	unitOfWorkModule,
)

// Write repositories are bound to a transaction inside the unit of work, so
// only read stores are provided here.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewAnalyticsReadStore,
			fx.As(new(queries.AnalyticsReadStore)),
		),
		fx.Annotate(
			export.NewOrderWorkbook,
			fx.As(new(queries.OrderSheetWriter)),
		),
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)
