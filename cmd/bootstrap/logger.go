package bootstrap

import (
	"log/slog"

	"furnicraft/internal/handler/middleware"
	"furnicraft/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default, so packages that
// log through slog directly share its level and format.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log)
}
