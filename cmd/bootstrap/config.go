package bootstrap

import (
	"log/slog"

	"furnicraft/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// logEffectiveConfig records the settings that change runtime behaviour.
// Credentials are never logged.
func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	sink := "websocket"
	if cfg.Events.AMQPURL != "" {
		sink = "websocket+amqp"
	}
	logger.Info("Configuration loaded",
		"mode", gin.Mode(),
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"transition_policy", cfg.Orders.TransitionPolicy,
		"event_sinks", sink,
		"relay_interval", cfg.Events.RelayInterval.String(),
		"cors_origins", len(cfg.CORS.AllowOrigins),
	)
}
