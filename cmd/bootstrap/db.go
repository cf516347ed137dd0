package bootstrap

import (
	"context"
	"log/slog"

	"furnicraft/internal/infra/db"
	"furnicraft/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB opens the pool eagerly so a bad DSN fails startup, and closes it after
// the HTTP server and relay have stopped.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("Database connected",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", cfg.DB.MaxConns)

	lc.Append(fx.StopHook(func() {
		stat := pool.Stat()
		logger.Info("Closing database pool",
			"acquired_conns", stat.AcquiredConns(),
			"total_conns", stat.TotalConns())
		cleanup()
	}))

	return pool, nil
}
