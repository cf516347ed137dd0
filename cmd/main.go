package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"furnicraft/cmd/bootstrap"
	"furnicraft/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func init() {
	// Never expose debug output because of a missing setting.
	gin.SetMode(gin.ReleaseMode)
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	// Money goes over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

const readHeaderTimeout = 10 * time.Second

// @title           FurniCraft Admin API
// @version         1.0
// @description     Coupons, orders, users and dashboard analytics for the FurniCraft store.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func startServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			// Bind synchronously so a busy port fails startup instead of a goroutine.
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("Starting server", "address", ln.Addr().String(), "mode", gin.Mode())
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("Server failed", "error", err.Error())
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

func main() {
	fx.New(
		bootstrap.Module,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Invoke(startServer),
	).Run()
}
