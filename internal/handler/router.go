package handler

import (
	"log/slog"
	"net/http"

	"furnicraft/internal/domain/user"
	"furnicraft/internal/handler/api"
	"furnicraft/internal/handler/middleware"
	"furnicraft/internal/pkg/config"
	"furnicraft/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	fx.In

	Auth      *api.AuthHandler
	Coupon    *api.CouponHandler
	Order     *api.OrderHandler
	OrderFeed *api.OrderFeedHandler
	Dashboard *api.DashboardHandler
	Product   *api.ProductHandler
	Review    *api.ReviewHandler
	User      *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, h, authMiddleware, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/validate-coupon", Handler: h.Coupon.Validate, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
			{Method: http.MethodGet, Path: "/featured-products", Handler: h.Product.Featured},
			{Method: http.MethodGet, Path: "/products/:productId/reviews", Handler: h.Review.ListByProduct},
			{Method: http.MethodPost, Path: "/reviews", Handler: h.Review.Create, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
		})

		admin := apiGroup.Group("")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				// Coupons
				{Method: http.MethodGet, Path: "/coupons", Handler: h.Coupon.List},
				{Method: http.MethodPost, Path: "/coupons", Handler: h.Coupon.Create},
				{Method: http.MethodPut, Path: "/coupons/:couponId", Handler: h.Coupon.Update},
				{Method: http.MethodDelete, Path: "/coupons/:couponId", Handler: h.Coupon.Delete},
				// Orders
				{Method: http.MethodGet, Path: "/orders", Handler: h.Order.List},
				{Method: http.MethodGet, Path: "/orders/export", Handler: h.Order.Export},
				{Method: http.MethodGet, Path: "/order-details/:orderId", Handler: h.Order.Details},
				{Method: http.MethodGet, Path: "/order-stats", Handler: h.Order.Stats},
				{Method: http.MethodPost, Path: "/update-order-status", Handler: h.Order.UpdateStatus},
				{Method: http.MethodGet, Path: "/ws/orders", Handler: h.OrderFeed.Subscribe},
				// Dashboard
				{Method: http.MethodGet, Path: "/dashboard-stats", Handler: h.Dashboard.Stats},
				// Users
				{Method: http.MethodGet, Path: "/all-users-detailed", Handler: h.User.List},
				{Method: http.MethodGet, Path: "/user-details/:userId", Handler: h.User.Details},
				{Method: http.MethodPut, Path: "/update-user-profile/:userId", Handler: h.User.UpdateProfile},
				{Method: http.MethodPost, Path: "/update-user-status", Handler: h.User.UpdateStatus},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
