package api

import (
	"net/http"

	"furnicraft/internal/domain/analytics"
	resdto "furnicraft/internal/handler/dto/response"
	"furnicraft/internal/handler/httperr"
	"furnicraft/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q queries.DashboardQueries
}

func NewDashboardHandler(q queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

// @Summary Dashboard statistics
// @Description Aggregates users, orders, revenue and products over a trailing window
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param period query int false "Trailing window in days (default 30)"
// @Success 200 {object} resdto.Envelope{data=queries.DashboardStats}
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /dashboard-stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context(), analytics.ParsePeriod(c.Query("period")))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(stats))
}
