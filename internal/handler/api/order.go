package api

import (
	"net/http"
	"time"

	"furnicraft/internal/domain/analytics"
	reqdto "furnicraft/internal/handler/dto/request"
	resdto "furnicraft/internal/handler/dto/response"
	"furnicraft/internal/handler/httperr"
	"furnicraft/internal/usecase/commands"
	"furnicraft/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
	// loc interprets startDate/endDate calendar days.
	loc *time.Location
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries, loc *time.Location) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary List orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param status query string false "Order status"
// @Param paymentStatus query string false "Payment status"
// @Param search query string false "Matches order number, customer name or city"
// @Param startDate query string false "YYYY-MM-DD, inclusive"
// @Param endDate query string false "YYYY-MM-DD, inclusive"
// @Param sortBy query string false "createdAt, orderNumber, total or status"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} resdto.Envelope{data=resdto.OrderListResponse}
// @Failure 400 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}
	page, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromOrderPage(page)))
}

// @Summary Export orders
// @Description Downloads the filtered orders as an xlsx workbook (pagination ignored)
// @Tags orders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param status query string false "Order status"
// @Param paymentStatus query string false "Payment status"
// @Param search query string false "Matches order number, customer name or city"
// @Param startDate query string false "YYYY-MM-DD, inclusive"
// @Param endDate query string false "YYYY-MM-DD, inclusive"
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Router /orders/export [get]
func (h *OrderHandler) Export(c *gin.Context) {
	filter, ok := h.filter(c)
	if !ok {
		return
	}
	export, err := h.q.Export(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, export.Content)
}

func (h *OrderHandler) filter(c *gin.Context) (queries.OrderFilter, bool) {
	var query reqdto.ListOrdersQuery
	if !bindQuery(c, &query) {
		return queries.OrderFilter{}, false
	}
	filter, err := query.ToFilter(h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return queries.OrderFilter{}, false
	}
	return filter, true
}

// @Summary Order details
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 200 {object} resdto.Envelope{data=queries.OrderDetails}
// @Failure 404 {object} httperr.Response
// @Router /order-details/{orderId} [get]
func (h *OrderHandler) Details(c *gin.Context) {
	id, ok := pathID(c, "orderId")
	if !ok {
		return
	}
	details, err := h.q.Details(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(details))
}

// @Summary Order statistics
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param period query int false "Trailing window in days (default 30)"
// @Success 200 {object} resdto.Envelope{data=queries.OrderStats}
// @Router /order-stats [get]
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context(), analytics.ParsePeriod(c.Query("period")))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(stats))
}

// @Summary Update order status
// @Description Sets the status, applies its side effects and appends a timeline entry
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} resdto.Envelope{data=queries.OrderDetails}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /update-order-status [post]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput(actorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := h.cmds.UpdateStatus(c.Request.Context(), in); err != nil {
		httperr.Abort(c, err)
		return
	}
	details, err := h.q.Details(c.Request.Context(), in.OrderID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WithMessage("Order status updated to "+in.Status, details))
}
