package api

import (
	"net/http"

	reqdto "furnicraft/internal/handler/dto/request"
	resdto "furnicraft/internal/handler/dto/response"
	"furnicraft/internal/handler/httperr"
	"furnicraft/internal/handler/middleware"
	"furnicraft/internal/usecase/commands"
	"furnicraft/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary List coupons
// @Description List coupons with status/type filters, search, sorting and pagination
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param status query string false "all, active, expired, inactive or upcoming"
// @Param type query string false "percentage, fixed or free_shipping"
// @Param search query string false "Matches code, name or description"
// @Param sortBy query string false "createdAt, code, name, value, validFrom, validUntil or usedCount"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} resdto.Envelope{data=resdto.CouponListResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	var query reqdto.ListCouponsQuery
	if !bindQuery(c, &query) {
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	page, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromCouponPage(page)))
}

// @Summary Create coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon"
// @Success 201 {object} resdto.Envelope{data=queries.CouponView}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateCouponRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), in, actorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.WithMessage("Coupon created successfully", view))
}

// @Summary Update coupon
// @Description Partial update; omitted fields keep their stored values
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param couponId path string true "Coupon ID"
// @Param request body reqdto.UpdateCouponRequest true "Changed fields"
// @Success 200 {object} resdto.Envelope{data=queries.CouponView}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/{couponId} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "couponId")
	if !ok {
		return
	}
	var req reqdto.UpdateCouponRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), id, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WithMessage("Coupon updated successfully", view))
}

// @Summary Delete coupon
// @Description Coupons that have been redeemed cannot be deleted
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param couponId path string true "Coupon ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/{couponId} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "couponId")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WithMessage("Coupon deleted successfully", nil))
}

// @Summary Validate coupon
// @Description Checks a code against a prospective order and returns the discount
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCouponRequest true "Code and cart"
// @Success 200 {object} resdto.Envelope{data=resdto.CouponValidationResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /validate-coupon [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
	if !bindJSON(c, &req) {
		return
	}
	var caller *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		caller = &id
	}
	result, err := h.q.Validate(c.Request.Context(), req.ToInput(caller))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WithMessage("Coupon is valid", resdto.CouponValidationResponse{Coupon: result}))
}
