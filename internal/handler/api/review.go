package api

import (
	"net/http"

	reqdto "furnicraft/internal/handler/dto/request"
	resdto "furnicraft/internal/handler/dto/response"
	"furnicraft/internal/handler/httperr"
	"furnicraft/internal/usecase/commands"
	"furnicraft/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description One review per user and product; refreshes the product's rating
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} resdto.Envelope{data=queries.ReviewView}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), in, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.WithMessage("Review created successfully", view))
}

// @Summary List product reviews
// @Description Approved reviews with author, pagination and rating statistics
// @Tags reviews
// @Produce json
// @Param productId path string true "Product ID"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param rating query string false "all or 1-5"
// @Param sortBy query string false "createdAt, rating or helpful"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} resdto.Envelope{data=resdto.ReviewListResponse}
// @Failure 400 {object} httperr.Response
// @Router /products/{productId}/reviews [get]
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}
	var query reqdto.ListReviewsQuery
	if !bindQuery(c, &query) {
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	page, err := h.q.ListByProduct(c.Request.Context(), productID, filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromReviewPage(page)))
}
