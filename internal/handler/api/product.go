package api

import (
	"net/http"

	reqdto "furnicraft/internal/handler/dto/request"
	resdto "furnicraft/internal/handler/dto/response"
	"furnicraft/internal/handler/httperr"
	"furnicraft/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	q queries.ProductQueries
}

func NewProductHandler(q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{q: q}
}

// @Summary Featured products
// @Description Newest active products, optionally within one category
// @Tags products
// @Produce json
// @Param category query string false "Category"
// @Param limit query int false "Number of products (default 4, max 20)"
// @Success 200 {object} resdto.Envelope{data=[]queries.ProductCard}
// @Failure 400 {object} httperr.Response
// @Router /featured-products [get]
func (h *ProductHandler) Featured(c *gin.Context) {
	var query reqdto.FeaturedProductsQuery
	if !bindQuery(c, &query) {
		return
	}
	cards, err := h.q.Featured(c.Request.Context(), query.ToFilter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WithMessage("Featured products fetched successfully", cards))
}
