package request

import (
	"furnicraft/internal/pkg/errs"
	"furnicraft/internal/usecase/commands"
	"furnicraft/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var errMissingProductID = errs.Kinded(errs.ErrInvalidArgument, "Product ID is required")

type CreateReviewRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Comment   string    `json:"comment"`
	Images    []string  `json:"images"`
}

func (r *CreateReviewRequest) ToInput() (commands.CreateReviewInput, error) {
	if r.ProductID == uuid.Nil {
		return commands.CreateReviewInput{}, errMissingProductID
	}
	var in commands.CreateReviewInput
	err := copier.Copy(&in, r)
	return in, err
}

type ListReviewsQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1"`
	Rating    string `form:"rating"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

func (q *ListReviewsQuery) ToFilter() (queries.ReviewFilter, error) {
	rating, err := queries.ParseRatingFilter(q.Rating)
	if err != nil {
		return queries.ReviewFilter{}, err
	}
	return queries.ReviewFilter{
		Rating:    rating,
		SortBy:    queries.ParseReviewSort(q.SortBy),
		SortOrder: queries.ParseSortOrder(q.SortOrder),
		Page:      queries.NewPageRequest(q.Page, q.Limit),
	}, nil
}

type FeaturedProductsQuery struct {
	Category string `form:"category"`
	Limit    int    `form:"limit" binding:"omitempty,min=1"`
}

func (q *FeaturedProductsQuery) ToFilter() queries.FeaturedFilter {
	return queries.NewFeaturedFilter(q.Category, q.Limit)
}
