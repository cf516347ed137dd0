package response

import "furnicraft/internal/usecase/queries"

type ReviewListResponse struct {
	Reviews     []*queries.ReviewView `json:"reviews"`
	Pagination  ReviewPagination      `json:"pagination"`
	RatingStats queries.RatingStats   `json:"ratingStats"`
}

func FromReviewPage(p *queries.ReviewPage) ReviewListResponse {
	reviews := p.Reviews
	if reviews == nil {
		reviews = []*queries.ReviewView{}
	}
	return ReviewListResponse{
		Reviews:     reviews,
		Pagination:  FromReviewPagination(p.Pagination),
		RatingStats: p.Stats,
	}
}
