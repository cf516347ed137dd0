package queries

//go:generate mockgen -source=review.go -destination=../../../tests/mock/queries/review_mock.go -package=queriesmock

import (
	"context"
	"strconv"
	"strings"
	"time"

	"furnicraft/internal/domain/review"
	"furnicraft/internal/infra/db"
	"furnicraft/internal/pkg/errs"
	"furnicraft/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidRatingFilter = errs.Kinded(errs.ErrInvalidArgument, "Rating filter must be all or a value from 1 to 5")

// ParseRatingFilter returns nil for "all" or an empty value.
func ParseRatingFilter(raw string) (*int, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || raw == "all" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < review.MinRating || n > review.MaxRating {
		return nil, ErrInvalidRatingFilter
	}
	return &n, nil
}

var ReviewSortFields = []string{"createdAt", "rating", "helpful"}

func ParseReviewSort(raw string) string {
	return pickSort(raw, ReviewSortFields, "createdAt")
}

type ReviewFilter struct {
	Rating    *int
	SortBy    string
	SortOrder SortOrder
	Page      PageRequest
}

type ReviewAuthor struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	ProfilePic string    `json:"profilePic"`
}

type ReviewView struct {
	ID         uuid.UUID     `json:"id"`
	ProductID  uuid.UUID     `json:"productId"`
	UserID     uuid.UUID     `json:"userId"`
	User       *ReviewAuthor `json:"user,omitempty"`
	Rating     int           `json:"rating"`
	Title      string        `json:"title"`
	Comment    string        `json:"comment"`
	Images     []string      `json:"images"`
	IsVerified bool          `json:"isVerified"`
	IsApproved bool          `json:"isApproved"`
	Helpful    int32         `json:"helpful"`
	NotHelpful int32         `json:"notHelpful"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

func NewReviewView(r *review.Review) *ReviewView {
	return &ReviewView{
		ID:         r.ID(),
		ProductID:  r.ProductID(),
		UserID:     r.UserID(),
		Rating:     r.Rating().Value(),
		Title:      r.Title().String(),
		Comment:    r.Comment().String(),
		Images:     r.Images(),
		IsVerified: r.IsVerified(),
		IsApproved: r.IsApproved(),
		Helpful:    r.Helpful(),
		NotHelpful: r.NotHelpful(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

type RatingBucket struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

type RatingStats struct {
	Average      decimal.Decimal `json:"average"`
	Total        int64           `json:"total"`
	Distribution []RatingBucket  `json:"distribution"`
}

// NewRatingStats lists every star value from 5 down to 1, including empty ones.
func NewRatingStats(s review.Stats) RatingStats {
	buckets := make([]RatingBucket, 0, review.MaxRating)
	for r := review.MaxRating; r >= review.MinRating; r-- {
		buckets = append(buckets, RatingBucket{Rating: r, Count: s.Counts[r]})
	}
	return RatingStats{Average: s.Average(), Total: s.Total(), Distribution: buckets}
}

type ReviewPage struct {
	Reviews    []*ReviewView
	Pagination Pagination
	Stats      RatingStats
}

type ReviewReadStore interface {
	// ListByProduct returns approved reviews with their authors.
	ListByProduct(ctx context.Context, db db.DBTX, productID uuid.UUID, f ReviewFilter) ([]*ReviewView, int64, error)
	// Stats covers every approved review of the product regardless of the rating filter.
	Stats(ctx context.Context, db db.DBTX, productID uuid.UUID) (review.Stats, error)
}

type ReviewQueries interface {
	ListByProduct(ctx context.Context, productID uuid.UUID, f ReviewFilter) (*ReviewPage, error)
}

type reviewQueriesImpl struct {
	uow   shared.UnitOfWork
	store ReviewReadStore
}

func NewReviewQueries(uow shared.UnitOfWork, store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{uow: uow, store: store}
}

func (q *reviewQueriesImpl) ListByProduct(ctx context.Context, productID uuid.UUID, f ReviewFilter) (*ReviewPage, error) {
	var (
		rows  []*ReviewView
		total int64
		stats review.Stats
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		rows, total, err = q.store.ListByProduct(ctx, db, productID, f)
		if err != nil {
			return err
		}
		stats, err = q.store.Stats(ctx, db, productID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &ReviewPage{
		Reviews:    rows,
		Pagination: NewPagination(f.Page, total),
		Stats:      NewRatingStats(stats),
	}, nil
}
