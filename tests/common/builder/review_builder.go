//go:build unit || e2e

package builder

import (
	"time"

	"furnicraft/internal/domain/review"
	"furnicraft/internal/usecase/commands"
	"furnicraft/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
	UserName  string
	Rating    int
	Title     string
	Comment   string
	Images    []string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ProductID: uuid.New(),
		UserID:    uuid.New(),
		UserName:  "Test Reviewer",
		Rating:    5,
		Title:     "Sturdy and beautiful",
		Comment:   "The oak finish matches the photos and assembly took ten minutes.",
		Images:    []string{"https://cdn.example.com/reviews/table.jpg"},
		CreatedAt: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*review.Review, error) {
	return review.NewReview(r.ProductID, r.UserID, r.Rating, r.Title, r.Comment, r.Images, r.CreatedAt)
}

func (r *ReviewBuilder) BuildCreateInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Title:     r.Title,
		Comment:   r.Comment,
		Images:    r.Images,
	}
}

// BuildView returns the listing shape, author included.
func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:         uuid.New(),
		ProductID:  r.ProductID,
		UserID:     r.UserID,
		User:       &queries.ReviewAuthor{ID: r.UserID, Name: r.UserName},
		Rating:     r.Rating,
		Title:      r.Title,
		Comment:    r.Comment,
		Images:     r.Images,
		IsApproved: true,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.CreatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithTitle(title string) *ReviewBuilder {
	r.Title = title
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithImages(images ...string) *ReviewBuilder {
	r.Images = images
	return r
}
