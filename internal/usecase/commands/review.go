package commands

//go:generate mockgen -source=review.go -destination=../../../tests/mock/commands/review_mock.go -package=commandsmock

import (
	"context"

	"furnicraft/internal/domain/review"
	"furnicraft/internal/infra"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/usecase/queries"
	"furnicraft/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewInput struct {
	ProductID uuid.UUID
	Rating    int
	Title     string
	Comment   string
	Images    []string
}

type ReviewCommands interface {
	Create(ctx context.Context, in CreateReviewInput, userID uuid.UUID) (*queries.ReviewView, error)
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clock clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clock}
}

// Create stores the caller's only review of a product and refreshes the
// product's rating in the same transaction.
func (c *reviewCommandsImpl) Create(ctx context.Context, in CreateReviewInput, userID uuid.UUID) (*queries.ReviewView, error) {
	created, err := review.NewReview(in.ProductID, userID, in.Rating, in.Title, in.Comment, in.Images, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Reviews().Exists(ctx, in.ProductID, userID)
		if err != nil {
			return err
		}
		if exists {
			return review.ErrAlreadyReviewed
		}
		if err := tx.Products().Lock(ctx, in.ProductID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return review.ErrProductNotFound
			}
			return err
		}
		if err := tx.Reviews().Create(ctx, created); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return review.ErrAlreadyReviewed
			}
			return err
		}
		return tx.Products().RefreshRating(ctx, in.ProductID)
	})
	if err != nil {
		return nil, err
	}
	return queries.NewReviewView(created), nil
}
