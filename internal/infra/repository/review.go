package repository

import (
	"context"

	"furnicraft/internal/domain/review"
	"furnicraft/internal/infra"
	"furnicraft/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(db db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Exists(ctx context.Context, productID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE product_id = $1 AND user_id = $2)`,
		productID, userID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing review", err)
	}
	return exists, nil
}

// Create surfaces the (product_id, user_id) unique constraint as KindDuplicateKey.
func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reviews (id, product_id, user_id, rating, title, comment, images,
			is_verified, is_approved, helpful, not_helpful, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		rv.ID(), rv.ProductID(), rv.UserID(), rv.Rating().Value(), rv.Title().String(),
		rv.Comment().String(), rv.Images(), rv.IsVerified(), rv.IsApproved(),
		rv.Helpful(), rv.NotHelpful(), rv.CreatedAt(), rv.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}
