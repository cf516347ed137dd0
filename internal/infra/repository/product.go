package repository

import (
	"context"

	"furnicraft/internal/infra"
	"furnicraft/internal/infra/db"
	"furnicraft/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(db db.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Lock(ctx context.Context, id uuid.UUID) error {
	var locked uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM products WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock product", err)
	}
	return nil
}

// RefreshRating resets both columns to zero once no approved review remains.
func (r *ProductRepository) RefreshRating(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products p SET
			rating = COALESCE(s.average, 0),
			review_count = s.total,
			updated_at = now()
		FROM (
			SELECT round(avg(rating), 2) AS average, count(*) AS total
			FROM reviews
			WHERE product_id = $1 AND is_approved
		) s
		WHERE p.id = $1`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to refresh product rating", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
