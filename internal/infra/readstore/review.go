package readstore

import (
	"context"

	"furnicraft/internal/domain/review"
	"furnicraft/internal/infra"
	"furnicraft/internal/infra/db"
	"furnicraft/internal/usecase/queries"

	"github.com/google/uuid"
)

var reviewSortColumns = map[string]string{
	"createdAt": "r.created_at",
	"rating":    "r.rating",
	"helpful":   "r.helpful",
}

type ReviewReadStore struct{}

func NewReviewReadStore() *ReviewReadStore {
	return &ReviewReadStore{}
}

func (s *ReviewReadStore) ListByProduct(ctx context.Context, db db.DBTX, productID uuid.UUID, f queries.ReviewFilter) ([]*queries.ReviewView, int64, error) {
	var w where
	w.add("r.product_id = ?", productID)
	w.add("r.is_approved")
	if f.Rating != nil {
		w.add("r.rating = ?", *f.Rating)
	}

	var total int64
	if err := db.QueryRow(ctx, `SELECT count(*) FROM reviews r`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count reviews", err)
	}

	limit, args := w.page(f.Page)
	rows, err := db.Query(ctx, `
		SELECT r.id, r.product_id, r.user_id, u.name, u.profile_pic, r.rating, r.title, r.comment,
		       r.images, r.is_verified, r.is_approved, r.helpful, r.not_helpful, r.created_at, r.updated_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id`+w.String()+
		orderBy(reviewSortColumns, f.SortBy, f.SortOrder, "r.id")+limit,
		args...,
	)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	out := make([]*queries.ReviewView, 0, f.Page.Limit)
	for rows.Next() {
		var (
			v      queries.ReviewView
			author queries.ReviewAuthor
			rating int16
		)
		if err := rows.Scan(&v.ID, &v.ProductID, &v.UserID, &author.Name, &author.ProfilePic, &rating,
			&v.Title, &v.Comment, &v.Images, &v.IsVerified, &v.IsApproved, &v.Helpful, &v.NotHelpful,
			&v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan review", err)
		}
		author.ID = v.UserID
		v.User = &author
		v.Rating = int(rating)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate reviews", err)
	}
	return out, total, nil
}

func (s *ReviewReadStore) Stats(ctx context.Context, db db.DBTX, productID uuid.UUID) (review.Stats, error) {
	var stats review.Stats
	rows, err := db.Query(ctx, `
		SELECT rating, count(*)
		FROM reviews
		WHERE product_id = $1 AND is_approved
		GROUP BY rating`,
		productID,
	)
	if err != nil {
		return stats, infra.WrapRepoErr("failed to load rating distribution", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rating int16
			count  int64
		)
		if err := rows.Scan(&rating, &count); err != nil {
			return stats, infra.WrapRepoErr("failed to scan rating bucket", err)
		}
		stats.Add(int(rating), count)
	}
	if err := rows.Err(); err != nil {
		return stats, infra.WrapRepoErr("failed to iterate rating distribution", err)
	}
	return stats, nil
}
