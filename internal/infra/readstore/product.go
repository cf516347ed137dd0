package readstore

import (
	"context"
	"strconv"

	"furnicraft/internal/infra"
	"furnicraft/internal/infra/db"
	"furnicraft/internal/usecase/queries"
)

type ProductReadStore struct{}

func NewProductReadStore() *ProductReadStore {
	return &ProductReadStore{}
}

func (s *ProductReadStore) Featured(ctx context.Context, db db.DBTX, f queries.FeaturedFilter) ([]*queries.ProductCard, error) {
	var w where
	w.add("is_active")
	if f.Category != "" {
		w.add("category = ?", f.Category)
	}
	args := append(append([]any{}, w.args...), f.Limit)

	rows, err := db.Query(ctx, `
		SELECT id, product_name, product_image, category, price, selling_price, rating, review_count
		FROM products`+w.String()+`
		ORDER BY created_at DESC, id DESC
		LIMIT $`+strconv.Itoa(len(args)),
		args...,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list featured products", err)
	}
	defer rows.Close()

	out := make([]*queries.ProductCard, 0, f.Limit)
	for rows.Next() {
		var c queries.ProductCard
		if err := rows.Scan(&c.ID, &c.ProductName, &c.ProductImage, &c.Category,
			&c.Price, &c.SellingPrice, &c.Rating, &c.ReviewCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan featured product", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate featured products", err)
	}
	return out, nil
}
