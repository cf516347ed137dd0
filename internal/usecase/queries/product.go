package queries

//go:generate mockgen -source=product.go -destination=../../../tests/mock/queries/product_mock.go -package=queriesmock

import (
	"context"
	"strings"

	"furnicraft/internal/infra/db"
	"furnicraft/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultFeaturedLimit = 4
	MaxFeaturedLimit     = 20
)

type FeaturedFilter struct {
	Category string
	Limit    int
}

// NewFeaturedFilter trims the category and clamps limit to [1, MaxFeaturedLimit].
func NewFeaturedFilter(category string, limit int) FeaturedFilter {
	if limit < 1 {
		limit = DefaultFeaturedLimit
	}
	if limit > MaxFeaturedLimit {
		limit = MaxFeaturedLimit
	}
	return FeaturedFilter{Category: strings.TrimSpace(category), Limit: limit}
}

type ProductCard struct {
	ID           uuid.UUID       `json:"id"`
	ProductName  string          `json:"productName"`
	ProductImage []string        `json:"productImage"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Rating       decimal.Decimal `json:"rating"`
	ReviewCount  int32           `json:"reviewCount"`
}

type ProductReadStore interface {
	// Featured returns active products, newest first.
	Featured(ctx context.Context, db db.DBTX, f FeaturedFilter) ([]*ProductCard, error)
}

type ProductQueries interface {
	Featured(ctx context.Context, f FeaturedFilter) ([]*ProductCard, error)
}

type productQueriesImpl struct {
	uow   shared.UnitOfWork
	store ProductReadStore
}

func NewProductQueries(uow shared.UnitOfWork, store ProductReadStore) ProductQueries {
	return &productQueriesImpl{uow: uow, store: store}
}

func (q *productQueriesImpl) Featured(ctx context.Context, f FeaturedFilter) ([]*ProductCard, error) {
	var cards []*ProductCard
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		cards, err = q.store.Featured(ctx, db, f)
		return err
	})
	if err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []*ProductCard{}
	}
	return cards, nil
}
