//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"furnicraft/internal/domain/review"
	"furnicraft/internal/usecase/queries"
	"furnicraft/tests/common/builder"
	queriesmock "furnicraft/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseRatingFilter(t *testing.T) {
	for _, raw := range []string{"", "all", " ALL "} {
		got, err := queries.ParseRatingFilter(raw)
		require.NoError(t, err, raw)
		assert.Nil(t, got, raw)
	}

	got, err := queries.ParseRatingFilter("4")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 4, *got)

	for _, raw := range []string{"0", "6", "five", "4.5"} {
		_, err := queries.ParseRatingFilter(raw)
		require.ErrorIs(t, err, queries.ErrInvalidRatingFilter, raw)
	}
}

func TestParseReviewSort(t *testing.T) {
	assert.Equal(t, "helpful", queries.ParseReviewSort("helpful"))
	assert.Equal(t, "createdAt", queries.ParseReviewSort("user_id"))
}

func TestReviewQueries_ListByProduct(t *testing.T) {
	productID := uuid.New()
	four := 4
	f := queries.ReviewFilter{
		Rating:    &four,
		SortBy:    "createdAt",
		SortOrder: queries.SortDesc,
		Page:      queries.NewPageRequest(1, 1),
	}

	t.Run("success: page carries stats for every approved review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReviewReadStore(ctrl)
		row := builder.NewReviewBuilder().WithRating(4).BuildView()

		var stats review.Stats
		stats.Add(5, 3)
		stats.Add(4, 2)
		stats.Add(2, 1)

		store.EXPECT().ListByProduct(gomock.Any(), gomock.Any(), productID, f).Return([]*queries.ReviewView{row}, int64(2), nil)
		store.EXPECT().Stats(gomock.Any(), gomock.Any(), productID).Return(stats, nil)
		q := queries.NewReviewQueries(newReadUoW(ctrl), store)

		page, err := q.ListByProduct(context.Background(), productID, f)

		require.NoError(t, err)
		require.Len(t, page.Reviews, 1)
		assert.Equal(t, queries.Pagination{CurrentPage: 1, TotalPages: 2, Total: 2, HasNext: true}, page.Pagination)
		assert.Equal(t, int64(6), page.Stats.Total)
		assert.Equal(t, "4.17", page.Stats.Average.StringFixed(2))
		want := []queries.RatingBucket{
			{Rating: 5, Count: 3},
			{Rating: 4, Count: 2},
			{Rating: 3, Count: 0},
			{Rating: 2, Count: 1},
			{Rating: 1, Count: 0},
		}
		if diff := cmp.Diff(want, page.Stats.Distribution); diff != "" {
			t.Errorf("distribution mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: product without reviews", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReviewReadStore(ctrl)
		store.EXPECT().ListByProduct(gomock.Any(), gomock.Any(), productID, f).Return(nil, int64(0), nil)
		store.EXPECT().Stats(gomock.Any(), gomock.Any(), productID).Return(review.Stats{}, nil)
		q := queries.NewReviewQueries(newReadUoW(ctrl), store)

		page, err := q.ListByProduct(context.Background(), productID, f)

		require.NoError(t, err)
		assert.Empty(t, page.Reviews)
		assert.Zero(t, page.Stats.Total)
		assert.True(t, page.Stats.Average.IsZero())
		assert.Len(t, page.Stats.Distribution, 5)
		assert.False(t, page.Pagination.HasNext)
	})

	t.Run("error: store failure skips stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReviewReadStore(ctrl)
		boom := errors.New("boom")
		store.EXPECT().ListByProduct(gomock.Any(), gomock.Any(), productID, f).Return(nil, int64(0), boom)
		q := queries.NewReviewQueries(newReadUoW(ctrl), store)

		page, err := q.ListByProduct(context.Background(), productID, f)

		require.ErrorIs(t, err, boom)
		assert.Nil(t, page)
	})
}
