//go:build unit

package commands_test

import (
	"context"
	"testing"

	"furnicraft/internal/domain/review"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/usecase/commands"
	"furnicraft/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewCommands_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	testCases := []struct {
		name      string
		mutate    func(b *builder.ReviewBuilder)
		setupMock func(m *txMocks, productID uuid.UUID)
		expectErr error
	}{
		{
			name: "success: review stored and product rating refreshed",
			setupMock: func(m *txMocks, productID uuid.UUID) {
				m.expectWithin()
				gomock.InOrder(
					m.reviews.EXPECT().Exists(gomock.Any(), productID, userID).Return(false, nil),
					m.products.EXPECT().Lock(gomock.Any(), productID).Return(nil),
					m.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, r *review.Review) error {
							assert.Equal(t, userID, r.UserID())
							assert.Equal(t, productID, r.ProductID())
							return nil
						}),
					m.products.EXPECT().RefreshRating(gomock.Any(), productID).Return(nil),
				)
			},
		},
		{
			name:      "error: rating out of range",
			mutate:    func(b *builder.ReviewBuilder) { b.WithRating(0) },
			expectErr: review.ErrInvalidRating,
		},
		{
			name:      "error: blank title",
			mutate:    func(b *builder.ReviewBuilder) { b.WithTitle(" ") },
			expectErr: review.ErrEmptyTitle,
		},
		{
			name: "error: user already reviewed the product",
			setupMock: func(m *txMocks, productID uuid.UUID) {
				m.expectWithin()
				m.reviews.EXPECT().Exists(gomock.Any(), productID, userID).Return(true, nil)
			},
			expectErr: review.ErrAlreadyReviewed,
		},
		{
			name: "error: product does not exist",
			setupMock: func(m *txMocks, productID uuid.UUID) {
				m.expectWithin()
				m.reviews.EXPECT().Exists(gomock.Any(), productID, userID).Return(false, nil)
				m.products.EXPECT().Lock(gomock.Any(), productID).Return(notFoundErr())
			},
			expectErr: review.ErrProductNotFound,
		},
		{
			name: "error: concurrent review hits the unique constraint",
			setupMock: func(m *txMocks, productID uuid.UUID) {
				m.expectWithin()
				m.reviews.EXPECT().Exists(gomock.Any(), productID, userID).Return(false, nil)
				m.products.EXPECT().Lock(gomock.Any(), productID).Return(nil)
				m.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(duplicateErr())
			},
			expectErr: review.ErrAlreadyReviewed,
		},
		{
			name: "error: rating refresh fails",
			setupMock: func(m *txMocks, productID uuid.UUID) {
				m.expectWithin()
				m.reviews.EXPECT().Exists(gomock.Any(), productID, userID).Return(false, nil)
				m.products.EXPECT().Lock(gomock.Any(), productID).Return(nil)
				m.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.products.EXPECT().RefreshRating(gomock.Any(), productID).Return(dbErr())
			},
			expectErr: dbErrSentinel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTxMocks(ctrl)
			b := builder.NewReviewBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			if tc.setupMock != nil {
				tc.setupMock(m, b.ProductID)
			}
			cmds := commands.NewReviewCommands(m.uow, clock.NewMockClock(fixedNow))

			view, err := cmds.Create(ctx, b.BuildCreateInput(), userID)

			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ProductID, view.ProductID)
			assert.Equal(t, userID, view.UserID)
			assert.Equal(t, 5, view.Rating)
			assert.True(t, view.IsApproved)
			assert.Equal(t, fixedNow, view.CreatedAt)
		})
	}
}
