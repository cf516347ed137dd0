//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"furnicraft/internal/domain/user"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/usecase/queries"
	"furnicraft/tests/common/builder"
	queriesmock "furnicraft/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	testCases := []struct {
		name      string
		stored    *builder.UserBuilder
		storeErr  bool
		expectErr error
	}{
		{name: "success: active admin", stored: builder.NewUserBuilder()},
		{name: "error: blocked account", stored: builder.NewUserBuilder().AsBlocked(), expectErr: user.ErrAccountBlocked},
		{name: "error: deactivated account", stored: builder.NewUserBuilder().AsInactive(), expectErr: user.ErrAccountInactive},
		{name: "error: deleted account", stored: builder.NewUserBuilder(), storeErr: true, expectErr: user.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockUserReadStore(ctrl)
			u := tc.stored.WithLastLogin(fixedNow.Add(-2 * 24 * time.Hour)).BuildStored()
			if tc.storeErr {
				store.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.ID()).Return(nil, notFoundErr())
			} else {
				store.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.ID()).Return(u, nil)
			}
			q := queries.NewUserQueries(newReadUoW(ctrl), store, clock.NewMockClock(fixedNow))

			view, err := q.GetCurrentUser(context.Background(), u.ID())

			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "admin@example.com", view.Email)
			require.NotNil(t, view.DaysSinceLastLogin)
			assert.Equal(t, 2, *view.DaysSinceLastLogin)
			assert.True(t, view.IsRecentlyActive)
		})
	}
}

func TestUserQueries_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockUserReadStore(ctrl)
	f := queries.UserFilter{Status: queries.UserStatusAll, Page: queries.NewPageRequest(1, 2)}
	rows := []*user.User{
		builder.NewUserBuilder().AsCustomer().BuildStored(),
		builder.NewUserBuilder().BuildStored(),
	}
	store.EXPECT().List(gomock.Any(), gomock.Any(), f).Return(rows, int64(5), nil)
	q := queries.NewUserQueries(newReadUoW(ctrl), store, clock.NewMockClock(fixedNow))

	page, err := q.List(context.Background(), f)

	require.NoError(t, err)
	assert.Len(t, page.Users, 2)
	assert.Nil(t, page.Users[0].LastLogin)
	assert.False(t, page.Users[0].IsRecentlyActive)
	assert.Equal(t, queries.Pagination{CurrentPage: 1, TotalPages: 3, Total: 5, HasNext: true}, page.Pagination)
}

func TestUserQueries_Details(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockUserReadStore(ctrl)
	u := builder.NewUserBuilder().AsCustomer().WithStats(4, 1000).
		With(func(b *builder.UserBuilder) { b.CreatedAt = fixedNow.AddDate(0, 0, -40) }).BuildStored()
	store.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.ID()).Return(u, nil)
	store.EXPECT().RecentOrders(gomock.Any(), gomock.Any(), u.ID(), 5).Return(nil, nil)
	q := queries.NewUserQueries(newReadUoW(ctrl), store, clock.NewMockClock(fixedNow))

	details, err := q.Details(context.Background(), u.ID())

	require.NoError(t, err)
	assert.Equal(t, 40, details.AccountAge)
	assert.True(t, decimal.NewFromInt(250).Equal(details.AverageOrderValue))
	assert.NotNil(t, details.RecentOrders)
	assert.Empty(t, details.RecentOrders)
}

func TestUserQueries_DetailsUnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockUserReadStore(ctrl)
	id := uuid.New()
	store.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).Return(nil, notFoundErr())
	q := queries.NewUserQueries(newReadUoW(ctrl), store, clock.NewMockClock(fixedNow))

	details, err := q.Details(context.Background(), id)

	require.ErrorIs(t, err, user.ErrNotFound)
	assert.Nil(t, details)
}

func TestParseUserStatusFilter(t *testing.T) {
	got, err := queries.ParseUserStatusFilter(" Blocked ")
	require.NoError(t, err)
	assert.Equal(t, queries.UserStatusBlocked, got)

	got, err = queries.ParseUserStatusFilter("")
	require.NoError(t, err)
	assert.Equal(t, queries.UserStatusAll, got)

	_, err = queries.ParseUserStatusFilter("banned")
	require.ErrorIs(t, err, queries.ErrInvalidUserStatus)
}
