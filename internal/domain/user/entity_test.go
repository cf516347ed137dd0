//go:build unit

package user_test

import (
	"testing"
	"time"

	"furnicraft/internal/domain/user"
	"furnicraft/internal/pkg/errs"
	"furnicraft/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "admin@example.com", actual.Email().Value())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsBlocked())
		assert.Nil(t, actual.LastLogin())
		if diff := cmp.Diff(user.DefaultPreferences(), actual.Preferences()); diff != "" {
			t.Errorf("preferences mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "general role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("general") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("superuser") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.UserBuilder) { b.WithName("  ") },
				errIs:  user.ErrEmptyName,
			},
		})
	})

	t.Run("email is normalised", func(t *testing.T) {
		email, err := user.NewEmail("  Mixed@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "mixed@example.com", email.Value())
	})
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleGeneral))
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleAdmin))
	assert.False(t, user.RoleGeneral.AtLeast(user.RoleAdmin))
	assert.False(t, user.Role("ghost").AtLeast(user.RoleGeneral))
}

func TestApplyAction(t *testing.T) {
	now := time.Now()
	admin := uuid.New()

	t.Run("block then unblock", func(t *testing.T) {
		u := builder.NewUserBuilder().AsCustomer().BuildStored()

		require.NoError(t, u.ApplyAction(user.ActionBlock, admin, now))
		assert.True(t, u.IsBlocked())
		assert.False(t, u.IsActive())
		require.ErrorIs(t, u.EnsureCanSignIn(), user.ErrAccountBlocked)

		require.NoError(t, u.ApplyAction(user.ActionUnblock, admin, now))
		assert.False(t, u.IsBlocked())
		assert.True(t, u.IsActive())
		require.NoError(t, u.EnsureCanSignIn())
	})

	t.Run("deactivate keeps block flag", func(t *testing.T) {
		u := builder.NewUserBuilder().AsCustomer().BuildStored()

		require.NoError(t, u.ApplyAction(user.ActionDeactivate, admin, now))
		assert.False(t, u.IsActive())
		assert.False(t, u.IsBlocked())
		require.ErrorIs(t, u.EnsureCanSignIn(), user.ErrAccountInactive)
	})

	t.Run("reset clears stats and last login", func(t *testing.T) {
		u := builder.NewUserBuilder().AsCustomer().WithStats(4, 900).WithLastLogin(now.Add(-time.Hour)).BuildStored()

		require.NoError(t, u.ApplyAction(user.ActionReset, admin, now))
		assert.Equal(t, int32(0), u.Stats().TotalOrders)
		assert.True(t, u.Stats().TotalSpent.IsZero())
		assert.Nil(t, u.Stats().LastOrderDate)
		assert.Nil(t, u.LastLogin())
	})

	t.Run("admins cannot lock themselves out", func(t *testing.T) {
		u := builder.NewUserBuilder().WithID(admin).BuildStored()

		err := u.ApplyAction(user.ActionBlock, admin, now)
		require.ErrorIs(t, err, user.ErrSelfLockout)
		assert.True(t, errs.Is(err, errs.ErrInvalidState))

		require.ErrorIs(t, u.ApplyAction(user.ActionDeactivate, admin, now), user.ErrSelfLockout)
		assert.True(t, u.IsActive())
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := user.ParseAction("delete")
		require.ErrorIs(t, err, user.ErrInvalidAction)
		assert.Equal(t, "Invalid action", errs.PublicMessage(err))
	})

	t.Run("action messages", func(t *testing.T) {
		a, err := user.ParseAction("reset")
		require.NoError(t, err)
		assert.Equal(t, "User account reset successfully", a.Message())
		assert.Equal(t, "User blocked successfully", user.ActionBlock.Message())
	})
}

func TestUpdateProfile(t *testing.T) {
	now := time.Now()

	t.Run("preferences are merged and addresses replaced", func(t *testing.T) {
		u := builder.NewUserBuilder().AsCustomer().BuildStored()
		phone := "+1-555-0199"

		err := u.UpdateProfile(user.ProfileChange{
			Phone:       &phone,
			Addresses:   []user.Address{{Type: user.AddressWork, City: "Austin"}},
			Preferences: user.Preferences{user.PrefNewsletter: false},
		}, now)
		require.NoError(t, err)

		assert.Equal(t, phone, u.Phone())
		assert.Equal(t, "Test Customer", u.Name())
		require.Len(t, u.Addresses(), 1)
		assert.Equal(t, "Austin", u.Addresses()[0].City)
		want := user.Preferences{user.PrefNewsletter: false, user.PrefNotifications: true}
		if diff := cmp.Diff(want, u.Preferences()); diff != "" {
			t.Errorf("preferences mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid address type", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildStored()

		err := u.UpdateProfile(user.ProfileChange{Addresses: []user.Address{{Type: "castle"}}}, now)
		require.ErrorIs(t, err, user.ErrInvalidAddressType)
	})

	t.Run("email change detection", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildStored()
		same, _ := user.NewEmail("ADMIN@example.com")
		other, _ := user.NewEmail("new@example.com")

		assert.False(t, u.EmailChanged(user.ProfileChange{Email: &same}))
		assert.True(t, u.EmailChanged(user.ProfileChange{Email: &other}))
		assert.False(t, u.EmailChanged(user.ProfileChange{}))
	})
}

func TestActivityHelpers(t *testing.T) {
	now := time.Now()
	threeDaysAgo := now.Add(-3*24*time.Hour - time.Hour)
	tenDaysAgo := now.Add(-10 * 24 * time.Hour)

	assert.Nil(t, user.DaysSinceLastLogin(nil, now))
	assert.Equal(t, 3, *user.DaysSinceLastLogin(&threeDaysAgo, now))
	assert.True(t, user.IsRecentlyActive(&threeDaysAgo, now))
	assert.False(t, user.IsRecentlyActive(&tenDaysAgo, now))
	assert.False(t, user.IsRecentlyActive(nil, now))

	assert.True(t, user.AverageOrderValue(user.Stats{}).IsZero())
	avg := user.AverageOrderValue(user.Stats{TotalOrders: 3, TotalSpent: decimal.NewFromInt(100)})
	assert.Equal(t, "33.33", avg.StringFixed(2))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
