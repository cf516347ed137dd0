package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user_mock.go -package=queriesmock

import (
	"context"
	"strings"
	"time"

	"furnicraft/internal/domain/order"
	"furnicraft/internal/domain/user"
	"furnicraft/internal/infra"
	"furnicraft/internal/infra/db"
	"furnicraft/internal/pkg/clock"
	"furnicraft/internal/pkg/errs"
	"furnicraft/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const recentOrdersLimit = 5

type UserStatusFilter string

const (
	UserStatusAll      UserStatusFilter = "all"
	UserStatusActive   UserStatusFilter = "active"
	UserStatusBlocked  UserStatusFilter = "blocked"
	UserStatusInactive UserStatusFilter = "inactive"
)

var ErrInvalidUserStatus = errs.Kinded(errs.ErrInvalidArgument, "Status must be all, active, blocked or inactive")

func ParseUserStatusFilter(raw string) (UserStatusFilter, error) {
	switch s := UserStatusFilter(strings.ToLower(strings.TrimSpace(raw))); s {
	case "":
		return UserStatusAll, nil
	case UserStatusAll, UserStatusActive, UserStatusBlocked, UserStatusInactive:
		return s, nil
	default:
		return "", ErrInvalidUserStatus
	}
}

var UserSortFields = []string{"createdAt", "name", "email", "lastLogin"}

func ParseUserSort(raw string) string {
	return pickSort(raw, UserSortFields, "createdAt")
}

type UserFilter struct {
	Search    string
	Status    UserStatusFilter
	SortBy    string
	SortOrder SortOrder
	Page      PageRequest
}

type UserStatsView struct {
	TotalOrders   int32           `json:"totalOrders"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
	LastOrderDate *time.Time      `json:"lastOrderDate"`
}

type UserView struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	ProfilePic         string           `json:"profilePic"`
	Role               user.Role        `json:"role"`
	Phone              string           `json:"phone"`
	IsActive           bool             `json:"isActive"`
	IsBlocked          bool             `json:"isBlocked"`
	LastLogin          *time.Time       `json:"lastLogin"`
	Addresses          []user.Address   `json:"addresses"`
	Preferences        user.Preferences `json:"preferences"`
	Stats              UserStatsView    `json:"stats"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
	DaysSinceLastLogin *int             `json:"daysSinceLastLogin"`
	IsRecentlyActive   bool             `json:"isRecentlyActive"`
}

// NewUserView never exposes the password hash.
func NewUserView(u *user.User, now time.Time) *UserView {
	s := u.Stats()
	addresses := u.Addresses()
	if addresses == nil {
		addresses = []user.Address{}
	}
	prefs := u.Preferences()
	if prefs == nil {
		prefs = user.DefaultPreferences()
	}
	return &UserView{
		ID:          u.ID(),
		Name:        u.Name(),
		Email:       u.Email().Value(),
		ProfilePic:  u.ProfilePic(),
		Role:        u.Role(),
		Phone:       u.Phone(),
		IsActive:    u.IsActive(),
		IsBlocked:   u.IsBlocked(),
		LastLogin:   u.LastLogin(),
		Addresses:   addresses,
		Preferences: prefs,
		Stats: UserStatsView{
			TotalOrders:   s.TotalOrders,
			TotalSpent:    s.TotalSpent,
			LastOrderDate: s.LastOrderDate,
		},
		CreatedAt:          u.CreatedAt(),
		UpdatedAt:          u.UpdatedAt(),
		DaysSinceLastLogin: user.DaysSinceLastLogin(u.LastLogin(), now),
		IsRecentlyActive:   user.IsRecentlyActive(u.LastLogin(), now),
	}
}

type RecentOrder struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type UserDetails struct {
	UserView
	AccountAge        int             `json:"accountAge"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
	RecentOrders      []RecentOrder   `json:"recentOrders"`
}

type UserPage struct {
	Users      []*UserView
	Pagination Pagination
}

type UserReadStore interface {
	FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*user.User, error)
	List(ctx context.Context, db db.DBTX, f UserFilter) ([]*user.User, int64, error)
	RecentOrders(ctx context.Context, db db.DBTX, userID uuid.UUID, limit int) ([]RecentOrder, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	List(ctx context.Context, f UserFilter) (*UserPage, error)
	Details(ctx context.Context, userID uuid.UUID) (*UserDetails, error)
}

type userQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore UserReadStore
	clock     clock.Clock
}

func NewUserQueries(uow shared.UnitOfWork, readStore UserReadStore, clock clock.Clock) UserQueries {
	return &userQueriesImpl{
		uow:       uow,
		readStore: readStore,
		clock:     clock,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	var u *user.User
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		u, err = q.readStore.FindByID(ctx, db, userID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	if err := u.EnsureCanSignIn(); err != nil {
		return nil, err
	}
	return NewUserView(u, q.clock.Now()), nil
}

func (q *userQueriesImpl) List(ctx context.Context, f UserFilter) (*UserPage, error) {
	var (
		rows  []*user.User
		total int64
	)
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		rows, total, err = q.readStore.List(ctx, db, f)
		return err
	})
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	views := make([]*UserView, 0, len(rows))
	for _, u := range rows {
		views = append(views, NewUserView(u, now))
	}
	return &UserPage{Users: views, Pagination: NewPagination(f.Page, total)}, nil
}

func (q *userQueriesImpl) Details(ctx context.Context, userID uuid.UUID) (*UserDetails, error) {
	var (
		u      *user.User
		recent []RecentOrder
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		var err error
		if u, err = q.readStore.FindByID(ctx, db, userID); err != nil {
			return err
		}
		recent, err = q.readStore.RecentOrders(ctx, db, userID, recentOrdersLimit)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	now := q.clock.Now()
	if recent == nil {
		recent = []RecentOrder{}
	}
	return &UserDetails{
		UserView:          *NewUserView(u, now),
		AccountAge:        order.DaysSince(u.CreatedAt(), now),
		AverageOrderValue: user.AverageOrderValue(u.Stats()),
		RecentOrders:      recent,
	}, nil
}
