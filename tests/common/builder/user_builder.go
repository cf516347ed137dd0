//go:build unit || e2e

package builder

import (
	"time"

	"furnicraft/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Phone        string
	IsActive     bool
	IsBlocked    bool
	LastLogin    *time.Time
	TotalOrders  int32
	TotalSpent   decimal.Decimal
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Name:         "Test Admin",
		Email:        "admin@example.com",
		PasswordHash: "hashed_password",
		Role:         "admin",
		Phone:        "+1-555-0100",
		IsActive:     true,
		TotalSpent:   decimal.Zero,
		CreatedAt:    time.Now().Add(-90 * 24 * time.Hour),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(u.Name, email, u.PasswordHash, role, u.CreatedAt)
}

// BuildStored returns a user as loaded from the database.
func (u *UserBuilder) BuildStored() *user.User {
	email, _ := user.NewEmail(u.Email)
	return user.Reconstruct(user.Snapshot{
		ID:           u.ID,
		Name:         u.Name,
		Email:        email,
		PasswordHash: u.PasswordHash,
		Role:         user.Role(u.Role),
		Phone:        u.Phone,
		IsActive:     u.IsActive,
		IsBlocked:    u.IsBlocked,
		LastLogin:    u.LastLogin,
		Addresses:    []user.Address{},
		Preferences:  user.DefaultPreferences(),
		Stats:        user.Stats{TotalOrders: u.TotalOrders, TotalSpent: u.TotalSpent},
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.CreatedAt,
	})
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithLastLogin(t time.Time) *UserBuilder {
	u.LastLogin = &t
	return u
}

func (u *UserBuilder) WithStats(orders int32, spent int64) *UserBuilder {
	u.TotalOrders = orders
	u.TotalSpent = decimal.NewFromInt(spent)
	return u
}

func (u *UserBuilder) AsCustomer() *UserBuilder {
	u.Name = "Test Customer"
	u.Email = "customer@example.com"
	u.Role = "general"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

func (u *UserBuilder) AsBlocked() *UserBuilder {
	u.IsBlocked = true
	u.IsActive = false
	return u
}
