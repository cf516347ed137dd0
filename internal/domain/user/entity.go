package user

import (
	"strings"
	"time"

	"furnicraft/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Stats struct {
	TotalOrders   int32
	TotalSpent    decimal.Decimal
	LastOrderDate *time.Time
}

type User struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	profilePic   string
	role         Role
	phone        string
	isActive     bool
	isBlocked    bool
	lastLogin    *time.Time
	addresses    []Address
	preferences  Preferences
	stats        Stats
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name string, email Email, passwordHash string, role Role, now time.Time) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		addresses:    []Address{},
		preferences:  DefaultPreferences(),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Snapshot carries persisted state into Reconstruct.
type Snapshot struct {
	ID           uuid.UUID
	Name         string
	Email        Email
	PasswordHash string
	ProfilePic   string
	Role         Role
	Phone        string
	IsActive     bool
	IsBlocked    bool
	LastLogin    *time.Time
	Addresses    []Address
	Preferences  Preferences
	Stats        Stats
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func Reconstruct(s Snapshot) *User {
	return &User{
		id:           s.ID,
		name:         s.Name,
		email:        s.Email,
		passwordHash: s.PasswordHash,
		profilePic:   s.ProfilePic,
		role:         s.Role,
		phone:        s.Phone,
		isActive:     s.IsActive,
		isBlocked:    s.IsBlocked,
		lastLogin:    s.LastLogin,
		addresses:    s.Addresses,
		preferences:  s.Preferences,
		stats:        s.Stats,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
	}
}

// EnsureCanSignIn rejects blocked or deactivated accounts.
func (u *User) EnsureCanSignIn() error {
	if u.isBlocked {
		return ErrAccountBlocked
	}
	if !u.isActive {
		return ErrAccountInactive
	}
	return nil
}

func (u *User) RecordLogin(now time.Time) {
	u.lastLogin = &now
	u.updatedAt = now
}

// ApplyAction changes account standing on behalf of actor.
func (u *User) ApplyAction(action Action, actor uuid.UUID, now time.Time) error {
	switch action {
	case ActionBlock:
		if actor == u.id {
			return ErrSelfLockout
		}
		u.isBlocked = true
		u.isActive = false
	case ActionUnblock, ActionActivate:
		u.isBlocked = false
		u.isActive = true
	case ActionDeactivate:
		if actor == u.id {
			return ErrSelfLockout
		}
		u.isActive = false
	case ActionReset:
		u.stats = Stats{TotalSpent: decimal.Zero}
		u.lastLogin = nil
	default:
		return ErrInvalidAction
	}
	u.updatedAt = now
	return nil
}

// ProfileChange is a partial profile update. Addresses replace the stored
// list; preferences are merged key by key.
type ProfileChange struct {
	Name        *string
	Email       *Email
	Phone       *string
	Addresses   []Address
	Preferences Preferences
}

// EmailChanged reports whether applying ch would change the address.
func (u *User) EmailChanged(ch ProfileChange) bool {
	return ch.Email != nil && ch.Email.Value() != u.email.Value()
}

func (u *User) UpdateProfile(ch ProfileChange, now time.Time) error {
	if ch.Name != nil {
		name := strings.TrimSpace(*ch.Name)
		if name == "" {
			return ErrEmptyName
		}
		ch.Name = &name
	}
	for _, a := range ch.Addresses {
		if err := a.Validate(); err != nil {
			return err
		}
	}

	patch.Assign(&u.name, ch.Name)
	patch.Assign(&u.email, ch.Email)
	patch.Assign(&u.phone, ch.Phone)
	if ch.Addresses != nil {
		u.addresses = ch.Addresses
	}
	if ch.Preferences != nil {
		u.preferences = patch.Merge(u.preferences, ch.Preferences)
	}
	u.updatedAt = now
	return nil
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Name() string             { return u.name }
func (u *User) Email() Email             { return u.email }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) ProfilePic() string       { return u.profilePic }
func (u *User) Role() Role               { return u.role }
func (u *User) Phone() string            { return u.phone }
func (u *User) IsActive() bool           { return u.isActive }
func (u *User) IsBlocked() bool          { return u.isBlocked }
func (u *User) LastLogin() *time.Time    { return u.lastLogin }
func (u *User) Addresses() []Address     { return u.addresses }
func (u *User) Preferences() Preferences { return u.preferences }
func (u *User) Stats() Stats             { return u.stats }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }

const recentActivityWindow = 7 * 24 * time.Hour

// DaysSinceLastLogin is nil for users who never signed in.
func DaysSinceLastLogin(lastLogin *time.Time, now time.Time) *int {
	if lastLogin == nil {
		return nil
	}
	days := int(now.Sub(*lastLogin) / (24 * time.Hour))
	return &days
}

func IsRecentlyActive(lastLogin *time.Time, now time.Time) bool {
	return lastLogin != nil && now.Sub(*lastLogin) < recentActivityWindow
}

// AverageOrderValue is zero for users without orders.
func AverageOrderValue(s Stats) decimal.Decimal {
	if s.TotalOrders <= 0 {
		return decimal.Zero
	}
	return s.TotalSpent.Div(decimal.NewFromInt32(s.TotalOrders)).Round(2)
}
