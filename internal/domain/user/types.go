package user

import "furnicraft/internal/pkg/errs"

type Role string

const (
	RoleGeneral Role = "general"
	RoleAdmin   Role = "admin"
)

var roleRank = map[Role]int{
	RoleGeneral: 1,
	RoleAdmin:   2,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above floor.
func (r Role) AtLeast(floor Role) bool {
	return r.IsValid() && roleRank[r] >= roleRank[floor]
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Action is an admin operation on an account's standing.
type Action string

const (
	ActionBlock      Action = "block"
	ActionUnblock    Action = "unblock"
	ActionActivate   Action = "activate"
	ActionDeactivate Action = "deactivate"
	ActionReset      Action = "reset"
)

var actionMessages = map[Action]string{
	ActionBlock:      "User blocked successfully",
	ActionUnblock:    "User unblocked successfully",
	ActionActivate:   "User activated successfully",
	ActionDeactivate: "User deactivated successfully",
	ActionReset:      "User account reset successfully",
}

func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := actionMessages[a]; !ok {
		return "", ErrInvalidAction
	}
	return a, nil
}

// Message is the confirmation shown after the action succeeds.
func (a Action) Message() string {
	return actionMessages[a]
}

type AddressType string

const (
	AddressHome  AddressType = "home"
	AddressWork  AddressType = "work"
	AddressOther AddressType = "other"
)

var (
	ErrInvalidEmail       = errs.Kinded(errs.ErrInvalidArgument, "Invalid email format")
	ErrInvalidRole        = errs.Kinded(errs.ErrInvalidArgument, "Invalid role")
	ErrPasswordTooWeak    = errs.Kinded(errs.ErrInvalidArgument, "Password must be at least 8 characters long")
	ErrInvalidAction      = errs.Kinded(errs.ErrInvalidArgument, "Invalid action")
	ErrInvalidAddressType = errs.Kinded(errs.ErrInvalidArgument, "Address type must be home, work or other")
	ErrEmptyName          = errs.Kinded(errs.ErrInvalidArgument, "Name cannot be empty")
	ErrEmailTaken         = errs.Kinded(errs.ErrInvalidArgument, "Email already in use")
	ErrNotFound           = errs.Kinded(errs.ErrNotFound, "User not found")
	ErrSelfLockout        = errs.Kinded(errs.ErrInvalidState, "You cannot block or deactivate your own account")
	ErrInvalidCredentials = errs.Kinded(errs.ErrUnauthorized, "Invalid email or password")
	ErrAccountBlocked     = errs.Kinded(errs.ErrForbidden, "Account is blocked")
	ErrAccountInactive    = errs.Kinded(errs.ErrForbidden, "Account is inactive")
)
