package password

import (
	"errors"

	"furnicraft/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errors.New("password is empty")
	ErrMismatch = errors.New("password does not match")
)

// HashWithCost hashes plain with bcrypt. Production passes bcrypt.DefaultCost;
// fixtures pass bcrypt.MinCost to keep tests fast.
func HashWithCost(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

// Compare returns nil when plain matches hashed, ErrMismatch when it does not,
// and a wrapped error when hashed is not a bcrypt hash at all.
func Compare(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrEmpty
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "compare password hash")
	}
}
