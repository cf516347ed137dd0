package errs

import (
	"fmt"

	cr "github.com/cockroachdb/errors"
)

// Error kinds. Every failure surfaced to a client is marked with exactly one of them.
var (
	ErrNotFound        = cr.New("not found")
	ErrInvalidArgument = cr.New("invalid argument")
	ErrLimitExceeded   = cr.New("limit exceeded")
	ErrNotEligible     = cr.New("not eligible")
	ErrNotApplicable   = cr.New("not applicable")
	ErrInvalidState    = cr.New("invalid state")
	ErrBelowMinimum    = cr.New("below minimum")
	ErrUnauthorized    = cr.New("unauthorized")
	ErrForbidden       = cr.New("forbidden")
)

var kinds = []error{
	ErrNotFound,
	ErrInvalidArgument,
	ErrLimitExceeded,
	ErrNotEligible,
	ErrNotApplicable,
	ErrInvalidState,
	ErrBelowMinimum,
	ErrUnauthorized,
	ErrForbidden,
}

// Kinded builds an error of the given kind whose message is safe to show to API clients.
func Kinded(kind error, msg string) error {
	return cr.WithHint(cr.Mark(cr.New(msg), kind), msg)
}

func Kindedf(kind error, format string, args ...any) error {
	return Kinded(kind, fmt.Sprintf(format, args...))
}

// KindOf returns the kind err is marked with, or nil for unclassified (internal) errors.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if cr.Is(err, k) {
			return k
		}
	}
	return nil
}

// PublicMessage returns the client-facing message attached by Kinded, if any.
func PublicMessage(err error) string {
	hints := cr.GetAllHints(err)
	if len(hints) == 0 {
		return ""
	}
	return hints[0]
}

var kindNames = map[error]string{
	ErrNotFound:        "not_found",
	ErrInvalidArgument: "invalid_argument",
	ErrLimitExceeded:   "limit_exceeded",
	ErrNotEligible:     "not_eligible",
	ErrNotApplicable:   "not_applicable",
	ErrInvalidState:    "invalid_state",
	ErrBelowMinimum:    "below_minimum",
	ErrUnauthorized:    "unauthorized",
	ErrForbidden:       "forbidden",
}

// KindName is a stable snake_case label for err's kind, "internal" when it has none.
func KindName(err error) string {
	if name, ok := kindNames[KindOf(err)]; ok {
		return name
	}
	return "internal"
}
