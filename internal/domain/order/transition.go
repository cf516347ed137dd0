package order

import (
	"furnicraft/internal/pkg/errs"

	"github.com/cockroachdb/errors"
)

// TransitionPolicy decides whether an order may move between two statuses.
type TransitionPolicy interface {
	Allow(from, to Status) error
}

type PolicyName string

const (
	PolicyFree   PolicyName = "free"
	PolicyStrict PolicyName = "strict"
)

// NewTransitionPolicy resolves a configured policy name.
func NewTransitionPolicy(name string) (TransitionPolicy, error) {
	switch PolicyName(name) {
	case PolicyFree, "":
		return FreePolicy{}, nil
	case PolicyStrict:
		return StrictPolicy{}, nil
	default:
		return nil, errors.Newf("unknown transition policy %q", name)
	}
}

// FreePolicy accepts any status after any other.
type FreePolicy struct{}

func (FreePolicy) Allow(_, _ Status) error { return nil }

// StrictPolicy only allows forward lifecycle moves.
type StrictPolicy struct{}

var strictTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusReturned},
	StatusDelivered:  {StatusReturned},
	StatusCancelled:  {},
	StatusReturned:   {},
}

func (StrictPolicy) Allow(from, to Status) error {
	for _, next := range strictTransitions[from] {
		if next == to {
			return nil
		}
	}
	return errs.Kindedf(errs.ErrInvalidState, "Cannot change order status from %s to %s", from, to)
}
