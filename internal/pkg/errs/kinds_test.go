//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"furnicraft/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKinded(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantKind    error
		wantName    string
		wantMessage string
	}{
		{
			name:        "kinded error keeps its public message",
			err:         errs.Kinded(errs.ErrNotFound, "Coupon not found"),
			wantKind:    errs.ErrNotFound,
			wantName:    "not_found",
			wantMessage: "Coupon not found",
		},
		{
			name:        "wrapping keeps kind and message",
			err:         errs.Wrap(errs.Kindedf(errs.ErrBelowMinimum, "Minimum order amount is %d", 500), "validate coupon"),
			wantKind:    errs.ErrBelowMinimum,
			wantName:    "below_minimum",
			wantMessage: "Minimum order amount is 500",
		},
		{
			name:     "plain error is internal",
			err:      errors.New("connection refused"),
			wantKind: nil,
			wantName: "internal",
		},
		{
			name:     "mark without hint has no public message",
			err:      errs.Mark(errors.New("row missing"), errs.ErrNotFound),
			wantKind: errs.ErrNotFound,
			wantName: "not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, errs.KindOf(tt.err))
			assert.Equal(t, tt.wantName, errs.KindName(tt.err))
			assert.Equal(t, tt.wantMessage, errs.PublicMessage(tt.err))
		})
	}
}

func TestKindOf_Nil(t *testing.T) {
	assert.Nil(t, errs.KindOf(nil))
	assert.Equal(t, "internal", errs.KindName(nil))
}

func TestMarkAndIs(t *testing.T) {
	base := errors.New("timeout")
	sentinel := errors.New("token generation failed")

	marked := errs.Mark(base, sentinel)
	assert.True(t, errs.Is(marked, sentinel))
	assert.True(t, errs.Is(marked, base))
	assert.False(t, errors.Is(marked, sentinel), "the standard library does not see marks")

	assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
}

func TestCombine(t *testing.T) {
	first := errors.New("publish failed")
	second := errors.New("mark failed")

	assert.Nil(t, errs.Combine(nil, nil))
	assert.Equal(t, first, errs.Combine(first, nil))

	combined := errs.Combine(first, second)
	assert.True(t, errs.Is(combined, first))
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "context"))
	assert.NoError(t, errs.Wrapf(nil, "context %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
}
