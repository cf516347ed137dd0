// Package errs wraps cockroachdb/errors so the rest of the code base gets
// stack traces, marks and safe client messages from one import.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error { return cr.New(msg) }

func Newf(format string, args ...any) error { return cr.Newf(format, args...) }

// Wrap returns nil for a nil err, so it is safe on every return path.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark tags err so that Is(err, mark) holds without changing its message.
// A nil err yields the mark itself.
func Mark(err error, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

// Is understands marks as well as wrapping, unlike the standard library.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

// Combine keeps both errors; either may be nil.
func Combine(err, other error) error {
	return cr.CombineErrors(err, other)
}

// ExtractStackLines renders the verbose form of err, including the recorded
// stack, trimmed to maxLines when maxLines is positive.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		return lines[:maxLines]
	}
	return lines
}
