package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// ErrValidation marks malformed input rejected before any mutation.
var ErrValidation = cr.New("validation error")

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

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Validation builds an error marked with ErrValidation.
func Validation(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrValidation)
}

func IsValidation(err error) bool {
	return cr.Is(err, ErrValidation)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
