package model

import (
	"errors"
	"fmt"
)

// ErrMissingField matches every MissingFieldError via errors.Is.
var ErrMissingField = errors.New("missing field")

// MissingFieldError reports a required document path that is absent or has the wrong shape.
type MissingFieldError struct {
	Path   string
	Reason string
}

func (e *MissingFieldError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("missing field %q", e.Path)
	}
	return fmt.Sprintf("field %q: %s", e.Path, e.Reason)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

func missingField(path string) error {
	return &MissingFieldError{Path: path}
}

func invalidField(path, reason string) error {
	return &MissingFieldError{Path: path, Reason: reason}
}
