package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing entity.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate entity identifier.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidDraft signals a draft or patch with missing required fields.
	ErrInvalidDraft = errors.New("invalid draft")
	// ErrTransitionNotAllowed signals a status change outside the allowed transitions table.
	ErrTransitionNotAllowed = errors.New("transition not allowed")
	// ErrConfirmationRequired signals a destructive operation submitted without confirmation.
	ErrConfirmationRequired = errors.New("confirmation required")
	// ErrSubmitInProgress signals a second mutation while a remote one is still outstanding.
	ErrSubmitInProgress = errors.New("submit in progress")
	// ErrRemoteUnavailable signals a failed call to the remote collaborator.
	ErrRemoteUnavailable = errors.New("remote collaborator unavailable")
)

// TransitionError wraps ErrTransitionNotAllowed with the attempted move.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrTransitionNotAllowed.Error(), e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrTransitionNotAllowed }

// NewTransitionError creates a transition error.
func NewTransitionError(from, to string) error {
	return &TransitionError{From: from, To: to}
}

// MissingFieldError wraps ErrInvalidDraft with the name of the first missing field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s is required", ErrInvalidDraft.Error(), e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrInvalidDraft }

// Required returns a MissingFieldError when the trimmed value is empty.
func Required(field, value string) error {
	if IsBlank(value) {
		return &MissingFieldError{Field: field}
	}
	return nil
}
