package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Kind classifies a store failure so the HTTP layer can map it to a
// status code without string matching.
type Kind int

const (
	// KindNotFound means a referenced entity id does not exist.
	KindNotFound Kind = iota + 1
	// KindConflict means a create collided with an existing identity.
	KindConflict
	// KindInvalid means the request itself was rejected by validation.
	KindInvalid
)

// Error is a deliberate, validation-shaped failure produced by the
// store's own checks. Persistence failures are wrapped separately and
// never carry a Kind.
type Error struct {
	Kind    Kind
	Entity  string
	ID      uuid.UUID
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case KindConflict:
		return fmt.Sprintf("%s %s already exists", e.Entity, e.ID)
	default:
		return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
	}
}

// ErrNotFound builds a not-found error naming the missing entity.
func ErrNotFound(entity string, id uuid.UUID) error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id}
}

// ErrConflict builds a conflict error for an identity collision.
func ErrConflict(entity string, id uuid.UUID) error {
	return &Error{Kind: KindConflict, Entity: entity, ID: id}
}

// ErrInvalid builds a validation error with an explicit message.
func ErrInvalid(entity string, id uuid.UUID, message string) error {
	return &Error{Kind: KindInvalid, Entity: entity, ID: id, Message: message}
}

func isKind(err error, kind Kind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == kind
}

// IsNotFound reports whether err is a not-found store error.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsConflict reports whether err is a conflict store error.
func IsConflict(err error) bool { return isKind(err, KindConflict) }

// IsInvalid reports whether err is a validation store error.
func IsInvalid(err error) bool { return isKind(err, KindInvalid) }
