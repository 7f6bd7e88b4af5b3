package repos

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrMissingRelation = errors.New("missing relation")
)

// NotFoundError reports a keyed lookup that matched no rows.
type NotFoundError struct {
	Entity string
	Key    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MissingRelationError reports a resolver invoked on an unset foreign key.
// It is returned before any query is issued.
type MissingRelationError struct {
	Field string
}

func (e *MissingRelationError) Error() string {
	return fmt.Sprintf("relation %s is not set", e.Field)
}

func (e *MissingRelationError) Is(target error) bool {
	return target == ErrMissingRelation
}
