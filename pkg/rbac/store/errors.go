package store

import (
	"errors"
	"fmt"
)

// AlreadyExistsError reports a violated uniqueness invariant: a role name, a
// permission (type, target) pair, or an active user-role binding.
type AlreadyExistsError struct {
	// Resource is the kind of record, e.g. "role" or "permission".
	Resource string
	// Key identifies the conflicting record, e.g. the role name.
	Key string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %s already exists", e.Resource, e.Key)
}

// NotFoundError reports a referenced record that does not exist, e.g. the
// role named by an assignment operation.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s doesn't exist", e.Resource, e.Key)
}

// IsAlreadyExists reports whether err is an *AlreadyExistsError.
func IsAlreadyExists(err error) bool {
	var e *AlreadyExistsError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a *NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}
