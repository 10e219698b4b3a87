package repository

import (
	"errors"
	"fmt"
)

// ErrUserNotFound is returned by Subscribe when the user id does not resolve
// to a row. It is deliberately distinct from an invalid plan name: a missing
// user is a not-found condition, a bad plan name is a validation failure.
var ErrUserNotFound = errors.New("usuario no encontrado")

// InvalidPlanError is returned by Subscribe when the plan name does not match
// any stored plan.
type InvalidPlanError struct {
	Plan string
}

func (e *InvalidPlanError) Error() string {
	return fmt.Sprintf("Plan '%s' no válido.", e.Plan)
}
