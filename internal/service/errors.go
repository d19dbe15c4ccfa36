// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer.
package service

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest marks validation failures that should surface to clients
// as 400. Wrap it with context: fmt.Errorf("%w: reason", ErrInvalidRequest).
var ErrInvalidRequest = errors.New("invalid request")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
