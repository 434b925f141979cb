package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)

// internalError tags cause with the ErrInternal sentinel. errors.Is still
// matches, and the cause survives into the middleware's failure log.
func internalError(cause error) error {
	if cause == nil {
		return ErrInternal
	}
	return fmt.Errorf("%w: %v", ErrInternal, cause)
}
