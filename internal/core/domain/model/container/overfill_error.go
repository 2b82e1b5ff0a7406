package container

import (
	"errors"
	"fmt"

	"cargo/internal/core/domain/model/kernel"
)

// ErrOverfill matches every OverfillError.
var ErrOverfill = errors.New("container overfill")

// OverfillError is returned when a load would take a container past the limit
// that applies to it: the max load, or a variant's lower fill limit.
type OverfillError struct {
	SerialNumber kernel.SerialNumber
	Requested    kernel.Mass
	Current      kernel.Mass
	Limit        kernel.Mass
}

func newOverfillError(serial kernel.SerialNumber, requested, current, limit kernel.Mass) *OverfillError {
	return &OverfillError{SerialNumber: serial, Requested: requested, Current: current, Limit: limit}
}

func (e *OverfillError) Error() string {
	return fmt.Sprintf("%s: %s cannot take %s on top of %s, limit is %s",
		ErrOverfill, e.SerialNumber, e.Requested, e.Current, e.Limit)
}

func (e *OverfillError) Unwrap() error {
	return ErrOverfill
}
