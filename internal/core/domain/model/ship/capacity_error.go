package ship

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded matches every *CapacityExceededError.
var ErrCapacityExceeded = errors.New("ship capacity exceeded")

// Resource names the capacity limit that was hit.
type Resource string

const (
	ResourceWeight     Resource = "weight"
	ResourceContainers Resource = "containers"
)

// CapacityExceededError is returned when loading a container would take the
// ship past its maximum total weight or its maximum number of containers.
type CapacityExceededError struct {
	ShipName  string
	Resource  Resource
	Requested any
	Limit     any
}

func newCapacityExceededError(shipName string, resource Resource, requested, limit any) *CapacityExceededError {
	return &CapacityExceededError{
		ShipName:  shipName,
		Resource:  resource,
		Requested: requested,
		Limit:     limit,
	}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: %s would carry %v of %s, limit is %v",
		ErrCapacityExceeded, e.ShipName, e.Requested, e.Resource, e.Limit)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}
