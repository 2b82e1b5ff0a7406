package ship

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

// ErrShipIsNotConstructed is returned when using a ship that was not created
// via NewShip.
var ErrShipIsNotConstructed = errors.New("ship must be created via NewShip constructor")

// Ship is the aggregate root that carries containers.
//
// Business rules:
//   - Must be constructed through NewShip
//   - Name is required; max containers, max weight and max speed are positive
//     and never change
//   - The sum of the gross weights of the carried containers never exceeds
//     MaxWeight, and their number never exceeds MaxContainers
//   - Containers keep the order they were loaded in
//   - A container is carried by at most one ship
//
// Example usage:
//
//	s, err := ship.NewShip(kernel.NewUUID(), "Kontenerowiec 1", 10, kernel.MustNewMass(15000), 20)
//	if err != nil {
//	    return err
//	}
//
//	if err := s.LoadContainer(c); err != nil {
//	    if errors.Is(err, ship.ErrCapacityExceeded) {
//	        // too heavy or no free slot
//	    }
//	    return err
//	}
type Ship struct {
	id            kernel.UUID
	name          string
	maxContainers int
	maxWeight     kernel.Mass
	// maxSpeed in knots
	maxSpeed float64

	containers []container.Container

	guard guard.ConstructorGuard
}

// NewShip creates an empty ship. All argument errors are reported together.
func NewShip(id kernel.UUID, name string, maxContainers int, maxWeight kernel.Mass, maxSpeed float64) (*Ship, error) {
	s := &Ship{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setMaxContainers(maxContainers),
		s.setMaxWeight(maxWeight),
		s.setMaxSpeed(maxSpeed),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShip rebuilds a ship from stored state. The NewShip rules apply,
// containers are taken in loading order, and every container must already
// name id as its owner. The capacity limits are checked as for LoadContainer.
func RestoreShip(
	id kernel.UUID,
	name string,
	maxContainers int,
	maxWeight kernel.Mass,
	maxSpeed float64,
	containers []container.Container,
) (*Ship, error) {
	s, err := NewShip(id, name, maxContainers, maxWeight, maxSpeed)
	if err != nil {
		return nil, err
	}

	if len(containers) > s.maxContainers {
		return nil, newCapacityExceededError(s.name, ResourceContainers, len(containers), s.maxContainers)
	}

	var total kernel.Mass
	for _, c := range containers {
		if c == nil {
			return nil, errs.NewValueIsRequiredError("container")
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if owner, aboard := c.Owner(); !aboard || !owner.IsEqual(s.id) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"containers",
				fmt.Errorf("%s is not owned by ship %s", c.SerialNumber(), s.id),
			)
		}
		total = total.Add(c.GrossWeight())
	}

	if total.GreaterThan(s.maxWeight) {
		return nil, newCapacityExceededError(s.name, ResourceWeight, total, s.maxWeight)
	}

	s.containers = slices.Clone(containers)
	return s, nil
}

// ID returns the identity of the ship.
func (s *Ship) ID() kernel.UUID {
	return s.id
}

// Name returns the display name.
func (s *Ship) Name() string {
	return s.name
}

// MaxContainers returns how many containers the ship can carry at once.
func (s *Ship) MaxContainers() int {
	return s.maxContainers
}

// MaxWeight returns the limit for the summed gross weight of the carried
// containers.
func (s *Ship) MaxWeight() kernel.Mass {
	return s.maxWeight
}

// MaxSpeed returns the top speed in knots.
func (s *Ship) MaxSpeed() float64 {
	return s.maxSpeed
}

// IsEqual compares ships by identity.
func (s *Ship) IsEqual(other *Ship) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// Containers returns the carried containers in loading order. The slice is a
// copy; the containers are not.
func (s *Ship) Containers() []container.Container {
	return slices.Clone(s.containers)
}

// Container returns the carried container with the given serial number.
func (s *Ship) Container(serial kernel.SerialNumber) (container.Container, bool) {
	if i := s.indexOf(serial); i >= 0 {
		return s.containers[i], true
	}
	return nil, false
}

// TotalWeight is the sum of the gross weights of the carried containers.
func (s *Ship) TotalWeight() kernel.Mass {
	var total kernel.Mass
	for _, c := range s.containers {
		total = total.Add(c.GrossWeight())
	}
	return total
}

// RemainingWeight is how much gross weight the ship can still take.
func (s *Ship) RemainingWeight() kernel.Mass {
	return s.maxWeight.Sub(s.TotalWeight())
}

// LoadContainer puts c on board after the containers already carried.
//
// Returns:
//   - *errs.ValueIsRequiredError if c is nil
//   - container.ErrContainerAlreadyAboard if c is on this or another ship
//   - *CapacityExceededError if the ship would carry too many containers or
//     too much weight
//
// The ship and c are unchanged on error.
func (s *Ship) LoadContainer(c container.Container) error {
	if c == nil {
		return errs.NewValueIsRequiredError("container")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if owner, aboard := c.Owner(); aboard {
		return fmt.Errorf("%w: %s is carried by ship %s", container.ErrContainerAlreadyAboard, c.SerialNumber(), owner)
	}

	if len(s.containers) >= s.maxContainers {
		return newCapacityExceededError(s.name, ResourceContainers, len(s.containers)+1, s.maxContainers)
	}

	total := s.TotalWeight().Add(c.GrossWeight())
	if total.GreaterThan(s.maxWeight) {
		return newCapacityExceededError(s.name, ResourceWeight, total, s.maxWeight)
	}

	if err := c.Board(s.id); err != nil {
		return err
	}

	s.containers = append(s.containers, c)
	return nil
}

// RemoveContainer takes the container with the given serial number off the
// ship. Nothing happens if the ship does not carry it.
func (s *Ship) RemoveContainer(serial kernel.SerialNumber) {
	s.detach(serial)
}

// ReplaceContainer removes the container with the given serial number and
// loads next in its place. Capacity is checked after the removal. When serial
// is not carried, next is simply loaded.
//
// If next cannot be loaded, the removed container goes back to its original
// position and the load error is returned.
func (s *Ship) ReplaceContainer(serial kernel.SerialNumber, next container.Container) error {
	removed, at, found := s.detach(serial)

	if err := s.LoadContainer(next); err != nil {
		if found {
			s.restore(removed, at)
		}
		return err
	}

	return nil
}

// TransferContainer moves the container with the given serial number to
// destination. Nothing happens if the ship does not carry it, or if
// destination is this ship.
//
// If destination rejects the container, it stays on this ship at its
// original position and the error is returned.
func (s *Ship) TransferContainer(destination *Ship, serial kernel.SerialNumber) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	if s.IsEqual(destination) {
		return nil
	}

	moved, at, found := s.detach(serial)
	if !found {
		return nil
	}

	if err := destination.LoadContainer(moved); err != nil {
		s.restore(moved, at)
		return fmt.Errorf("transfer %s to %s: %w", serial, destination.name, err)
	}

	return nil
}

// EmptyContainer empties the carried container with the given serial number.
// Nothing happens if the ship does not carry it.
func (s *Ship) EmptyContainer(serial kernel.SerialNumber) {
	if c, ok := s.Container(serial); ok {
		c.Empty()
	}
}

// Summary describes the number of carried containers and the max speed.
func (s *Ship) Summary() Summary {
	return Summary{
		Name:           s.name,
		ContainerCount: len(s.containers),
		MaxSpeed:       s.maxSpeed,
	}
}

// Validate checks that the ship was created via NewShip.
func (s *Ship) Validate() error {
	if s == nil {
		return ErrShipIsNotConstructed
	}
	return s.guard.Validate(ErrShipIsNotConstructed)
}

func (s *Ship) indexOf(serial kernel.SerialNumber) int {
	return slices.IndexFunc(s.containers, func(c container.Container) bool {
		return c.SerialNumber().IsEqual(serial)
	})
}

func (s *Ship) detach(serial kernel.SerialNumber) (container.Container, int, bool) {
	i := s.indexOf(serial)
	if i < 0 {
		return nil, -1, false
	}

	c := s.containers[i]
	s.containers = slices.Delete(s.containers, i, i+1)
	c.Disembark(s.id)

	return c, i, true
}

// restore undoes detach. The container was carried by this ship a moment ago,
// so boarding it again cannot fail.
func (s *Ship) restore(c container.Container, at int) {
	_ = c.Board(s.id)
	s.containers = slices.Insert(s.containers, at, c)
}

func (s *Ship) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *Ship) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	s.name = name
	return nil
}

func (s *Ship) setMaxContainers(maxContainers int) error {
	if maxContainers <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"max containers",
			fmt.Errorf("%d is not greater than 0", maxContainers),
		)
	}

	s.maxContainers = maxContainers
	return nil
}

func (s *Ship) setMaxWeight(maxWeight kernel.Mass) error {
	if maxWeight.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause(
			"max weight",
			fmt.Errorf("%s is not greater than 0 kg", maxWeight),
		)
	}

	s.maxWeight = maxWeight
	return nil
}

func (s *Ship) setMaxSpeed(maxSpeed float64) error {
	if math.IsNaN(maxSpeed) || math.IsInf(maxSpeed, 0) || maxSpeed <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"max speed",
			fmt.Errorf("%v is not greater than 0", maxSpeed),
		)
	}

	s.maxSpeed = maxSpeed
	return nil
}
