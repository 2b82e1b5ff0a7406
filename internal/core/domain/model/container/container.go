package container

import (
	"errors"
	"fmt"
	"math"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var (
	// ErrContainerIsNotConstructed is returned when using a container that was
	// not created through its constructor.
	ErrContainerIsNotConstructed = errors.New("container must be created via its constructor")

	// ErrContainerAlreadyAboard is returned when boarding a container that a
	// ship already carries.
	ErrContainerAlreadyAboard = errors.New("container is already aboard a ship")

	// ErrContainerIsAboard is returned when loading cargo into a container
	// that is aboard a ship.
	ErrContainerIsAboard = errors.New("cargo cannot be loaded while the container is aboard a ship")
)

// Container is the contract every container kind fulfils.
//
// Business rules:
//   - The serial number and dimensions never change after construction
//   - 0 <= CurrentLoad() <= MaxLoad() after every successful operation
//   - Load fails with an *OverfillError when the applicable limit would be exceeded
//   - Empty always succeeds
//   - A container is aboard at most one ship at a time
type Container interface {
	SerialNumber() kernel.SerialNumber
	Kind() Kind
	MaxLoad() kernel.Mass
	TareWeight() kernel.Mass
	Height() float64
	Depth() float64
	CurrentLoad() kernel.Mass
	// GrossWeight is the current load plus the tare weight.
	GrossWeight() kernel.Mass
	// Owner returns the ID of the ship carrying the container, if any.
	Owner() (kernel.UUID, bool)

	Load(amount kernel.Mass) error
	Empty()

	// Board records shipID as the owner. It fails with ErrContainerAlreadyAboard
	// if any ship already carries the container.
	Board(shipID kernel.UUID) error
	// Disembark clears the owner if it is shipID.
	Disembark(shipID kernel.UUID)

	Validate() error
	String() string
}

// Dimensions are the fixed physical attributes of a container.
type Dimensions struct {
	MaxLoad    kernel.Mass
	TareWeight kernel.Mass
	// Height in centimetres.
	Height float64
	// Depth in centimetres.
	Depth float64
}

// base implements the parts of Container shared by every kind.
type base struct {
	serialNumber kernel.SerialNumber
	kind         Kind
	maxLoad      kernel.Mass
	tareWeight   kernel.Mass
	height       float64
	depth        float64
	currentLoad  kernel.Mass
	owner        *kernel.UUID

	guard guard.ConstructorGuard
}

func newBase(kind Kind, serial kernel.SerialNumber, dims Dimensions) (base, error) {
	b := base{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setSerialNumber(serial),
		b.setMaxLoad(dims.MaxLoad),
		b.setTareWeight(dims.TareWeight),
		b.setHeight(dims.Height),
		b.setDepth(dims.Depth),
	); err != nil {
		return base{}, err
	}

	return b, nil
}

// SerialNumber returns the identity assigned at construction.
func (b *base) SerialNumber() kernel.SerialNumber {
	return b.serialNumber
}

// Kind returns the container variant.
func (b *base) Kind() Kind {
	return b.kind
}

// MaxLoad returns the hard load ceiling, excluding the tare weight.
func (b *base) MaxLoad() kernel.Mass {
	return b.maxLoad
}

// TareWeight returns the weight of the empty container.
func (b *base) TareWeight() kernel.Mass {
	return b.tareWeight
}

// Height returns the height in centimetres.
func (b *base) Height() float64 {
	return b.height
}

// Depth returns the depth in centimetres.
func (b *base) Depth() float64 {
	return b.depth
}

// CurrentLoad returns the weight of the cargo inside, excluding the tare weight.
func (b *base) CurrentLoad() kernel.Mass {
	return b.currentLoad
}

// GrossWeight returns the current load plus the tare weight. Ships count
// this figure against their weight limit.
func (b *base) GrossWeight() kernel.Mass {
	return b.currentLoad.Add(b.tareWeight)
}

// Owner returns the ID of the carrying ship. The second result is false
// while the container is ashore.
func (b *base) Owner() (kernel.UUID, bool) {
	if b.owner == nil {
		return kernel.UUID{}, false
	}
	return *b.owner, true
}

// Load adds amount to the current load.
//
// Returns:
//   - ErrContainerIsAboard if a ship carries the container
//   - *OverfillError if current load + amount would exceed the max load
func (b *base) Load(amount kernel.Mass) error {
	if err := b.checkAshore(); err != nil {
		return err
	}

	if b.currentLoad.Add(amount).GreaterThan(b.maxLoad) {
		return newOverfillError(b.serialNumber, amount, b.currentLoad, b.maxLoad)
	}

	b.currentLoad = b.currentLoad.Add(amount)
	return nil
}

// Empty discards the whole load.
func (b *base) Empty() {
	b.currentLoad = kernel.Mass{}
}

// Board records shipID as the carrying ship.
//
// Returns:
//   - an error if shipID is not a valid UUID
//   - ErrContainerAlreadyAboard if a ship already carries the container
func (b *base) Board(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}

	if b.owner != nil {
		return fmt.Errorf("%w: %s is carried by ship %s", ErrContainerAlreadyAboard, b.serialNumber, b.owner)
	}

	b.owner = &shipID
	return nil
}

// Disembark clears the owner if it is shipID. Any other ID is ignored, so a
// ship can never take a container off another ship.
func (b *base) Disembark(shipID kernel.UUID) {
	if b.owner != nil && b.owner.IsEqual(shipID) {
		b.owner = nil
	}
}

// String describes the container, e.g.
// "KON-G-1 - tare weight: 800 kg, cargo: 100 kg / 5000 kg".
func (b *base) String() string {
	return fmt.Sprintf("%s - tare weight: %s, cargo: %s / %s",
		b.serialNumber, b.tareWeight, b.currentLoad, b.maxLoad)
}

func (b *base) validate() error {
	return b.guard.Validate(ErrContainerIsNotConstructed)
}

// restoreState sets the load and owner of a container rebuilt from storage.
func (b *base) restoreState(currentLoad kernel.Mass, owner *kernel.UUID) error {
	if currentLoad.GreaterThan(b.maxLoad) {
		return errs.NewValueIsOutOfRangeError("current load", currentLoad.String(), "0 kg", b.maxLoad.String())
	}

	if owner != nil {
		if err := owner.Validate(); err != nil {
			return err
		}
		id := *owner
		b.owner = &id
	}

	b.currentLoad = currentLoad
	return nil
}

func (b *base) checkAshore() error {
	if b.owner != nil {
		return fmt.Errorf("%w: %s", ErrContainerIsAboard, b.serialNumber)
	}
	return nil
}

func (b *base) setSerialNumber(serial kernel.SerialNumber) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	if serial.Tag() != b.kind.Tag() {
		return errs.NewValueIsInvalidErrorWithCause(
			"serial number",
			fmt.Errorf("%s does not carry the %s tag %q", serial, b.kind, b.kind.Tag()),
		)
	}

	b.serialNumber = serial
	return nil
}

func (b *base) setMaxLoad(maxLoad kernel.Mass) error {
	if maxLoad.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("max load", fmt.Errorf("%s is not greater than 0 kg", maxLoad))
	}

	b.maxLoad = maxLoad
	return nil
}

func (b *base) setTareWeight(tareWeight kernel.Mass) error {
	if tareWeight.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("tare weight", fmt.Errorf("%s is not greater than 0 kg", tareWeight))
	}

	b.tareWeight = tareWeight
	return nil
}

func (b *base) setHeight(height float64) error {
	if err := positiveLength("height", height); err != nil {
		return err
	}

	b.height = height
	return nil
}

func (b *base) setDepth(depth float64) error {
	if err := positiveLength("depth", depth); err != nil {
		return err
	}

	b.depth = depth
	return nil
}

func positiveLength(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not greater than 0", value))
	}
	return nil
}
