package container

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

const residuePercent = 5

// Gas is a pressurised container. Emptying it leaves 5% of the load behind.
type Gas struct {
	base
	hazardLog

	pressure float64
}

var (
	_ Container      = (*Gas)(nil)
	_ HazardNotifier = (*Gas)(nil)
)

// NewGas creates a gas container. serial must carry the "G" tag and pressure,
// in atmospheres, must be positive.
func NewGas(serial kernel.SerialNumber, dims Dimensions, pressure float64, logger *slog.Logger) (*Gas, error) {
	b, err := newBase(KindGas, serial, dims)

	g := &Gas{base: b, hazardLog: newHazardLog(logger)}
	if err = errors.Join(err, g.setPressure(pressure)); err != nil {
		return nil, err
	}

	return g, nil
}

// Pressure returns the pressure in atmospheres.
func (g *Gas) Pressure() float64 {
	return g.pressure
}

// Empty keeps 5% of the current load as residue.
func (g *Gas) Empty() {
	g.currentLoad = g.currentLoad.Percent(residuePercent)
}

func (g *Gas) NotifyHazard(message string) {
	g.notify(g.serialNumber, message)
}

func (g *Gas) Validate() error {
	if g == nil {
		return ErrContainerIsNotConstructed
	}
	return g.validate()
}

func (g *Gas) setPressure(pressure float64) error {
	if math.IsNaN(pressure) || math.IsInf(pressure, 0) || pressure <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("pressure", fmt.Errorf("%v is not greater than 0", pressure))
	}

	g.pressure = pressure
	return nil
}
