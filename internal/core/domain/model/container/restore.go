package container

import (
	"log/slog"

	"cargo/internal/core/domain/model/kernel"
)

// Variant holds the attributes that only some kinds use. Fields that do not
// apply to the kind being restored are ignored.
type Variant struct {
	// Product and MinTemperature apply to refrigerated containers.
	Product        string
	MinTemperature float64
	// Hazardous applies to liquid containers.
	Hazardous bool
	// Pressure, in atmospheres, applies to gas containers.
	Pressure float64
}

// VariantOf returns the kind-specific attributes of c.
func VariantOf(c Container) Variant {
	switch c := c.(type) {
	case *Refrigerated:
		return Variant{Product: c.Product(), MinTemperature: c.MinTemperature()}
	case *Liquid:
		return Variant{Hazardous: c.Hazardous()}
	case *Gas:
		return Variant{Pressure: c.Pressure()}
	default:
		return Variant{}
	}
}

// Restore rebuilds a container from stored state. The constructor rules
// apply, and in addition currentLoad may not exceed the max load. owner is
// nil for a container ashore. logger receives hazard notifications of liquid
// and gas containers; nil means slog.Default().
//
// Unlike the Factory, Restore does not draw a serial number: the stored one
// is reused.
func Restore(
	kind Kind,
	serial kernel.SerialNumber,
	dims Dimensions,
	variant Variant,
	currentLoad kernel.Mass,
	owner *kernel.UUID,
	logger *slog.Logger,
) (Container, error) {
	switch kind {
	case KindRefrigerated:
		r, err := NewRefrigerated(serial, dims, variant.Product, variant.MinTemperature)
		if err != nil {
			return nil, err
		}
		if err = r.restoreState(currentLoad, owner); err != nil {
			return nil, err
		}
		return r, nil

	case KindLiquid:
		l, err := NewLiquid(serial, dims, variant.Hazardous, logger)
		if err != nil {
			return nil, err
		}
		if err = l.restoreState(currentLoad, owner); err != nil {
			return nil, err
		}
		return l, nil

	case KindGas:
		g, err := NewGas(serial, dims, variant.Pressure, logger)
		if err != nil {
			return nil, err
		}
		if err = g.restoreState(currentLoad, owner); err != nil {
			return nil, err
		}
		return g, nil

	default:
		return nil, kind.Validate()
	}
}
