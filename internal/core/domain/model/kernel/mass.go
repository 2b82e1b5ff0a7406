package kernel

import (
	"fmt"
	"math"

	"cargo/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Mass is a non-negative weight in kilograms. Arithmetic is decimal, so
// percentage limits and residues come out exact (5% of 2000 kg is 100 kg,
// not 100.00000000000001 kg).
//
// The zero value is 0 kg and is valid.
type Mass struct {
	kg decimal.Decimal
}

// NewMass returns a Mass of kg kilograms. Negative, NaN and infinite values
// are rejected.
//
// Example:
//
//	cargo, err := kernel.NewMass(1500)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cargo) // 1500 kg
func NewMass(kg float64) (Mass, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Mass{}, errs.NewValueIsInvalidErrorWithCause("mass", fmt.Errorf("%v is not a finite number", kg))
	}
	if kg < 0 {
		return Mass{}, errs.NewValueIsOutOfRangeError("mass", kg, 0, nil)
	}
	return Mass{kg: decimal.NewFromFloat(kg)}, nil
}

// MustNewMass is NewMass for values known to be valid. It panics otherwise.
func MustNewMass(kg float64) Mass {
	m, err := NewMass(kg)
	if err != nil {
		panic(err)
	}
	return m
}

// MassFromString parses a decimal string such as "2500.5".
func MassFromString(s string) (Mass, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Mass{}, errs.NewValueIsInvalidErrorWithCause("mass", err)
	}
	if d.IsNegative() {
		return Mass{}, errs.NewValueIsOutOfRangeError("mass", s, 0, nil)
	}
	return Mass{kg: d}, nil
}

// MassFromDecimal wraps an exact decimal value, e.g. one read from storage.
func MassFromDecimal(kg decimal.Decimal) (Mass, error) {
	if kg.IsNegative() {
		return Mass{}, errs.NewValueIsOutOfRangeError("mass", kg.String(), 0, nil)
	}
	return Mass{kg: kg}, nil
}

// Add returns m + other.
func (m Mass) Add(other Mass) Mass {
	return Mass{kg: m.kg.Add(other.kg)}
}

// Sub returns m - other, floored at zero.
func (m Mass) Sub(other Mass) Mass {
	diff := m.kg.Sub(other.kg)
	if diff.IsNegative() {
		return Mass{}
	}
	return Mass{kg: diff}
}

// Percent returns percent% of m.
func (m Mass) Percent(percent int64) Mass {
	return Mass{kg: m.kg.Mul(decimal.NewFromInt(percent)).Shift(-2)}
}

// GreaterThan reports whether m > other.
func (m Mass) GreaterThan(other Mass) bool {
	return m.kg.GreaterThan(other.kg)
}

// Equal reports whether both masses weigh the same, regardless of scale.
func (m Mass) Equal(other Mass) bool {
	return m.kg.Equal(other.kg)
}

// IsZero reports whether m is 0 kg.
func (m Mass) IsZero() bool {
	return m.kg.IsZero()
}

// Decimal exposes the exact value, e.g. for storage.
func (m Mass) Decimal() decimal.Decimal {
	return m.kg
}

// String renders the mass with its unit, e.g. "3600 kg".
func (m Mass) String() string {
	return m.kg.String() + " kg"
}
