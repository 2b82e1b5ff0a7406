package container

import (
	"errors"
	"fmt"
	"math"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

// Refrigerated is a container for one chilled product kept at or below a
// temperature threshold.
//
// Business rules:
//   - Only the product the container was built for can be loaded
//   - The required temperature must not be warmer than the threshold
//   - Product and temperature are checked before capacity
type Refrigerated struct {
	base

	product        string
	minTemperature float64
}

var _ Container = (*Refrigerated)(nil)

// NewRefrigerated creates a refrigerated container. serial must carry the "C" tag.
//
// Example:
//
//	dims := container.Dimensions{MaxLoad: kernel.MustNewMass(3000), TareWeight: kernel.MustNewMass(600), Height: 250, Depth: 600}
//	c, err := container.NewRefrigerated(serial, dims, "mleko", 2)
//	if err != nil {
//	    return err
//	}
//	err = c.LoadProduct("mleko", kernel.MustNewMass(1500), 1)
func NewRefrigerated(serial kernel.SerialNumber, dims Dimensions, product string, minTemperature float64) (*Refrigerated, error) {
	b, err := newBase(KindRefrigerated, serial, dims)

	r := &Refrigerated{base: b}
	if err = errors.Join(err, r.setProduct(product), r.setMinTemperature(minTemperature)); err != nil {
		return nil, err
	}

	return r, nil
}

// Product returns the only product the container accepts.
func (r *Refrigerated) Product() string {
	return r.product
}

// MinTemperature returns the threshold in degrees Celsius.
func (r *Refrigerated) MinTemperature() float64 {
	return r.minTemperature
}

// LoadProduct loads amount of product that has to be kept at requiredTemperature.
//
// Returns:
//   - *errs.ValueIsInvalidError for a different product or a temperature warmer
//     than the threshold (both are reported when both are wrong)
//   - the errors of Load otherwise
func (r *Refrigerated) LoadProduct(product string, amount kernel.Mass, requiredTemperature float64) error {
	var productErr, temperatureErr error

	if product != r.product {
		productErr = errs.NewValueIsInvalidErrorWithCause(
			"product",
			fmt.Errorf("%q does not match %q carried by %s", product, r.product, r.serialNumber),
		)
	}

	if requiredTemperature > r.minTemperature {
		temperatureErr = errs.NewValueIsInvalidErrorWithCause(
			"temperature",
			fmt.Errorf("%g°C is warmer than the %g°C threshold of %s", requiredTemperature, r.minTemperature, r.serialNumber),
		)
	}

	if err := errors.Join(productErr, temperatureErr); err != nil {
		return err
	}

	return r.Load(amount)
}

func (r *Refrigerated) Validate() error {
	if r == nil {
		return ErrContainerIsNotConstructed
	}
	return r.validate()
}

func (r *Refrigerated) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}

	r.product = product
	return nil
}

func (r *Refrigerated) setMinTemperature(minTemperature float64) error {
	if math.IsNaN(minTemperature) || math.IsInf(minTemperature, 0) {
		return errs.NewValueIsInvalidErrorWithCause("min temperature", fmt.Errorf("%v is not a finite number", minTemperature))
	}

	r.minTemperature = minTemperature
	return nil
}
