package container

import (
	"log/slog"

	"cargo/internal/core/domain/model/kernel"
)

// Factory builds containers and numbers them from one Sequence, so serial
// numbers are unique across every kind it builds. A failed construction still
// consumes a number.
type Factory struct {
	sequence *kernel.Sequence
	logger   *slog.Logger
}

// NewFactory returns a factory drawing from sequence. logger receives the hazard
// notifications of the containers it builds; nil means slog.Default().
func NewFactory(sequence *kernel.Sequence, logger *slog.Logger) *Factory {
	if sequence == nil {
		sequence = kernel.NewSequence()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{
		sequence: sequence,
		logger:   logger.With("component", "container"),
	}
}

func (f *Factory) NewRefrigerated(dims Dimensions, product string, minTemperature float64) (*Refrigerated, error) {
	serial, err := f.nextSerialNumber(KindRefrigerated)
	if err != nil {
		return nil, err
	}
	return NewRefrigerated(serial, dims, product, minTemperature)
}

func (f *Factory) NewLiquid(dims Dimensions, hazardous bool) (*Liquid, error) {
	serial, err := f.nextSerialNumber(KindLiquid)
	if err != nil {
		return nil, err
	}
	return NewLiquid(serial, dims, hazardous, f.logger)
}

func (f *Factory) NewGas(dims Dimensions, pressure float64) (*Gas, error) {
	serial, err := f.nextSerialNumber(KindGas)
	if err != nil {
		return nil, err
	}
	return NewGas(serial, dims, pressure, f.logger)
}

func (f *Factory) nextSerialNumber(kind Kind) (kernel.SerialNumber, error) {
	return kernel.NewSerialNumber(kind.Tag(), f.sequence.Next())
}
