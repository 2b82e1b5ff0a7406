package commands

import (
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

func requireShipID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func requireSerialNumber(name string, serial kernel.SerialNumber) error {
	if err := serial.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
