package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrTransferContainerCommandIsNotConstructed = errors.New(
	"TransferContainerCommand must be created via NewTransferContainerCommand constructor",
)

// TransferContainerCommand moves a container from one ship to another.
type TransferContainerCommand struct { //nolint:recvcheck //using for validation
	sourceID      kernel.UUID
	destinationID kernel.UUID
	serialNumber  kernel.SerialNumber

	guard guard.ConstructorGuard
}

func NewTransferContainerCommand(
	sourceID kernel.UUID,
	destinationID kernel.UUID,
	serialNumber kernel.SerialNumber,
) (TransferContainerCommand, error) {
	if err := errors.Join(
		requireShipID("source ship id", sourceID),
		requireShipID("destination ship id", destinationID),
		requireSerialNumber("serial number", serialNumber),
	); err != nil {
		return TransferContainerCommand{}, err
	}

	return TransferContainerCommand{
		sourceID:      sourceID,
		destinationID: destinationID,
		serialNumber:  serialNumber,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c TransferContainerCommand) Validate() error {
	return c.guard.Validate(ErrTransferContainerCommandIsNotConstructed)
}

func (c TransferContainerCommand) SourceID() kernel.UUID {
	return c.sourceID
}

func (c TransferContainerCommand) DestinationID() kernel.UUID {
	return c.destinationID
}

func (c TransferContainerCommand) SerialNumber() kernel.SerialNumber {
	return c.serialNumber
}
