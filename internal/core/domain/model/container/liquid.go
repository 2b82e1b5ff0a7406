package container

import (
	"fmt"
	"log/slog"

	"cargo/internal/core/domain/model/kernel"
)

const (
	hazardousFillPercent = 50
	safeFillPercent      = 90
)

// Liquid is a container for liquids. It fills to 90% of its max load, or to
// 50% when its contents are hazardous. An attempt to go past that limit raises
// a hazard notification before the load is rejected.
type Liquid struct {
	base
	hazardLog

	hazardous bool
}

var (
	_ Container      = (*Liquid)(nil)
	_ HazardNotifier = (*Liquid)(nil)
)

// NewLiquid creates a liquid container. serial must carry the "L" tag.
// Hazard notifications go to logger, or to slog.Default() when it is nil.
func NewLiquid(serial kernel.SerialNumber, dims Dimensions, hazardous bool, logger *slog.Logger) (*Liquid, error) {
	b, err := newBase(KindLiquid, serial, dims)
	if err != nil {
		return nil, err
	}

	return &Liquid{
		base:      b,
		hazardLog: newHazardLog(logger),
		hazardous: hazardous,
	}, nil
}

// Hazardous reports whether the contents are dangerous.
func (l *Liquid) Hazardous() bool {
	return l.hazardous
}

// FillLimit is the load ceiling actually enforced for this container.
func (l *Liquid) FillLimit() kernel.Mass {
	if l.hazardous {
		return l.maxLoad.Percent(hazardousFillPercent)
	}
	return l.maxLoad.Percent(safeFillPercent)
}

// Load adds amount unless that would pass FillLimit, in which case a hazard
// notification is raised and an *OverfillError returned.
func (l *Liquid) Load(amount kernel.Mass) error {
	if err := l.checkAshore(); err != nil {
		return err
	}

	limit := l.FillLimit()
	if l.currentLoad.Add(amount).GreaterThan(limit) {
		l.NotifyHazard(fmt.Sprintf("overload attempt: %s on top of %s exceeds %s", amount, l.currentLoad, limit))
		return newOverfillError(l.serialNumber, amount, l.currentLoad, limit)
	}

	return l.base.Load(amount)
}

func (l *Liquid) NotifyHazard(message string) {
	l.notify(l.serialNumber, message)
}

func (l *Liquid) Validate() error {
	if l == nil {
		return ErrContainerIsNotConstructed
	}
	return l.validate()
}
