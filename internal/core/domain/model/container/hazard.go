package container

import (
	"log/slog"

	"cargo/internal/core/domain/model/kernel"
)

// HazardNotifier is implemented by containers that carry dangerous goods.
// NotifyHazard only reports; it never fails and never changes state.
type HazardNotifier interface {
	NotifyHazard(message string)
}

// IsHazardous reports whether c can raise hazard notifications.
func IsHazardous(c Container) bool {
	_, ok := c.(HazardNotifier)
	return ok
}

// hazardLog writes hazard notifications as warning records.
type hazardLog struct {
	logger *slog.Logger
}

func newHazardLog(logger *slog.Logger) hazardLog {
	if logger == nil {
		logger = slog.Default()
	}
	return hazardLog{logger: logger}
}

func (h hazardLog) notify(serial kernel.SerialNumber, message string) {
	h.logger.Warn("hazard notification", "serial_number", serial.String(), "message", message)
}
