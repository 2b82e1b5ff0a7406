package ship

import "fmt"

// Summary is a short description of a ship's state.
type Summary struct {
	Name           string
	ContainerCount int
	MaxSpeed       float64
}

// String renders e.g. "Kontenerowiec 1: 3 containers, max speed: 20 knots".
func (s Summary) String() string {
	return fmt.Sprintf("%s: %d containers, max speed: %g knots", s.Name, s.ContainerCount, s.MaxSpeed)
}
