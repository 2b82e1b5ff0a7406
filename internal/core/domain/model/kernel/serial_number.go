package kernel

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"cargo/internal/pkg/errs"
)

const serialNumberPrefix = "KON"

// ErrSerialNumberIsNotConstructed is returned when validating a zero-value SerialNumber.
var ErrSerialNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"SerialNumber must be created via NewSerialNumber or ParseSerialNumber",
)

// SerialNumber identifies a container for its whole life. It has the form
// KON-<tag>-<n>, where tag names the container kind and n comes from a Sequence.
type SerialNumber struct {
	tag    string
	number uint64
}

// NewSerialNumber builds a serial number from a kind tag and a sequence value.
func NewSerialNumber(tag string, number uint64) (SerialNumber, error) {
	if tag == "" || strings.Contains(tag, "-") {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause("tag", fmt.Errorf("%q is not a valid kind tag", tag))
	}
	if number == 0 {
		return SerialNumber{}, errs.NewValueIsOutOfRangeError("number", number, 1, nil)
	}
	return SerialNumber{tag: tag, number: number}, nil
}

// ParseSerialNumber parses the textual form produced by String. Only the
// canonical form is accepted: "KON-C-01" is rejected.
func ParseSerialNumber(s string) (SerialNumber, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] != serialNumberPrefix {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"serial number",
			fmt.Errorf("%q does not match %s-<tag>-<n>", s, serialNumberPrefix),
		)
	}

	number, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause("serial number", err)
	}

	serial, err := NewSerialNumber(parts[1], number)
	if err != nil {
		return SerialNumber{}, err
	}
	if serial.String() != s {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"serial number",
			fmt.Errorf("%q is not in canonical form %q", s, serial),
		)
	}

	return serial, nil
}

// Tag returns the kind tag, e.g. "G".
func (s SerialNumber) Tag() string {
	return s.tag
}

// Number returns the sequence value the serial was built from.
func (s SerialNumber) Number() uint64 {
	return s.number
}

func (s SerialNumber) String() string {
	if s.number == 0 {
		return ""
	}
	return fmt.Sprintf("%s-%s-%d", serialNumberPrefix, s.tag, s.number)
}

func (s SerialNumber) IsEqual(other SerialNumber) bool {
	return s == other
}

func (s SerialNumber) Validate() error {
	if s.tag == "" || s.number == 0 {
		return ErrSerialNumberIsNotConstructed
	}
	return nil
}

// Sequence hands out serial numbers 1, 2, 3, ... It is shared by every
// container kind built from the same factory and is never reset.
type Sequence struct {
	last atomic.Uint64
}

// NewSequence returns a sequence whose first value is 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next value.
func (s *Sequence) Next() uint64 {
	return s.last.Add(1)
}
