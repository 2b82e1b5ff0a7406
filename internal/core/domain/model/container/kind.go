package container

import (
	"fmt"
	"strings"

	"cargo/internal/pkg/errs"
)

// Kind tells the container variants apart. Its tag is part of every serial number.
type Kind int

const (
	// UnknownKind is the zero value and is invalid.
	UnknownKind Kind = iota
	KindRefrigerated
	KindLiquid
	KindGas
)

func getKindNames() map[Kind]string {
	return map[Kind]string{
		UnknownKind:      "unknown",
		KindRefrigerated: "refrigerated",
		KindLiquid:       "liquid",
		KindGas:          "gas",
	}
}

func getKindTags() map[Kind]string {
	//nolint:exhaustive // UnknownKind has no tag
	return map[Kind]string{
		KindRefrigerated: "C",
		KindLiquid:       "L",
		KindGas:          "G",
	}
}

// ParseKind accepts the lower-case names returned by String.
func ParseKind(s string) (Kind, error) {
	for kind, name := range getKindNames() {
		if kind != UnknownKind && name == strings.ToLower(strings.TrimSpace(s)) {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a container kind", s))
}

// Validate rejects UnknownKind and values outside the declared set.
func (k Kind) Validate() error {
	if _, ok := getKindTags()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid container kind", k))
	}
	return nil
}

// Tag returns the serial number tag: "C", "L" or "G".
func (k Kind) Tag() string {
	return getKindTags()[k]
}

func (k Kind) String() string {
	if name, ok := getKindNames()[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", k)
}
