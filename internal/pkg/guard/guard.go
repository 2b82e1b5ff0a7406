// Package guard protects domain types against use of their zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller does not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embed it in a
// struct, set it with NewConstructorGuard inside the constructor and check it
// from the type's Validate method:
//
//	type Berth struct {
//	    number int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewBerth(number int) Berth {
//	    return Berth{number: number, guard: guard.NewConstructorGuard()}
//	}
//
//	func (b Berth) Validate() error {
//	    return b.guard.Validate(ErrBerthIsNotConstructed)
//	}
//
// A zero-value Berth fails Validate, a constructed one passes.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
