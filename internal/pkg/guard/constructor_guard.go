// Package guard marks values that were built through their constructor so that
// zero values of commands, queries and value objects can be rejected.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be created by a constructor.
// The zero value reports the object as not constructed.
//
// Example:
//
//	type CreateClientCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c CreateClientCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard flagged as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
