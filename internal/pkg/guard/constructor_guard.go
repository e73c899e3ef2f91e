// Package guard provides a defensive construction check for domain objects.
// Embedding a ConstructorGuard in a struct makes it possible to detect
// whether the struct was created through its constructor function or left
// as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply its own validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value of ConstructorGuard fails validation, so any struct that
// embeds one and is created without its constructor is detectable.
//
// Example usage:
//
//	var ErrCommandIsNotConstructed = errors.New("command must be created via its constructor")
//
//	type Command struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCommand(value string) Command {
//	    return Command{value: value, guard: guard.NewConstructorGuard()}
//	}
//
//	func (c Command) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the embedding object as
// constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object went through its constructor.
// Returns validationError for zero-value guards, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
