// Package guard provides a defensive construction check for value objects,
// entities, commands, and queries. Embedding a ConstructorGuard lets a type
// detect whether it was created through its designated constructor or as a
// zero value, so validation can reject uninitialized instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is passed. Validation always fails with a meaningful message even if
// no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation; only NewConstructorGuard produces a passing guard.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
