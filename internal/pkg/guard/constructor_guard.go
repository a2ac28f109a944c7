// Package guard holds the constructor guard embedded by value objects, entities and
// commands so that zero values built with a struct literal fail validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value went through its constructor.
//
// Usage:
//
//	type OrderNote struct {
//	    text  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewOrderNote(text string) (OrderNote, error) {
//	    if utf8.RuneCountInString(text) > 100 {
//	        return OrderNote{}, errors.New("note is too long")
//	    }
//	    return OrderNote{text: text, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (n OrderNote) Validate() error {
//	    return n.guard.Validate(ErrOrderNoteIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
