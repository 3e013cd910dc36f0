package runtime

import "fmt"

// TypeError reports a receiver or argument that does not satisfy a built-in's
// contract. It always aborts the current operation; there is no recovery path
// inside the built-in layer.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string {
	return "TypeError: " + e.Message
}

// NewTypeError builds a TypeError with a formatted message.
func NewTypeError(format string, args ...any) *TypeError {
	return &TypeError{Message: fmt.Sprintf(format, args...)}
}

// NotImplementedError marks functionality the runtime deliberately does not
// provide yet, as opposed to invalid input.
type NotImplementedError struct {
	Feature string
}

func (e *NotImplementedError) Error() string {
	return "InternalError: " + e.Feature + " is not yet implemented"
}

// NewNotImplementedError builds a NotImplementedError for the named feature.
func NewNotImplementedError(feature string) *NotImplementedError {
	return &NotImplementedError{Feature: feature}
}
