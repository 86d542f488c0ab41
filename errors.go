package ui

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout passes.
var (
	// ErrMalformedConstraints is returned for constraints with Min > Max or
	// invalid bounds.
	ErrMalformedConstraints = errors.New("ui: malformed constraints")

	// ErrInsufficientSpace is returned when a Flex cannot honor the minimum
	// extents its flexible children declare.
	ErrInsufficientSpace = errors.New("ui: insufficient space")

	// ErrStyleNotFound is returned when a text style cannot be resolved to a
	// font, or a style handle was never computed.
	ErrStyleNotFound = errors.New("ui: text style not found")

	// ErrNilWidget is returned when a nil widget is laid out.
	ErrNilWidget = errors.New("ui: nil widget")

	// ErrNilContext is returned when a pass is run without a Context.
	ErrNilContext = errors.New("ui: nil context")

	// ErrLayoutMismatch is returned when Paint receives a Layout produced for
	// a different widget kind.
	ErrLayoutMismatch = errors.New("ui: layout does not belong to widget")
)

// ConstraintsError describes malformed constraints.
type ConstraintsError struct {
	Constraints BoxConstraints
	Axis        Axis
	Reason      string
}

func (e *ConstraintsError) Error() string {
	return fmt.Sprintf("ui: malformed constraints %s on %s axis: %s", e.Constraints, e.Axis, e.Reason)
}

// Unwrap returns ErrMalformedConstraints.
func (e *ConstraintsError) Unwrap() error {
	return ErrMalformedConstraints
}

// InsufficientSpaceError reports a Flex whose fixed children and flexible
// minimums leave no main-axis space for its flexible children. Required is
// the space they claim, Available the main-axis maximum.
type InsufficientSpaceError struct {
	Axis      Axis
	Required  float32
	Available float32
}

func (e *InsufficientSpaceError) Error() string {
	return fmt.Sprintf("ui: insufficient space on %s axis: fixed children and minimums claim %g of %g", e.Axis, e.Required, e.Available)
}

// Unwrap returns ErrInsufficientSpace.
func (e *InsufficientSpaceError) Unwrap() error {
	return ErrInsufficientSpace
}

// StyleNotFoundError reports a text style whose font could not be loaded or
// rasterized.
type StyleNotFoundError struct {
	Family string
	Handle StyleHandle
	Err    error
}

func (e *StyleNotFoundError) Error() string {
	if e.Family == "" {
		return fmt.Sprintf("ui: text style %s not computed", e.Handle)
	}
	if e.Err == nil {
		return fmt.Sprintf("ui: text style %q not found", e.Family)
	}
	return fmt.Sprintf("ui: text style %q: %v", e.Family, e.Err)
}

// Unwrap returns ErrStyleNotFound and the underlying cause.
func (e *StyleNotFoundError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrStyleNotFound}
	}
	return []error{ErrStyleNotFound, e.Err}
}
