package atlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for atlas package.
var (
	// ErrUnknownHandle is returned when a handle was never issued by the atlas
	// or refers to a rectangle that has since been removed.
	ErrUnknownHandle = errors.New("atlas: unknown or stale rect handle")

	// ErrNotPacked is returned when geometry is read from an atlas that has
	// rectangles added or removed since the last Pack.
	ErrNotPacked = errors.New("atlas: atlas must be packed first")

	// ErrImageSize is returned when an image's data length does not match its
	// dimensions, or its dimensions do not match the rectangle it is stitched into.
	ErrImageSize = errors.New("atlas: image size mismatch")

	// ErrFormatMismatch is returned when an image's pixel format differs from
	// the atlas pixel format.
	ErrFormatMismatch = errors.New("atlas: pixel format mismatch")

	// ErrOutOfBounds is returned when a blit would write outside the destination.
	ErrOutOfBounds = errors.New("atlas: blit out of bounds")

	// ErrNilUploader is returned by Sheet.Sync when no uploader is given.
	ErrNilUploader = errors.New("atlas: nil uploader")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}

// HandleError reports which handle failed a lookup.
type HandleError struct {
	Handle RectHandle
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("atlas: unknown or stale rect handle %s", e.Handle)
}

// Unwrap returns ErrUnknownHandle.
func (e *HandleError) Unwrap() error {
	return ErrUnknownHandle
}
