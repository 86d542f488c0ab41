package ui

import (
	"fmt"
	"math"
)

// Inf is the unbounded extent. A constraint maximum of Inf means "no limit";
// a Container width of Inf means "inherit from child or constraints".
var Inf = float32(math.Inf(1))

// IsInf reports whether v is unbounded.
func IsInf(v float32) bool {
	return math.IsInf(float64(v), 1)
}

func isFinite(v float32) bool {
	return !math.IsInf(float64(v), 0) && !math.IsNaN(float64(v))
}

// Axis is the direction a Flex lays its children out along.
type Axis uint8

const (
	// Horizontal lays children out left to right.
	Horizontal Axis = iota
	// Vertical lays children out top to bottom.
	Vertical
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// String returns the string representation of the axis.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return fmt.Sprintf("Axis(%d)", a)
	}
}

// Size is a width and height. Either may be Inf.
type Size struct {
	Width  float32
	Height float32
}

// Constrain clamps each dimension independently into [c.Min, c.Max].
func (s Size) Constrain(c BoxConstraints) Size {
	return Size{
		Width:  clamp(s.Width, c.Min.Width, c.Max.Width),
		Height: clamp(s.Height, c.Min.Height, c.Max.Height),
	}
}

// OnAxis returns the extent along axis.
func (s Size) OnAxis(axis Axis) float32 {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// SetOnAxis returns s with the extent along axis replaced by v.
func (s Size) SetOnAxis(axis Axis, v float32) Size {
	if axis == Horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// SizeOnAxis builds a Size from main and cross extents relative to axis.
func SizeOnAxis(axis Axis, main, cross float32) Size {
	if axis == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// String returns the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BoxConstraints bounds the size a widget may take.
// Valid constraints satisfy Min <= Max component-wise.
type BoxConstraints struct {
	Min Size
	Max Size
}

// Tight returns constraints that only admit size.
func Tight(size Size) BoxConstraints {
	return BoxConstraints{Min: size, Max: size}
}

// Loose returns constraints from zero up to size.
func Loose(size Size) BoxConstraints {
	return BoxConstraints{Max: size}
}

// Unbounded returns constraints admitting any size.
func Unbounded() BoxConstraints {
	return BoxConstraints{Max: Size{Width: Inf, Height: Inf}}
}

// MinOnAxis returns the minimum extent along axis.
func (c BoxConstraints) MinOnAxis(axis Axis) float32 {
	return c.Min.OnAxis(axis)
}

// MaxOnAxis returns the maximum extent along axis.
func (c BoxConstraints) MaxOnAxis(axis Axis) float32 {
	return c.Max.OnAxis(axis)
}

// BoundMax reports whether the maximum along axis is finite.
func (c BoxConstraints) BoundMax(axis Axis) bool {
	return isFinite(c.MaxOnAxis(axis))
}

// BoundMin reports whether the minimum along axis is positive.
func (c BoxConstraints) BoundMin(axis Axis) bool {
	return c.MinOnAxis(axis) > 0
}

// IsTight reports whether Min equals Max.
func (c BoxConstraints) IsTight() bool {
	return c.Min == c.Max
}

// LoosenOnAxis returns c with the minimum along axis set to zero.
func (c BoxConstraints) LoosenOnAxis(axis Axis) BoxConstraints {
	c.Min = c.Min.SetOnAxis(axis, 0)
	return c
}

// Contains reports whether s lies inside c.
func (c BoxConstraints) Contains(s Size) bool {
	return s.Width >= c.Min.Width && s.Width <= c.Max.Width &&
		s.Height >= c.Min.Height && s.Height <= c.Max.Height
}

// Validate reports constraints with a negative or NaN bound, an infinite
// minimum, or Min > Max on either axis.
func (c BoxConstraints) Validate() error {
	for _, axis := range []Axis{Horizontal, Vertical} {
		lo, hi := c.MinOnAxis(axis), c.MaxOnAxis(axis)
		switch {
		case math.IsNaN(float64(lo)) || math.IsNaN(float64(hi)):
			return &ConstraintsError{Constraints: c, Axis: axis, Reason: "NaN bound"}
		case lo < 0:
			return &ConstraintsError{Constraints: c, Axis: axis, Reason: "negative minimum"}
		case IsInf(lo):
			return &ConstraintsError{Constraints: c, Axis: axis, Reason: "infinite minimum"}
		case lo > hi:
			return &ConstraintsError{Constraints: c, Axis: axis, Reason: "minimum exceeds maximum"}
		}
	}
	return nil
}

// String returns the constraints as "[min..max]".
func (c BoxConstraints) String() string {
	return fmt.Sprintf("[%s..%s]", c.Min, c.Max)
}

// Offset is a translation accumulated while descending the tree.
type Offset struct {
	DX float32
	DY float32
}

// Add returns o translated by d.
func (o Offset) Add(d Offset) Offset {
	return Offset{DX: o.DX + d.DX, DY: o.DY + d.DY}
}

// OffsetOnAxis returns an offset of v along axis.
func OffsetOnAxis(axis Axis, v float32) Offset {
	if axis == Horizontal {
		return Offset{DX: v}
	}
	return Offset{DY: v}
}
