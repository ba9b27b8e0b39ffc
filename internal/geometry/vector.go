// Package geometry provides the fixed-precision primitives the placement
// engine reasons with: 3-vectors, axis-aligned boxes, and the 2D/3D
// intersection tests built on them. All scalars are decimals so support
// thresholds and balance tolerances compare identically on every platform.
package geometry

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultPlaces is the process-wide number of fractional digits kept on
// dimensions, weights, and positions. Pack runs may override it.
const DefaultPlaces int32 = 3

// Axis identifies one of the three spatial axes. X is width (left-right),
// Y is height (vertical), Z is depth (front-back).
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var two = decimal.NewFromInt(2)

// Vector3 is an ordered triple addressable by name or by axis.
type Vector3 struct {
	X decimal.Decimal `json:"x"`
	Y decimal.Decimal `json:"y"`
	Z decimal.Decimal `json:"z"`
}

func NewVector3(x, y, z decimal.Decimal) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Component returns the component on the given axis.
func (v Vector3) Component(a Axis) decimal.Decimal {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// SetComponent replaces the component on the given axis.
func (v *Vector3) SetComponent(a Axis, d decimal.Decimal) {
	switch a {
	case AxisX:
		v.X = d
	case AxisY:
		v.Y = d
	default:
		v.Z = d
	}
}

// Add returns the component-wise sum of v and o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X.Add(o.X), Y: v.Y.Add(o.Y), Z: v.Z.Add(o.Z)}
}

// Rotate90 swaps components in place: horizontal exchanges X and Z,
// vertical exchanges Y and Z. Applying the same toggle twice restores the
// original value, which is what the 4-orientation enumeration relies on.
func (v *Vector3) Rotate90(horizontal, vertical bool) {
	if horizontal {
		v.X, v.Z = v.Z, v.X
	}
	if vertical {
		v.Y, v.Z = v.Z, v.Y
	}
}

// Quantize rounds every component to the given number of fractional digits.
func (v Vector3) Quantize(places int32) Vector3 {
	return Vector3{X: v.X.Round(places), Y: v.Y.Round(places), Z: v.Z.Round(places)}
}

func (v Vector3) String() string {
	return fmt.Sprintf("x:%s,y:%s,z:%s", v.X, v.Y, v.Z)
}
