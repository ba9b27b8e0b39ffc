package geometry

import "github.com/shopspring/decimal"

// Box is an axis-aligned volume. Position is the bottom-left-front corner.
type Box struct {
	Position Vector3 `json:"position"`
	Size     Vector3 `json:"size"`
}

// Volume returns the product of the size components.
func (b Box) Volume() decimal.Decimal {
	return b.Size.X.Mul(b.Size.Y).Mul(b.Size.Z)
}

// Rotate90 rotates the box size; the position is untouched.
func (b *Box) Rotate90(horizontal, vertical bool) {
	b.Size.Rotate90(horizontal, vertical)
}

// RectIntersect projects both boxes onto the plane spanned by axes u and v
// and returns the overlap area, computed from centre distances and summed
// half-extents. Separation on either axis yields zero.
func RectIntersect(a, b Box, u, v Axis) decimal.Decimal {
	cu1 := a.Position.Component(u).Add(a.Size.Component(u).Div(two))
	cv1 := a.Position.Component(v).Add(a.Size.Component(v).Div(two))
	cu2 := b.Position.Component(u).Add(b.Size.Component(u).Div(two))
	cv2 := b.Position.Component(v).Add(b.Size.Component(v).Div(two))

	du := cu2.Sub(cu1).Abs()
	dv := cv2.Sub(cv1).Abs()

	overlapU := a.Size.Component(u).Add(b.Size.Component(u)).Div(two).Sub(du)
	if overlapU.Sign() < 0 {
		overlapU = decimal.Zero
	}
	overlapV := a.Size.Component(v).Add(b.Size.Component(v)).Div(two).Sub(dv)
	if overlapV.Sign() < 0 {
		overlapV = decimal.Zero
	}

	return overlapU.Mul(overlapV)
}

// Intersect reports whether the boxes overlap with positive measure on all
// three axis pairs. Touching faces do not count as intersection.
func Intersect(a, b Box) bool {
	return RectIntersect(a, b, AxisX, AxisY).Sign() > 0 &&
		RectIntersect(a, b, AxisY, AxisZ).Sign() > 0 &&
		RectIntersect(a, b, AxisX, AxisZ).Sign() > 0
}
