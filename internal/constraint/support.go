package constraint

import (
	"github.com/shopspring/decimal"

	"github.com/whowasfra/cargopack/internal/geometry"
	"github.com/whowasfra/cargopack/internal/model"
)

// Supported admits a placement only when the item rests on the floor or on
// enough contact area from items directly underneath: the summed footprint
// overlap of every item whose top face exactly meets the item's bottom must
// cover at least MinimumSupport of the base area. Comparisons are exact
// under the configured decimal precision.
//
// This is a pure validator: it never moves the item onto a surface.
type Supported struct {
	MinimumSupport decimal.Decimal
}

// NewSupported returns the support constraint with the default minimum
// support ratio of 0.75.
func NewSupported() Supported {
	return Supported{MinimumSupport: decimal.NewFromFloat(0.75)}
}

func (Supported) Name() string { return "is_supported" }
func (Supported) Weight() int  { return 20 }

func (c Supported) Evaluate(b *model.Bin, it *model.Item) bool {
	bottom := it.Position().Y
	if bottom.Sign() == 0 {
		return true
	}

	base := it.Width().Mul(it.Depth())
	if base.Sign() <= 0 {
		return false
	}

	contact := decimal.Zero
	for _, existing := range b.Items {
		if existing.Top().Equal(bottom) {
			contact = contact.Add(geometry.RectIntersect(existing.Box, it.Box, geometry.AxisX, geometry.AxisZ))
		}
	}

	// contact/base >= MinimumSupport, kept multiplication-only to stay exact.
	return contact.Cmp(base.Mul(c.MinimumSupport)) >= 0
}
