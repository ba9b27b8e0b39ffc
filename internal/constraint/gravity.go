package constraint

import (
	"github.com/shopspring/decimal"

	"github.com/whowasfra/cargopack/internal/model"
)

var (
	one = decimal.NewFromInt(1)
	two = decimal.NewFromInt(2)
)

// CenterOfGravity keeps the bin's centre of gravity near a target as the
// load grows: full tolerance on an empty bin, shrinking linearly with the
// load ratio. The Z target sits toward the back of the bin (ZTargetFactor of
// the depth), which is where a vehicle load is stable.
//
// The prospective centre of gravity is derived incrementally from the
// current one — current moment plus the candidate item's moment over the
// future weight — so evaluation is O(1) in the number of placed items.
type CenterOfGravity struct {
	TolXPercent           decimal.Decimal
	TolZPercent           decimal.Decimal
	ProgressiveTightening decimal.Decimal
	ZTargetFactor         decimal.Decimal
	// MinLoadRatio disables the constraint below this load ratio. Zero keeps
	// it always active, which is the progressive behaviour.
	MinLoadRatio decimal.Decimal
}

// NewCenterOfGravity returns the constraint with default tolerances: 0.2 of
// the width and depth, tightening factor 0.7, Z target at 0.4 of the depth.
func NewCenterOfGravity() CenterOfGravity {
	return CenterOfGravity{
		TolXPercent:           decimal.NewFromFloat(0.2),
		TolZPercent:           decimal.NewFromFloat(0.2),
		ProgressiveTightening: decimal.NewFromFloat(0.7),
		ZTargetFactor:         decimal.NewFromFloat(0.4),
	}
}

func (CenterOfGravity) Name() string { return "maintain_center_of_gravity" }
func (CenterOfGravity) Weight() int  { return 25 }

func (c CenterOfGravity) Evaluate(b *model.Bin, it *model.Item) bool {
	futureWeight := b.Weight.Add(it.Weight)
	if futureWeight.Sign() == 0 {
		return true
	}

	loadRatio := decimal.Zero
	if b.MaxWeight().Sign() > 0 {
		loadRatio = futureWeight.Div(b.MaxWeight())
	}
	if c.MinLoadRatio.Sign() > 0 && loadRatio.Cmp(c.MinLoadRatio) < 0 {
		return true
	}

	// Prospective CoG from the current moment and the candidate's moment.
	// For an empty bin the current weight is zero and this collapses to the
	// item's own centre.
	current := b.CenterOfGravity()
	center := it.Center()
	cogX := current.X.Mul(b.Weight).Add(center.X.Mul(it.Weight)).Div(futureWeight)
	cogZ := current.Z.Mul(b.Weight).Add(center.Z.Mul(it.Weight)).Div(futureWeight)

	scale := one.Sub(loadRatio.Mul(c.ProgressiveTightening))
	tolX := b.Width().Mul(c.TolXPercent).Mul(scale)
	tolZ := b.Depth().Mul(c.TolZPercent).Mul(scale)

	targetX := b.Width().Div(two)
	targetZ := b.Depth().Mul(c.ZTargetFactor)

	devX := cogX.Sub(targetX).Abs()
	devZ := cogZ.Sub(targetZ).Abs()
	if devX.Cmp(tolX) > 0 || devZ.Cmp(tolZ) > 0 {
		return false
	}

	// Corrective bias: once the load already leans past half the effective
	// tolerance on an axis, placements that grow the lean are rejected even
	// when they stay inside the hard bound.
	if len(b.Items) > 0 {
		currentDevX := current.X.Sub(targetX).Abs()
		if currentDevX.Mul(two).Cmp(tolX) > 0 && devX.Cmp(currentDevX) > 0 {
			return false
		}
		currentDevZ := current.Z.Sub(targetZ).Abs()
		if currentDevZ.Mul(two).Cmp(tolZ) > 0 && devZ.Cmp(currentDevZ) > 0 {
			return false
		}
	}

	return true
}
