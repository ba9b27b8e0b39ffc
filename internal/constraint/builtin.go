package constraint

import (
	"github.com/whowasfra/cargopack/internal/geometry"
	"github.com/whowasfra/cargopack/internal/model"
)

// WeightWithinLimit rejects placements that would exceed the bin's ceiling.
type WeightWithinLimit struct{}

func (WeightWithinLimit) Name() string { return "weight_within_limit" }
func (WeightWithinLimit) Weight() int  { return 5 }

func (WeightWithinLimit) Evaluate(b *model.Bin, it *model.Item) bool {
	return b.Weight.Add(it.Weight).Cmp(b.MaxWeight()) <= 0
}

// FitsInsideBin requires the item's box, at its current position, to lie
// within [0, bin size] on every axis.
type FitsInsideBin struct{}

func (FitsInsideBin) Name() string { return "fits_inside_bin" }
func (FitsInsideBin) Weight() int  { return 10 }

func (FitsInsideBin) Evaluate(b *model.Bin, it *model.Item) bool {
	for axis := geometry.AxisX; axis <= geometry.AxisZ; axis++ {
		pos := it.Box.Position.Component(axis)
		if pos.Sign() < 0 {
			return false
		}
		if pos.Add(it.Box.Size.Component(axis)).Cmp(b.Size().Component(axis)) > 0 {
			return false
		}
	}
	return true
}

// NoOverlap rejects any placement whose box intersects an already placed
// item with positive measure. Touching faces are allowed.
type NoOverlap struct{}

func (NoOverlap) Name() string { return "no_overlap" }
func (NoOverlap) Weight() int  { return 15 }

func (NoOverlap) Evaluate(b *model.Bin, it *model.Item) bool {
	for _, existing := range b.Items {
		if geometry.Intersect(existing.Box, it.Box) {
			return false
		}
	}
	return true
}
