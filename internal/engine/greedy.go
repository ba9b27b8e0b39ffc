package engine

import (
	"github.com/shopspring/decimal"

	"github.com/whowasfra/cargopack/internal/geometry"
	"github.com/whowasfra/cargopack/internal/model"
)

// greedyPlacer is the corner-point strategy: candidate positions are offsets
// from already-placed items along each axis, resting surfaces are scanned
// top-down, and the first placement the constraints admit wins. The first
// item in an empty bin goes straight to the origin.
type greedyPlacer struct {
	constraints []model.Constraint
}

func (g *greedyPlacer) place(b *model.Bin, it *model.Item) bool {
	if len(b.Items) == 0 {
		original := it.Position()
		it.SetPosition(geometry.Vector3{})
		if b.PutItem(it, g.constraints) {
			return true
		}
		it.SetPosition(original)
		return false
	}
	return g.tryFit(b, it)
}

func (g *greedyPlacer) tryFit(b *model.Bin, it *model.Item) bool {
	originalPos := it.Position()
	originalSize := it.Box.Size

	for _, pivot := range b.Items {
		for axis := geometry.AxisX; axis <= geometry.AxisZ; axis++ {
			// Place next to the pivot along this axis.
			anchor := pivot.Position()
			anchor.SetComponent(axis, anchor.Component(axis).Add(pivot.Box.Size.Component(axis)))

			// Two nested toggles visit all four orientations and restore
			// the item's rotation afterwards.
			for horiz := 0; horiz < 2; horiz++ {
				for vert := 0; vert < 2; vert++ {
					var candidates []decimal.Decimal
					if axis == geometry.AxisY {
						// Stacking on top of the pivot: Y is fixed.
						candidates = []decimal.Decimal{anchor.Y}
					} else {
						it.SetPosition(geometry.NewVector3(anchor.X, decimal.Zero, anchor.Z))
						candidates = restingSurfaces(b, it, false)
					}

					for _, y := range candidates {
						it.SetPosition(geometry.NewVector3(anchor.X, y, anchor.Z))
						if b.PutItem(it, g.constraints) {
							return true
						}
					}
					it.Rotate90(false, true)
				}
				it.Rotate90(true, false)
			}
		}
	}

	it.SetPosition(originalPos)
	it.Box.Size = originalSize
	return false
}
