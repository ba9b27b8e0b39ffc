// Package engine runs the 3D placement algorithms: the greedy corner-point
// strategy, the multi-anchor scored strategy, and the driver that iterates
// them over a fleet of bins.
package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/whowasfra/cargopack/internal/geometry"
	"github.com/whowasfra/cargopack/internal/model"
)

var two = decimal.NewFromInt(2)

// placer is one placement strategy. A call either commits the item into the
// bin or leaves both the bin and the item's position/size untouched.
type placer interface {
	place(b *model.Bin, it *model.Item) bool
}

// restingSurfaces returns the floor plus the top Y of every placed item
// whose footprint overlaps the item's footprint at its current rotation,
// highest first so stacking is tried before the floor. With headroom set,
// surfaces that leave no vertical room below the ceiling are skipped.
func restingSurfaces(b *model.Bin, it *model.Item, headroom bool) []decimal.Decimal {
	surfaces := []decimal.Decimal{decimal.Zero}
	for _, existing := range b.Items {
		top := existing.Top()
		if headroom && top.Add(it.Height()).Cmp(b.Height()) > 0 {
			continue
		}
		if geometry.RectIntersect(existing.Box, it.Box, geometry.AxisX, geometry.AxisZ).Sign() <= 0 {
			continue
		}
		seen := false
		for _, s := range surfaces {
			if s.Equal(top) {
				seen = true
				break
			}
		}
		if !seen {
			surfaces = append(surfaces, top)
		}
	}
	sort.Slice(surfaces, func(i, j int) bool { return surfaces[i].Cmp(surfaces[j]) > 0 })
	return surfaces
}
