package engine

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/whowasfra/cargopack/internal/geometry"
	"github.com/whowasfra/cargopack/internal/model"
)

// multiAnchorPlacer decouples candidate generation from selection. The
// greedy strategy accepts the first feasible position and therefore packs
// everything into the origin corner, which fights the centre-of-gravity
// constraint. Here candidates come from many anchor sources — floor corners,
// the floor centre, item-adjacent offsets, and wall-mirrored reflections —
// and every feasible (orientation, anchor, surface) triple is scored; only
// the best one is committed.
//
// Scores are the one place floating point is acceptable: they are only
// compared relatively. Ties keep the first-seen triple, so the fixed anchor
// insertion order makes the strategy deterministic.
type multiAnchorPlacer struct {
	constraints   []model.Constraint
	heightWeight  float64
	compactWeight float64
}

type anchor struct {
	x, z decimal.Decimal
}

func (m *multiAnchorPlacer) place(b *model.Bin, it *model.Item) bool {
	originalPos := it.Position()
	originalSize := it.Box.Size

	bestScore := math.Inf(1)
	var bestPos, bestSize geometry.Vector3
	found := false

	for horiz := 0; horiz < 2; horiz++ {
		for vert := 0; vert < 2; vert++ {
			// The footprint changes with the rotation, so anchors are
			// regenerated per orientation.
			for _, a := range m.anchors(b, it) {
				it.SetPosition(geometry.NewVector3(a.x, decimal.Zero, a.z))
				for _, y := range restingSurfaces(b, it, true) {
					it.SetPosition(geometry.NewVector3(a.x, y, a.z))
					if !m.admissible(b, it) {
						continue
					}
					if score := m.score(b, it.Position()); score < bestScore {
						bestScore = score
						bestPos = it.Position()
						bestSize = it.Box.Size
						found = true
					}
				}
			}
			it.Rotate90(false, true)
		}
		it.Rotate90(true, false)
	}

	if found {
		it.SetPosition(bestPos)
		it.Box.Size = bestSize
		// Constraints held during evaluation and have no side effects, so
		// the winner commits directly.
		b.AddItem(it)
		return true
	}

	it.SetPosition(originalPos)
	it.Box.Size = originalSize
	return false
}

// anchors produces the candidate (x, z) positions for the item's
// bottom-left-front corner at its current rotation, in a fixed insertion
// order: floor corners, floor centre, item-adjacent offsets, then
// wall-mirrored reflections of everything collected so far. Out-of-bounds
// candidates are dropped and duplicates are kept once.
func (m *multiAnchorPlacer) anchors(b *model.Bin, it *model.Item) []anchor {
	w := it.Width()
	d := it.Depth()
	maxX := b.Width().Sub(w)
	maxZ := b.Depth().Sub(d)

	var out []anchor
	add := func(x, z decimal.Decimal) {
		if x.Sign() < 0 || z.Sign() < 0 || x.Cmp(maxX) > 0 || z.Cmp(maxZ) > 0 {
			return
		}
		for _, a := range out {
			if a.x.Equal(x) && a.z.Equal(z) {
				return
			}
		}
		out = append(out, anchor{x: x, z: z})
	}

	// Floor corners.
	add(decimal.Zero, decimal.Zero)
	add(maxX, decimal.Zero)
	add(decimal.Zero, maxZ)
	add(maxX, maxZ)

	// Bin floor centre.
	add(maxX.Div(two), maxZ.Div(two))

	// Item-adjacent positions.
	for _, existing := range b.Items {
		px := existing.Position().X
		pz := existing.Position().Z
		add(px.Add(existing.Width()), pz)                       // right
		add(px, pz.Add(existing.Depth()))                       // behind
		add(px.Add(existing.Width()), pz.Add(existing.Depth())) // diagonal
		add(px.Sub(w), pz)                                      // left
		add(px, pz.Sub(d))                                      // front
	}

	// Wall-mirrored reflections across the X and Z centre planes, so both
	// halves of the bin are explored equally.
	snapshot := append([]anchor(nil), out...)
	for _, a := range snapshot {
		mx := maxX.Sub(a.x)
		mz := maxZ.Sub(a.z)
		add(mx, a.z)
		add(a.x, mz)
		add(mx, mz)
	}

	return out
}

func (m *multiAnchorPlacer) admissible(b *model.Bin, it *model.Item) bool {
	for _, c := range m.constraints {
		if !c.Evaluate(b, it) {
			return false
		}
	}
	return true
}

// score rates a feasible placement; lower is better. Height is penalised
// for stability, fragmentation is penalised through the L1 distance to the
// nearest placed item. An empty bin has no compactness term.
func (m *multiAnchorPlacer) score(b *model.Bin, pos geometry.Vector3) float64 {
	height := m.heightWeight * pos.Y.InexactFloat64() / b.Height().InexactFloat64()
	if len(b.Items) == 0 {
		return height
	}

	norm := b.Width().Add(b.Height()).Add(b.Depth()).InexactFloat64()
	minDist := math.Inf(1)
	for _, existing := range b.Items {
		p := existing.Position()
		dist := pos.X.Sub(p.X).Abs().
			Add(pos.Y.Sub(p.Y).Abs()).
			Add(pos.Z.Sub(p.Z).Abs()).
			InexactFloat64()
		if dist < minDist {
			minDist = dist
		}
	}
	return height + m.compactWeight*minDist/norm
}
