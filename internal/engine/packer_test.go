package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whowasfra/cargopack/internal/constraint"
	"github.com/whowasfra/cargopack/internal/geometry"
	"github.com/whowasfra/cargopack/internal/model"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func newItem(t *testing.T, name, w, h, dp, weight string) *model.Item {
	t.Helper()
	it, err := model.NewItem(name, d(w), d(h), d(dp), d(weight))
	require.NoError(t, err)
	return it
}

func newModel(t *testing.T, name, w, h, dp, maxWeight string) *model.BinModel {
	t.Helper()
	m, err := model.NewBinModel(name, d(w), d(h), d(dp), d(maxWeight))
	require.NoError(t, err)
	return m
}

func positionOf(t *testing.T, bin *model.Bin, name string) geometry.Vector3 {
	t.Helper()
	for _, it := range bin.Items {
		if it.Name == name {
			return it.Position()
		}
	}
	t.Fatalf("item %q not in bin %d", name, bin.ID)
	return geometry.Vector3{}
}

// checkInvariants asserts containment, non-overlap, and the weight ceiling
// for every bin of a configuration.
func checkInvariants(t *testing.T, configuration []*model.Bin) {
	t.Helper()
	for _, bin := range configuration {
		loaded := decimal.Zero
		for i, it := range bin.Items {
			loaded = loaded.Add(it.Weight)
			for axis := geometry.AxisX; axis <= geometry.AxisZ; axis++ {
				pos := it.Box.Position.Component(axis)
				assert.True(t, pos.Sign() >= 0, "bin %d item %s below zero on axis %d", bin.ID, it.Name, axis)
				assert.True(t, pos.Add(it.Box.Size.Component(axis)).Cmp(bin.Size().Component(axis)) <= 0,
					"bin %d item %s outside on axis %d", bin.ID, it.Name, axis)
			}
			for _, other := range bin.Items[i+1:] {
				assert.False(t, geometry.Intersect(it.Box, other.Box),
					"bin %d items %s and %s overlap", bin.ID, it.Name, other.Name)
			}
		}
		assert.True(t, loaded.Equal(bin.Weight), "bin %d weight out of sync", bin.ID)
		assert.True(t, bin.Weight.Cmp(bin.MaxWeight()) <= 0, "bin %d over weight ceiling", bin.ID)
	}
}

func TestPack_SingleCubeSingleBin(t *testing.T) {
	p := New()
	p.AddBin(newModel(t, "box", "10", "10", "10", "100"))
	p.AddBatch(newItem(t, "cube", "5", "5", "5", "10"))

	p.Pack(DefaultPackOptions())

	require.Len(t, p.Configuration(), 1)
	require.Empty(t, p.Unfitted())

	bin := p.Configuration()[0]
	require.Len(t, bin.Items, 1)
	assert.True(t, bin.Items[0].Position().X.IsZero())
	assert.True(t, bin.Items[0].Position().Y.IsZero())
	assert.True(t, bin.Items[0].Position().Z.IsZero())

	stats := p.Statistics()
	assert.True(t, stats.LoadedVolume.Equal(d("125")), "got %s", stats.LoadedVolume)
	assert.True(t, stats.LoadedWeight.Equal(d("10")))
	assert.True(t, stats.AverageVolume.Equal(d("0.125")), "got %s", stats.AverageVolume)
}

func TestPack_DefaultBinFallback(t *testing.T) {
	p := New()
	p.SetDefaultBin(newModel(t, "van", "10", "10", "10", "100"))
	p.AddBatch(
		newItem(t, "slab-a", "10", "10", "6", "10"),
		newItem(t, "slab-b", "10", "10", "6", "10"),
	)

	p.Pack(DefaultPackOptions())

	require.Len(t, p.Configuration(), 2, "each slab needs its own default bin")
	require.Empty(t, p.Unfitted())
	for _, bin := range p.Configuration() {
		assert.Equal(t, "van", bin.Model.Name)
		assert.Len(t, bin.Items, 1)
	}
	checkInvariants(t, p.Configuration())
}

func TestPack_FleetExhaustion(t *testing.T) {
	p := New()
	p.AddFleet(
		newModel(t, "crate-1", "4", "4", "4", "100"),
		newModel(t, "crate-2", "4", "4", "4", "100"),
	)
	items := []*model.Item{
		newItem(t, "a", "4", "4", "4", "1"),
		newItem(t, "b", "4", "4", "4", "1"),
		newItem(t, "c", "4", "4", "4", "1"),
	}
	p.AddBatch(items...)

	p.Pack(DefaultPackOptions())

	require.Len(t, p.Configuration(), 2, "exactly the fleet's bins appear")
	require.Len(t, p.Unfitted(), 1)

	// Conservation: every input item is either placed or unfitted, once.
	seen := map[string]int{}
	for _, bin := range p.Configuration() {
		for _, it := range bin.Items {
			seen[it.ID]++
		}
	}
	for _, it := range p.Unfitted() {
		seen[it.ID]++
	}
	require.Len(t, seen, len(items))
	for id, count := range seen {
		assert.Equal(t, 1, count, "item %s duplicated or lost", id)
	}
}

func TestPack_NoProgressStops(t *testing.T) {
	p := New()
	p.AddBin(newModel(t, "small", "2", "2", "2", "100"))
	p.SetDefaultBin(newModel(t, "small-too", "2", "2", "2", "100"))
	p.AddBatch(
		newItem(t, "big-a", "3", "3", "3", "1"),
		newItem(t, "big-b", "3", "3", "3", "1"),
	)

	p.Pack(DefaultPackOptions())

	// The first bin accepts nothing; the driver must stop rather than
	// allocate default bins forever.
	assert.Empty(t, p.Configuration())
	assert.Len(t, p.Unfitted(), 2)
}

func TestPack_SortsBiggerFirst(t *testing.T) {
	p := New()
	p.AddFleet(
		newModel(t, "small", "4", "4", "4", "100"),
		newModel(t, "large", "10", "10", "10", "100"),
	)
	p.AddBatch(
		newItem(t, "minor", "1", "1", "1", "1"),
		newItem(t, "major", "6", "6", "6", "1"),
	)

	p.Pack(DefaultPackOptions())

	require.NotEmpty(t, p.Configuration())
	first := p.Configuration()[0]
	assert.Equal(t, "large", first.Model.Name, "largest bin is allocated first")
	require.NotEmpty(t, first.Items)
	assert.Equal(t, "major", first.Items[0].Name, "largest item is placed first")
}

func TestPack_Determinism(t *testing.T) {
	items := GenerateItems(DefaultGeneratorConfig(), 15, 42)

	run := func() []*model.Bin {
		p := New()
		p.AddBin(newModel(t, "van", "2", "2", "3", "1400"))
		p.SetDefaultBin(newModel(t, "van", "2", "2", "3", "1400"))
		p.AddBatch(CloneItems(items)...)

		opts := DefaultPackOptions()
		opts.Strategy = StrategyMultiAnchor
		opts.Constraints = constraint.Default()
		p.Pack(opts)
		return p.Configuration()
	}

	first := run()
	second := run()

	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, len(first[i].Items), len(second[i].Items), "bin %d", i)
		for j := range first[i].Items {
			a, b := first[i].Items[j], second[i].Items[j]
			assert.Equal(t, a.Name, b.Name)
			assert.True(t, a.Position().X.Equal(b.Position().X))
			assert.True(t, a.Position().Y.Equal(b.Position().Y))
			assert.True(t, a.Position().Z.Equal(b.Position().Z))
			assert.Equal(t, a.Box.Size, b.Box.Size)
		}
	}
	checkInvariants(t, first)
}

func TestStatistics_EmptyConfiguration(t *testing.T) {
	p := New()
	stats := p.Statistics()
	assert.True(t, stats.LoadedVolume.IsZero())
	assert.True(t, stats.LoadedWeight.IsZero())
	assert.True(t, stats.AverageVolume.IsZero())
}
