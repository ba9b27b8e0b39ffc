package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whowasfra/cargopack/internal/constraint"
	"github.com/whowasfra/cargopack/internal/model"
)

func TestCompareScenarios(t *testing.T) {
	fleet := []*model.BinModel{newModel(t, "van", "10", "10", "10", "1000")}
	items := []*model.Item{
		newItem(t, "a", "7", "2", "7", "10"),
		newItem(t, "b", "7", "2", "7", "10"),
	}

	greedy := DefaultPackOptions()
	withCoG := DefaultPackOptions()
	withCoG.Strategy = StrategyMultiAnchor
	withCoG.Constraints = append(constraint.Base(), constraint.NewCenterOfGravity())

	results := CompareScenarios([]Scenario{
		{Name: "greedy-base", Options: greedy},
		{Name: "multi-anchor-cog", Options: withCoG},
	}, fleet, nil, items)

	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, 2, r.ItemsTotal)
		assert.Equal(t, 2, r.ItemsLoaded, r.Scenario)
		assert.Equal(t, 1, r.BinsUsed, r.Scenario)
		assert.Greater(t, r.VolumeUtilisation, 0.0)
		assert.GreaterOrEqual(t, r.Elapsed.Nanoseconds(), int64(0))
	}

	// Scenario runs work on clones: the source batch is untouched.
	for _, it := range items {
		assert.True(t, it.Position().X.IsZero())
		assert.True(t, it.Position().Y.IsZero())
		assert.True(t, it.Position().Z.IsZero())
	}
}
