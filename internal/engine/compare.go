package engine

import (
	"time"

	"github.com/whowasfra/cargopack/internal/model"
)

// Scenario names a set of pack options to evaluate side by side.
type Scenario struct {
	Name    string
	Options PackOptions
}

// ScenarioResult holds the outcome and the metrics used to contrast
// strategies and constraint sets on the same input.
type ScenarioResult struct {
	Scenario          string
	ItemsLoaded       int
	ItemsTotal        int
	BinsUsed          int
	VolumeUtilisation float64 // percent of allocated bin volume
	CoGDeviationX     float64 // percent of bin width, worst bin
	CoGDeviationZ     float64 // percent of bin depth, worst bin
	Elapsed           time.Duration
	Statistics        Statistics
	Configuration     []*model.Bin
}

// CompareScenarios packs a fresh copy of the same fleet and batch under each
// scenario. Inputs are cloned per run, so scenarios cannot contaminate each
// other through trial mutations.
func CompareScenarios(scenarios []Scenario, fleet []*model.BinModel, defaultBin *model.BinModel, items []*model.Item) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		packer := New()
		packer.AddFleet(cloneModels(fleet)...)
		if defaultBin != nil {
			clone := *defaultBin
			packer.SetDefaultBin(&clone)
		}
		packer.AddBatch(CloneItems(items)...)

		start := time.Now()
		packer.Pack(scenario.Options)
		elapsed := time.Since(start)

		stats := packer.Statistics()
		result := ScenarioResult{
			Scenario:          scenario.Name,
			ItemsTotal:        len(items),
			BinsUsed:          len(packer.Configuration()),
			Elapsed:           elapsed,
			Statistics:        stats,
			Configuration:     packer.Configuration(),
			VolumeUtilisation: stats.AverageVolume.InexactFloat64() * 100,
		}

		for _, bin := range packer.Configuration() {
			result.ItemsLoaded += len(bin.Items)

			cog := bin.CenterOfGravity()
			devX := cog.X.Sub(bin.Width().Div(two)).Abs().Div(bin.Width()).InexactFloat64() * 100
			if devX > result.CoGDeviationX {
				result.CoGDeviationX = devX
			}
			devZ := cog.Z.Sub(bin.Depth().Div(two)).Abs().Div(bin.Depth()).InexactFloat64() * 100
			if devZ > result.CoGDeviationZ {
				result.CoGDeviationZ = devZ
			}
		}

		results = append(results, result)
	}

	return results
}

// CloneItems deep-copies a batch. Item fields are value types, so a struct
// copy is enough; clones keep the source IDs.
func CloneItems(items []*model.Item) []*model.Item {
	out := make([]*model.Item, len(items))
	for i, it := range items {
		clone := *it
		out[i] = &clone
	}
	return out
}

func cloneModels(models []*model.BinModel) []*model.BinModel {
	out := make([]*model.BinModel, len(models))
	for i, m := range models {
		clone := *m
		out[i] = &clone
	}
	return out
}
