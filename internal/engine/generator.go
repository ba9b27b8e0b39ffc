package engine

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/whowasfra/cargopack/internal/model"
)

// Range bounds a random quantity: Min and Max for the uniform distribution,
// mean and standard deviation when the gaussian distribution is selected.
type Range struct {
	Min float64
	Max float64
}

// GeneratorConfig describes the random batches used by the comparison
// harness and the CLI's synthetic mode.
type GeneratorConfig struct {
	Width       Range
	Height      Range
	Depth       Range
	Weight      Range
	PriorityMin int
	PriorityMax int
	// Gaussian switches the draws from uniform Min..Max to |N(Min, Max)|.
	Gaussian bool
	Decimals int32
}

// DefaultGeneratorConfig mirrors a small-parcel load: sizes between 0.15 and
// 0.8 metres, weights between 2 and 40 kilograms.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Width:       Range{Min: 0.15, Max: 0.6},
		Height:      Range{Min: 0.15, Max: 0.6},
		Depth:       Range{Min: 0.15, Max: 0.8},
		Weight:      Range{Min: 2, Max: 40},
		PriorityMin: 1,
		PriorityMax: 5,
		Decimals:    3,
	}
}

// GenerateItems builds a reproducible random batch from the given seed.
// Draws that round to a degenerate size are resampled.
func GenerateItems(cfg GeneratorConfig, count int, seed int64) []*model.Item {
	rng := rand.New(rand.NewSource(seed))

	draw := func(r Range) float64 {
		if cfg.Gaussian {
			return math.Abs(rng.NormFloat64()*r.Max + r.Min)
		}
		return math.Abs(r.Min + rng.Float64()*(r.Max-r.Min))
	}

	items := make([]*model.Item, 0, count)
	for i := 0; i < count; {
		w := decimal.NewFromFloat(draw(cfg.Width)).Round(cfg.Decimals)
		h := decimal.NewFromFloat(draw(cfg.Height)).Round(cfg.Decimals)
		d := decimal.NewFromFloat(draw(cfg.Depth)).Round(cfg.Decimals)
		weight := decimal.NewFromFloat(draw(cfg.Weight)).Round(cfg.Decimals)
		if weight.Sign() < 0 {
			weight = weight.Neg()
		}

		it, err := model.NewItem(strconv.Itoa(i), w, h, d, weight)
		if err != nil {
			continue
		}
		if cfg.PriorityMax >= cfg.PriorityMin {
			it.Priority = cfg.PriorityMin + rng.Intn(cfg.PriorityMax-cfg.PriorityMin+1)
		}
		items = append(items, it)
		i++
	}
	return items
}
