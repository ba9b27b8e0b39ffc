package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/whowasfra/cargopack/internal/constraint"
	"github.com/whowasfra/cargopack/internal/geometry"
	"github.com/whowasfra/cargopack/internal/model"
)

// Strategy selects the placement algorithm Pack runs.
type Strategy string

const (
	StrategyGreedy      Strategy = "greedy"
	StrategyMultiAnchor Strategy = "multi_anchor"
)

// PackOptions parameterises a single Pack run.
type PackOptions struct {
	// Constraints every placement must satisfy. Sorted by weight before use.
	Constraints []model.Constraint
	// BiggerFirst sorts the fleet and the batch by volume descending.
	BiggerFirst bool
	// FollowPriority is reserved: accepted but not consumed by any strategy.
	FollowPriority bool
	// NumberOfDecimals fixes the decimal precision for this run. All sizes,
	// weights, and positions are normalised once at pack start.
	NumberOfDecimals int32
	Strategy         Strategy
	// HeightWeight and CompactWeight tune the multi-anchor score.
	HeightWeight  float64
	CompactWeight float64
}

// DefaultPackOptions returns the canonical options: base constraints, bigger
// bins and items first, three decimals, greedy strategy.
func DefaultPackOptions() PackOptions {
	return PackOptions{
		Constraints:      constraint.Base(),
		BiggerFirst:      true,
		FollowPriority:   true,
		NumberOfDecimals: geometry.DefaultPlaces,
		Strategy:         StrategyGreedy,
		HeightWeight:     0.3,
		CompactWeight:    0.2,
	}
}

// Statistics summarises a configuration.
type Statistics struct {
	LoadedVolume  decimal.Decimal `json:"loaded_volume"`
	LoadedWeight  decimal.Decimal `json:"loaded_weight"`
	AverageVolume decimal.Decimal `json:"average_volume"`
}

// Packer owns a fleet of bin models, a batch of items, and the resulting
// configuration. It is synchronous and not safe for concurrent use; one
// Pack call runs at a time.
type Packer struct {
	defaultBin    *model.BinModel
	fleet         []*model.BinModel
	items         []*model.Item
	configuration []*model.Bin
	unfitted      []*model.Item
}

func New() *Packer { return &Packer{} }

// SetDefaultBin sets the model allocated once the fleet is exhausted.
func (p *Packer) SetDefaultBin(m *model.BinModel) { p.defaultBin = m }

// AddBin appends a single model to the fleet.
func (p *Packer) AddBin(m *model.BinModel) { p.fleet = append(p.fleet, m) }

// AddFleet appends models to the fleet in order.
func (p *Packer) AddFleet(models ...*model.BinModel) { p.fleet = append(p.fleet, models...) }

// AddBatch appends items to the batch.
func (p *Packer) AddBatch(items ...*model.Item) { p.items = append(p.items, items...) }

// ClearConfiguration drops the previous result but keeps fleet and batch.
func (p *Packer) ClearConfiguration() {
	p.configuration = nil
	p.unfitted = nil
}

// Configuration returns the packed bins of the last run, in allocation order.
func (p *Packer) Configuration() []*model.Bin { return p.configuration }

// Unfitted returns the items no allocated bin could accept.
func (p *Packer) Unfitted() []*model.Item { return p.unfitted }

// Pack normalises decimals, sorts the fleet and the batch, and runs the
// selected strategy bin by bin. Items a bin rejects become the pending list
// for the next one; the run stops when the batch is exhausted, when a fresh
// bin accepts nothing, or when no bin can be allocated.
func (p *Packer) Pack(opts PackOptions) {
	for _, m := range p.fleet {
		m.Quantize(opts.NumberOfDecimals)
	}
	for _, it := range p.items {
		it.Quantize(opts.NumberOfDecimals)
	}
	if p.defaultBin != nil {
		p.defaultBin.Quantize(opts.NumberOfDecimals)
	}

	sort.SliceStable(p.fleet, func(i, j int) bool {
		cmp := p.fleet[i].Volume().Cmp(p.fleet[j].Volume())
		if opts.BiggerFirst {
			return cmp > 0
		}
		return cmp < 0
	})
	sort.SliceStable(p.items, func(i, j int) bool {
		cmp := p.items[i].Volume().Cmp(p.items[j].Volume())
		if opts.BiggerFirst {
			return cmp > 0
		}
		return cmp < 0
	})

	constraints := constraint.Sort(opts.Constraints)

	var strategy placer
	switch opts.Strategy {
	case StrategyMultiAnchor:
		strategy = &multiAnchorPlacer{
			constraints:   constraints,
			heightWeight:  opts.HeightWeight,
			compactWeight: opts.CompactWeight,
		}
	default:
		strategy = &greedyPlacer{constraints: constraints}
	}

	p.configuration, p.unfitted = p.run(strategy)
}

func (p *Packer) run(strategy placer) ([]*model.Bin, []*model.Item) {
	var configuration []*model.Bin
	pending := append([]*model.Item(nil), p.items...)
	fleet := append([]*model.BinModel(nil), p.fleet...)

	for len(pending) > 0 {
		var bin *model.Bin
		switch {
		case len(fleet) > 0:
			bin = model.NewBin(len(configuration), fleet[0])
			fleet = fleet[1:]
		case p.defaultBin != nil:
			bin = model.NewBin(len(configuration), p.defaultBin)
		default:
			return configuration, pending
		}

		var rejected []*model.Item
		for _, it := range pending {
			if !strategy.place(bin, it) {
				rejected = append(rejected, it)
			}
		}

		if len(bin.Items) == 0 {
			// No progress: further bins of the same model would also accept
			// nothing, so stop instead of looping forever.
			return configuration, rejected
		}

		configuration = append(configuration, bin)
		pending = rejected
	}

	return configuration, nil
}

// Statistics reports the loaded volume and weight of the current
// configuration and the ratio of loaded volume to allocated bin volume.
func (p *Packer) Statistics() Statistics {
	stats := Statistics{
		LoadedVolume:  decimal.Zero,
		LoadedWeight:  decimal.Zero,
		AverageVolume: decimal.Zero,
	}

	capacity := decimal.Zero
	for _, bin := range p.configuration {
		for _, it := range bin.Items {
			stats.LoadedVolume = stats.LoadedVolume.Add(it.Volume())
		}
		stats.LoadedWeight = stats.LoadedWeight.Add(bin.Weight)
		capacity = capacity.Add(bin.Model.Volume())
	}

	if capacity.Sign() > 0 {
		stats.AverageVolume = stats.LoadedVolume.Div(capacity)
	}
	return stats
}
