// Package constraint implements the weighted predicates a placement must
// satisfy, plus the registry the driver composes constraint sets from.
// Cheap, always-required predicates carry low weights so they run before the
// expensive support and balance checks.
package constraint

import (
	"sort"

	"github.com/whowasfra/cargopack/internal/model"
)

// registry maps constraint names to default-parameter constructors. It is
// populated here and never written afterwards; New hands out fresh instances
// so per-pack parameter changes cannot leak between runs.
var registry = map[string]func() model.Constraint{
	"weight_within_limit":        func() model.Constraint { return WeightWithinLimit{} },
	"fits_inside_bin":            func() model.Constraint { return FitsInsideBin{} },
	"no_overlap":                 func() model.Constraint { return NoOverlap{} },
	"is_supported":               func() model.Constraint { return NewSupported() },
	"maintain_center_of_gravity": func() model.Constraint { return NewCenterOfGravity() },
}

// New returns a fresh instance of the named built-in constraint.
func New(name string) (model.Constraint, bool) {
	ctor, ok := registry[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Names lists the registered constraint names ordered by evaluation weight.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, _ := New(names[i])
		cj, _ := New(names[j])
		return ci.Weight() < cj.Weight()
	})
	return names
}

// Base returns the always-required set: weight ceiling, containment, and
// overlap.
func Base() []model.Constraint {
	return []model.Constraint{WeightWithinLimit{}, FitsInsideBin{}, NoOverlap{}}
}

// Default returns every built-in constraint with default parameters.
func Default() []model.Constraint {
	return append(Base(), NewSupported(), NewCenterOfGravity())
}

// Sort returns a copy of cs ordered by ascending weight. The sort is stable,
// so equal-weight constraints keep their composition order.
func Sort(cs []model.Constraint) []model.Constraint {
	out := make([]model.Constraint, len(cs))
	copy(out, cs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight() < out[j].Weight() })
	return out
}
