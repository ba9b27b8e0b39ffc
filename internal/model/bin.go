package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/whowasfra/cargopack/internal/geometry"
)

// BinModel describes a class of bins: its interior size and weight ceiling.
// Models are immutable once constructed, apart from quantisation.
type BinModel struct {
	Name      string           `json:"name"`
	Size      geometry.Vector3 `json:"size"`
	MaxWeight decimal.Decimal  `json:"max_weight"`
}

// NewBinModel validates the dimensions and builds a model.
func NewBinModel(name string, width, height, depth, maxWeight decimal.Decimal) (*BinModel, error) {
	if width.Sign() <= 0 || height.Sign() <= 0 || depth.Sign() <= 0 {
		return nil, fmt.Errorf("bin model %q: size components must be strictly positive", name)
	}
	if maxWeight.Sign() < 0 {
		return nil, fmt.Errorf("bin model %q: max weight must be non-negative", name)
	}
	return &BinModel{
		Name:      name,
		Size:      geometry.NewVector3(width, height, depth),
		MaxWeight: maxWeight,
	}, nil
}

func (m *BinModel) Width() decimal.Decimal  { return m.Size.X }
func (m *BinModel) Height() decimal.Decimal { return m.Size.Y }
func (m *BinModel) Depth() decimal.Decimal  { return m.Size.Z }

// Volume returns the interior capacity of the model.
func (m *BinModel) Volume() decimal.Decimal {
	return m.Size.X.Mul(m.Size.Y).Mul(m.Size.Z)
}

// Quantize rounds the model's size and weight ceiling.
func (m *BinModel) Quantize(places int32) {
	m.Size = m.Size.Quantize(places)
	m.MaxWeight = m.MaxWeight.Round(places)
}

func (m *BinModel) String() string {
	return fmt.Sprintf("%s(%sx%sx%s, max_weight:%s) vol(%s)",
		m.Name, m.Width(), m.Height(), m.Depth(), m.MaxWeight, m.Volume())
}

// Constraint is a weighted predicate over a prospective placement. Evaluate
// must not mutate the bin or the item; placements are admitted only when
// every constraint in the set holds. Lower weights run first.
type Constraint interface {
	Name() string
	Weight() int
	Evaluate(b *Bin, it *Item) bool
}

// Bin is a loadable instance of a model. It owns its item list and grows
// monotonically during a pack; bins are never re-opened once the driver
// moves on.
type Bin struct {
	ID     int             `json:"id"`
	Model  *BinModel       `json:"model"`
	Items  []*Item         `json:"items"`
	Weight decimal.Decimal `json:"weight"`
}

func NewBin(id int, model *BinModel) *Bin {
	return &Bin{ID: id, Model: model}
}

func (b *Bin) Width() decimal.Decimal     { return b.Model.Width() }
func (b *Bin) Height() decimal.Decimal    { return b.Model.Height() }
func (b *Bin) Depth() decimal.Decimal     { return b.Model.Depth() }
func (b *Bin) Size() geometry.Vector3     { return b.Model.Size }
func (b *Bin) MaxWeight() decimal.Decimal { return b.Model.MaxWeight }

// PutItem is the single commit point for placement: it evaluates every
// constraint in the given order against the item at its current position
// and, if and only if all succeed, appends the item and adds its weight.
// On failure the bin is left unchanged.
func (b *Bin) PutItem(it *Item, constraints []Constraint) bool {
	for _, c := range constraints {
		if !c.Evaluate(b, it) {
			return false
		}
	}
	b.AddItem(it)
	return true
}

// AddItem appends the item and adds its weight without evaluating any
// constraint. Callers must have validated the placement already.
func (b *Bin) AddItem(it *Item) {
	b.Items = append(b.Items, it)
	b.Weight = b.Weight.Add(it.Weight)
}

// RemoveItem removes the item by identity and subtracts its weight.
func (b *Bin) RemoveItem(it *Item) bool {
	for idx, existing := range b.Items {
		if existing == it {
			b.Items = append(b.Items[:idx], b.Items[idx+1:]...)
			b.Weight = b.Weight.Sub(it.Weight)
			return true
		}
	}
	return false
}

// CenterOfGravity returns the mass-weighted mean of the item centres, or the
// geometric centre of the bin interior when the load has zero weight.
func (b *Bin) CenterOfGravity() geometry.Vector3 {
	if b.Weight.Sign() == 0 {
		return geometry.NewVector3(
			b.Width().Div(two),
			b.Height().Div(two),
			b.Depth().Div(two),
		)
	}

	var momentX, momentY, momentZ decimal.Decimal
	for _, it := range b.Items {
		center := it.Center()
		momentX = momentX.Add(center.X.Mul(it.Weight))
		momentY = momentY.Add(center.Y.Mul(it.Weight))
		momentZ = momentZ.Add(center.Z.Mul(it.Weight))
	}

	return geometry.NewVector3(
		momentX.Div(b.Weight),
		momentY.Div(b.Weight),
		momentZ.Div(b.Weight),
	)
}

func (b *Bin) String() string {
	return fmt.Sprintf("Bin %d of model %s: loaded items %d", b.ID, b.Model.Name, len(b.Items))
}
