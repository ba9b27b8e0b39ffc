// Package model defines the entities of the placement problem: items,
// bin models, and loadable bins, plus the constraint contract a placement
// must satisfy before it is committed.
package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/whowasfra/cargopack/internal/geometry"
)

var two = decimal.NewFromInt(2)

// Item is a rectangular piece of cargo. Position and orientation live on the
// owned box; the placement strategies mutate both during a trial and restore
// them when no candidate is admitted.
type Item struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Box      geometry.Box    `json:"box"`
	Weight   decimal.Decimal `json:"weight"`
	Priority int             `json:"priority"` // reserved for priority-ordered packing
}

// NewItem validates the dimensions and builds an item at the origin.
// Size components must be strictly positive, weight non-negative.
func NewItem(name string, width, height, depth, weight decimal.Decimal) (*Item, error) {
	if width.Sign() <= 0 || height.Sign() <= 0 || depth.Sign() <= 0 {
		return nil, fmt.Errorf("item %q: size components must be strictly positive", name)
	}
	if weight.Sign() < 0 {
		return nil, fmt.Errorf("item %q: weight must be non-negative", name)
	}
	return &Item{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Box:    geometry.Box{Size: geometry.NewVector3(width, height, depth)},
		Weight: weight,
	}, nil
}

func (i *Item) Width() decimal.Decimal  { return i.Box.Size.X }
func (i *Item) Height() decimal.Decimal { return i.Box.Size.Y }
func (i *Item) Depth() decimal.Decimal  { return i.Box.Size.Z }

// Position returns the bottom-left-front corner.
func (i *Item) Position() geometry.Vector3 { return i.Box.Position }

func (i *Item) SetPosition(p geometry.Vector3) { i.Box.Position = p }

// Volume returns the item's volumetric occupation.
func (i *Item) Volume() decimal.Decimal { return i.Box.Volume() }

// Center returns the geometric centre, position + size/2 on every axis.
func (i *Item) Center() geometry.Vector3 {
	return geometry.NewVector3(
		i.Box.Position.X.Add(i.Box.Size.X.Div(two)),
		i.Box.Position.Y.Add(i.Box.Size.Y.Div(two)),
		i.Box.Position.Z.Add(i.Box.Size.Z.Div(two)),
	)
}

// Top returns the Y coordinate of the item's upper face.
func (i *Item) Top() decimal.Decimal {
	return i.Box.Position.Y.Add(i.Box.Size.Y)
}

// Rotate90 rotates the item's size in place; horizontal swaps width and
// depth, vertical swaps height and depth.
func (i *Item) Rotate90(horizontal, vertical bool) {
	i.Box.Rotate90(horizontal, vertical)
}

// Quantize rounds the item's size, position, and weight to the given number
// of fractional digits.
func (i *Item) Quantize(places int32) {
	i.Box.Size = i.Box.Size.Quantize(places)
	i.Box.Position = i.Box.Position.Quantize(places)
	i.Weight = i.Weight.Round(places)
}

func (i *Item) String() string {
	return fmt.Sprintf("%s(%sx%sx%s, weight:%s)", i.Name, i.Width(), i.Height(), i.Depth(), i.Weight)
}
