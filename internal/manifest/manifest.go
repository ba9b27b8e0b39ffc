// Package manifest reads and writes packing jobs: the fleet of bin models,
// an optional default model, and the batch of items. Jobs are stored as
// JSON files; batches can also be imported from spreadsheets.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/whowasfra/cargopack/internal/model"
)

// BinSpec is the serialisable form of a bin model.
type BinSpec struct {
	Name      string          `json:"name"`
	Width     decimal.Decimal `json:"width"`
	Height    decimal.Decimal `json:"height"`
	Depth     decimal.Decimal `json:"depth"`
	MaxWeight decimal.Decimal `json:"max_weight"`
}

// Model validates the spec and builds the bin model.
func (s BinSpec) Model() (*model.BinModel, error) {
	return model.NewBinModel(s.Name, s.Width, s.Height, s.Depth, s.MaxWeight)
}

// ItemSpec is the serialisable form of an item.
type ItemSpec struct {
	Name     string          `json:"name"`
	Width    decimal.Decimal `json:"width"`
	Height   decimal.Decimal `json:"height"`
	Depth    decimal.Decimal `json:"depth"`
	Weight   decimal.Decimal `json:"weight"`
	Priority int             `json:"priority,omitempty"`
}

// Item validates the spec and builds the item.
func (s ItemSpec) Item() (*model.Item, error) {
	it, err := model.NewItem(s.Name, s.Width, s.Height, s.Depth, s.Weight)
	if err != nil {
		return nil, err
	}
	it.Priority = s.Priority
	return it, nil
}

// Manifest is the on-disk description of a packing job.
type Manifest struct {
	DefaultBin *BinSpec   `json:"default_bin,omitempty"`
	Fleet      []BinSpec  `json:"fleet"`
	Items      []ItemSpec `json:"items"`
}

// Build turns the manifest into engine inputs, validating every entry.
func (m Manifest) Build() (fleet []*model.BinModel, defaultBin *model.BinModel, items []*model.Item, err error) {
	for _, spec := range m.Fleet {
		bin, buildErr := spec.Model()
		if buildErr != nil {
			return nil, nil, nil, fmt.Errorf("fleet: %w", buildErr)
		}
		fleet = append(fleet, bin)
	}
	if m.DefaultBin != nil {
		defaultBin, err = m.DefaultBin.Model()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("default bin: %w", err)
		}
	}
	for _, spec := range m.Items {
		it, buildErr := spec.Item()
		if buildErr != nil {
			return nil, nil, nil, fmt.Errorf("batch: %w", buildErr)
		}
		items = append(items, it)
	}
	return fleet, defaultBin, items, nil
}

// Load reads a manifest from the given JSON file.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m, nil
}

// Save writes the manifest to the given JSON file, creating parent
// directories if they do not exist.
func Save(path string, m Manifest) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
