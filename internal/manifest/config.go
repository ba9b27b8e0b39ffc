package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Defaults holds the engine settings persisted between runs.
type Defaults struct {
	Strategy         string   `json:"strategy"`
	NumberOfDecimals int32    `json:"number_of_decimals"`
	HeightWeight     float64  `json:"height_weight"`
	CompactWeight    float64  `json:"compact_weight"`
	Constraints      []string `json:"constraints"`
}

// DefaultSettings returns the canonical engine defaults.
func DefaultSettings() Defaults {
	return Defaults{
		Strategy:         "greedy",
		NumberOfDecimals: 3,
		HeightWeight:     0.3,
		CompactWeight:    0.2,
		Constraints:      []string{"weight_within_limit", "fits_inside_bin", "no_overlap"},
	}
}

// DefaultSettingsPath returns ~/.cargopack/config.json.
func DefaultSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cargopack", "config.json"), nil
}

// SaveSettings writes the settings to the specified JSON file, creating
// parent directories if needed.
func SaveSettings(path string, s Defaults) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSettings reads settings from the specified JSON file. If the file does
// not exist, it returns the defaults and saves them.
func LoadSettings(path string) (Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s := DefaultSettings()
			if saveErr := SaveSettings(path, s); saveErr != nil {
				return s, saveErr
			}
			return s, nil
		}
		return Defaults{}, err
	}
	var s Defaults
	if err := json.Unmarshal(data, &s); err != nil {
		return Defaults{}, err
	}
	return s, nil
}
