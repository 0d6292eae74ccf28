// Package appconfig persists user preferences (beam parameters, layer height,
// build options, recoater settings) between runs. The build sequence itself is
// not persisted.
package appconfig

import (
	"encoding/json"
	"os"
	"path/filepath"

	"buildstudio/internal/build"
)

// Path is the preferences file, relative to the working directory.
const Path = "config/buildstudio.json"

// Prefs holds everything persisted across runs.
type Prefs struct {
	Beam        build.BeamParams       `json:"beam"`
	LayerHeight float32                `json:"layer_height"` // mm
	Options     build.Options          `json:"options"`
	Recoater    build.RecoaterSettings `json:"recoater"`
	ShowFPS     bool                   `json:"show_fps,omitempty"`
}

// Default returns the startup preferences: 100 µm spot, 100 W, 0.1 mm layers,
// all build options off.
func Default() Prefs {
	return Prefs{
		Beam:        build.DefaultBeamParams(),
		LayerHeight: 0.1,
		Recoater:    build.DefaultRecoaterSettings(),
	}
}

// Load reads preferences from Path. A missing or invalid file yields
// Default() without creating anything.
func Load() Prefs {
	return LoadFrom(Path)
}

// LoadFrom reads preferences from the given file.
func LoadFrom(path string) Prefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default()
	}
	if p.Beam.Validate() != nil || p.LayerHeight <= 0 {
		return Default()
	}
	return p
}

// Save writes preferences to Path, creating the config directory if needed.
func Save(p Prefs) error {
	return SaveTo(Path, p)
}

// SaveTo writes preferences to the given file.
func SaveTo(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
