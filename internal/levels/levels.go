// Package levels provides the embedded level catalog: which map assets
// ship with the game and how they appear in the selection menu.
package levels

import (
	"errors"
	"io/fs"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/towerband/data"
)

// LevelDef describes one playable level loaded from the manifest.
type LevelDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "loop")
	Name   string `json:"name"`   // Display name (e.g., "The Loop")
	File   string `json:"file"`   // Map asset filename within the data directory
	Accent string `json:"accent"` // Hex color for the menu entry (e.g., "#4FC3F7")
}

// AccentColor returns the accent as a tcell.Color, falling back to white
// when the manifest value is unparsable.
func (d *LevelDef) AccentColor() tcell.Color {
	color, err := ParseHexColor(d.Accent)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// manifestFile represents the structure of levels.json.
type manifestFile struct {
	Levels []LevelDef `json:"levels"`
}

// Registry holds the loaded level catalog and resolves map assets.
type Registry struct {
	levels []LevelDef
	assets fs.FS
}

// NewRegistry creates a registry over the given definitions and asset
// filesystem.
func NewRegistry(defs []LevelDef, assets fs.FS) *Registry {
	return &Registry{levels: defs, assets: assets}
}

// LoadRegistry loads the catalog from the embedded levels.json.
func LoadRegistry() (*Registry, error) {
	manifest, err := data.Load[manifestFile]("levels.json")
	if err != nil {
		return nil, err
	}
	if len(manifest.Levels) == 0 {
		return nil, errors.New("no levels listed in levels.json")
	}
	return NewRegistry(manifest.Levels, data.FS()), nil
}

// MustLoadRegistry loads the catalog, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the level definition with the given ID, or nil if not
// found.
func (r *Registry) GetByID(id string) *LevelDef {
	for i := range r.levels {
		if r.levels[i].ID == id {
			return &r.levels[i]
		}
	}
	return nil
}

// All returns all level definitions in manifest order.
func (r *Registry) All() []LevelDef {
	return r.levels
}

// Count returns the number of levels in the catalog.
func (r *Registry) Count() int {
	return len(r.levels)
}

// Open opens the map asset for a level definition. The caller closes it.
func (r *Registry) Open(def *LevelDef) (fs.File, error) {
	return r.assets.Open(def.File)
}
