// Package tiled provides a minimal reader for the Tiled map editor's JSON
// export format (.tmj). Only the parts the game consumes are modeled: map
// geometry, tile layers, and tileset tiles with custom properties.
package tiled

import (
	"encoding/json"
	"fmt"
	"io"
)

// Map is a parsed Tiled map.
type Map struct {
	Width      int       `json:"width"`      // Map width in cells
	Height     int       `json:"height"`     // Map height in cells
	TileWidth  int       `json:"tilewidth"`  // Tile width in pixels
	TileHeight int       `json:"tileheight"` // Tile height in pixels
	Layers     []Layer   `json:"layers"`
	Tilesets   []Tileset `json:"tilesets"`
}

// Layer is a single tile layer. Cell data is row-major, one global tile id
// (GID) per cell; GID 0 means the cell is empty.
type Layer struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Data   []uint32 `json:"data"`
}

// Tileset is a catalog of tile definitions referenced by the map's layers.
// Layer GIDs translate to tileset-local ids by subtracting FirstGID.
type Tileset struct {
	FirstGID   uint32 `json:"firstgid"`
	Name       string `json:"name"`
	TileWidth  int    `json:"tilewidth"`
	TileHeight int    `json:"tileheight"`
	Tiles      []Tile `json:"tiles"`
}

// Tile is a single tileset entry carrying optional custom properties.
type Tile struct {
	ID         uint32     `json:"id"`
	Properties []Property `json:"properties"`
}

// Property is one custom key/value pair attached to a tile.
type Property struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// HasProperty reports whether the tile carries a property with the given
// name, regardless of its type or value.
func (t Tile) HasProperty(name string) bool {
	for _, p := range t.Properties {
		if p.Name == name {
			return true
		}
	}
	return false
}

// BoolProperty returns the value of a boolean property. A missing property,
// or one of a different type, reads as false.
func (t Tile) BoolProperty(name string) bool {
	for _, p := range t.Properties {
		if p.Name == name {
			v, ok := p.Value.(bool)
			return ok && v
		}
	}
	return false
}

// GIDAt returns the global tile id at the given cell, or 0 if the cell is
// out of the layer's bounds.
func (l Layer) GIDAt(x, y int) uint32 {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return 0
	}
	return l.Data[y*l.Width+x]
}

// TileLayers returns the map's tile layers in document order, which is
// Tiled's bottom-to-top draw order.
func (m *Map) TileLayers() []Layer {
	layers := make([]Layer, 0, len(m.Layers))
	for _, l := range m.Layers {
		if l.Type == "tilelayer" {
			layers = append(layers, l)
		}
	}
	return layers
}

// Parse reads a Tiled JSON map from r and validates the parts the pipeline
// depends on. All failures are reported as a *ParseError.
func Parse(r io.Reader) (*Map, error) {
	var m Map
	dec := json.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return nil, &ParseError{Reason: "invalid JSON", Err: err}
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Map) validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return &ParseError{Reason: fmt.Sprintf("map dimensions %dx%d are not positive", m.Width, m.Height)}
	}
	if len(m.Tilesets) == 0 {
		return &ParseError{Reason: "map has no tileset"}
	}
	tileLayers := 0
	for _, l := range m.Layers {
		if l.Type != "tilelayer" {
			continue
		}
		tileLayers++
		if l.Width != m.Width || l.Height != m.Height {
			return &ParseError{Reason: fmt.Sprintf("layer %q is %dx%d, map is %dx%d", l.Name, l.Width, l.Height, m.Width, m.Height)}
		}
		if len(l.Data) != l.Width*l.Height {
			return &ParseError{Reason: fmt.Sprintf("layer %q has %d cells, expected %d", l.Name, len(l.Data), l.Width*l.Height)}
		}
	}
	if tileLayers == 0 {
		return &ParseError{Reason: "map has no tile layers"}
	}
	return nil
}

// ParseError reports an unreadable or structurally invalid map asset.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed map asset: %s: %v", e.Reason, e.Err)
	}
	return "malformed map asset: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
