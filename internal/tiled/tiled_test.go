package tiled

import (
	"errors"
	"strings"
	"testing"
)

const sampleMap = `{
	"width": 2, "height": 2, "tilewidth": 64, "tileheight": 64,
	"layers": [
		{"name": "ground", "type": "tilelayer", "width": 2, "height": 2, "data": [1, 1, 1, 1]},
		{"name": "road", "type": "tilelayer", "width": 2, "height": 2, "data": [0, 2, 0, 0]},
		{"name": "markers", "type": "objectgroup"}
	],
	"tilesets": [{
		"firstgid": 1, "name": "t", "tilewidth": 64, "tileheight": 64,
		"tiles": [
			{"id": 0, "properties": []},
			{"id": 1, "properties": [
				{"name": "road", "type": "bool", "value": true},
				{"name": "up", "type": "bool", "value": true},
				{"name": "down", "type": "bool", "value": false}
			]}
		]
	}]
}`

func TestParse(t *testing.T) {
	m, err := Parse(strings.NewReader(sampleMap))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if m.Width != 2 || m.Height != 2 {
		t.Errorf("Expected 2x2 map, got %dx%d", m.Width, m.Height)
	}

	layers := m.TileLayers()
	if len(layers) != 2 {
		t.Fatalf("Expected 2 tile layers, got %d", len(layers))
	}
	if layers[0].Name != "ground" || layers[1].Name != "road" {
		t.Errorf("Tile layers out of document order: %q, %q", layers[0].Name, layers[1].Name)
	}

	if gid := layers[1].GIDAt(1, 0); gid != 2 {
		t.Errorf("GIDAt(1,0) = %d, want 2", gid)
	}
	if gid := layers[1].GIDAt(5, 5); gid != 0 {
		t.Errorf("GIDAt out of bounds = %d, want 0", gid)
	}
}

func TestTileProperties(t *testing.T) {
	m, err := Parse(strings.NewReader(sampleMap))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	road := m.Tilesets[0].Tiles[1]
	if !road.HasProperty("road") {
		t.Error("road tile should have the road property")
	}
	if road.HasProperty("construction-point") {
		t.Error("road tile should not have the construction-point property")
	}
	if !road.BoolProperty("up") {
		t.Error("up flag should read as true")
	}
	if road.BoolProperty("down") {
		t.Error("explicit false flag should read as false")
	}
	if road.BoolProperty("left") {
		t.Error("missing flag should read as false")
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not JSON", "{broken"},
		{"no tilesets", `{"width": 1, "height": 1, "layers": [{"type": "tilelayer", "width": 1, "height": 1, "data": [0]}], "tilesets": []}`},
		{"no tile layers", `{"width": 1, "height": 1, "layers": [], "tilesets": [{"firstgid": 1}]}`},
		{"zero dimensions", `{"width": 0, "height": 1, "layers": [], "tilesets": [{"firstgid": 1}]}`},
		{"layer size mismatch", `{"width": 2, "height": 1, "layers": [{"type": "tilelayer", "width": 1, "height": 1, "data": [0]}], "tilesets": [{"firstgid": 1}]}`},
		{"short layer data", `{"width": 2, "height": 1, "layers": [{"type": "tilelayer", "width": 2, "height": 1, "data": [0]}], "tilesets": [{"firstgid": 1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Parse should fail")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("Expected *ParseError, got %T: %v", err, err)
			}
		})
	}
}
