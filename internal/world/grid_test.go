package world

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samdwyer/towerband/internal/tiled"
)

// testMap assembles a tiled.Map from row-major layer data, bottom layer
// first, matching Tiled's document order.
func testMap(width, height int, layerData ...[]uint32) *tiled.Map {
	m := &tiled.Map{Width: width, Height: height, TileWidth: 64, TileHeight: 64}
	for _, data := range layerData {
		m.Layers = append(m.Layers, tiled.Layer{
			Type:   "tilelayer",
			Width:  width,
			Height: height,
			Data:   data,
		})
	}
	return m
}

// testClassification covers the tile ids used by the grid tests:
// 0 = scenery, 1 = road up/down, 2 = road left/right, 3 = construction
// point, 4 = start, 5 = end.
func testClassification() *Classification {
	return &Classification{
		Roads: map[uint32]DirectionMask{
			1: DirUp.Bit() | DirDown.Bit(),
			2: DirLeft.Bit() | DirRight.Bit(),
		},
		BuildPoints: map[uint32]bool{3: true},
		StartID:     4,
		EndID:       5,
	}
}

func TestBuildGrid(t *testing.T) {
	// 3x1 map: start, road, end. GIDs are tile id + 1.
	m := testMap(3, 1, []uint32{5, 3, 6})

	built, err := BuildGrid(m, testClassification())
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}

	if want := (Coord{X: 0, Y: 0}); built.Start != want {
		t.Errorf("Start = %v, want %v", built.Start, want)
	}
	if want := (Coord{X: 2, Y: 0}); built.End != want {
		t.Errorf("End = %v, want %v", built.End, want)
	}
	if got := built.Grid.At(Coord{X: 1, Y: 0}); got != DirLeft.Bit()|DirRight.Bit() {
		t.Errorf("road cell mask = %v, want left|right", got)
	}
}

func TestBuildGridStartEndFullMask(t *testing.T) {
	// The start/end tile ids also appear in the road table with partial
	// masks; the full mask must win on their cells.
	class := testClassification()
	class.Roads[4] = DirRight.Bit()
	class.Roads[5] = DirLeft.Bit()

	m := testMap(2, 1, []uint32{5, 6})
	built, err := BuildGrid(m, class)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}

	if got := built.Grid.At(built.Start); got != MaskAll {
		t.Errorf("start mask = %v, want %v", got, MaskAll)
	}
	if got := built.Grid.At(built.End); got != MaskAll {
		t.Errorf("end mask = %v, want %v", got, MaskAll)
	}
}

func TestBuildGridLayerPrecedence(t *testing.T) {
	// One cell, two layers with conflicting road tiles plus start/end on
	// the top layer's remaining cells. The topmost layer must win and the
	// lower layer must not overwrite the claimed cell.
	lower := []uint32{5, 2, 6} // road up/down in the middle
	upper := []uint32{0, 3, 0} // road left/right in the middle

	built, err := BuildGrid(testMap(3, 1, lower, upper), testClassification())
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}

	if got, want := built.Grid.At(Coord{X: 1, Y: 0}), DirLeft.Bit()|DirRight.Bit(); got != want {
		t.Errorf("contested cell mask = %v, want topmost layer's %v", got, want)
	}
}

func TestBuildGridPlacements(t *testing.T) {
	m := testMap(2, 2, []uint32{5, 4, 1, 6})

	built, err := BuildGrid(m, testClassification())
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}

	want := []Placement{
		{Coord: Coord{X: 0, Y: 0}, TileID: 4},
		{Coord: Coord{X: 1, Y: 0}, TileID: 3, BuildPoint: true},
		{Coord: Coord{X: 0, Y: 1}, TileID: 0},
		{Coord: Coord{X: 1, Y: 1}, TileID: 5},
	}
	if diff := cmp.Diff(want, built.Placements); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}

	// The scenery and construction-point cells stay impassable.
	if built.Grid.At(Coord{X: 1, Y: 0}).Passable() {
		t.Error("construction point cell should be impassable")
	}
	if built.Grid.At(Coord{X: 0, Y: 1}).Passable() {
		t.Error("scenery cell should be impassable")
	}
}

func TestBuildGridMissingRoles(t *testing.T) {
	t.Run("start never placed", func(t *testing.T) {
		_, err := BuildGrid(testMap(2, 1, []uint32{3, 6}), testClassification())
		assertConfigError(t, err)
	})

	t.Run("end never placed", func(t *testing.T) {
		_, err := BuildGrid(testMap(2, 1, []uint32{5, 3}), testClassification())
		assertConfigError(t, err)
	})

	t.Run("empty map", func(t *testing.T) {
		_, err := BuildGrid(testMap(2, 1, []uint32{0, 0}), testClassification())
		assertConfigError(t, err)
	})
}
