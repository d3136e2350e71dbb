package world

import (
	"github.com/samdwyer/towerband/internal/tiled"
)

// Grid is the per-cell walkability map. Each cell holds the directions a
// runner may leave it in; the zero mask means the cell is impassable.
type Grid struct {
	Width  int
	Height int
	cells  []DirectionMask
}

// NewGrid creates an impassable grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]DirectionMask, width*height),
	}
}

// InBounds reports whether the coordinate lies on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// At returns the mask at the coordinate, or the zero mask out of bounds.
func (g *Grid) At(c Coord) DirectionMask {
	if !g.InBounds(c) {
		return 0
	}
	return g.cells[c.Y*g.Width+c.X]
}

// Set assigns the mask at the coordinate. Out-of-bounds sets are ignored.
func (g *Grid) Set(c Coord, m DirectionMask) {
	if !g.InBounds(c) {
		return
	}
	g.cells[c.Y*g.Width+c.X] = m
}

// Placement is the presentation record for one occupied cell. The renderer
// and tower placement use it; the route pipeline does not depend on it.
type Placement struct {
	Coord      Coord
	TileID     uint32
	BuildPoint bool
}

// BuildResult is everything the grid builder derives from the map geometry.
type BuildResult struct {
	Grid       *Grid
	Start      Coord
	End        Coord
	Placements []Placement
}

// BuildGrid replays the map's tile layers into a walkability grid and
// locates the start and end cells.
//
// Layers are processed from the last (topmost in Tiled's draw order) to the
// first, and a cell claimed by a higher layer is never overwritten by a
// lower one. Within a layer, cells scan top-to-bottom, left-to-right.
//
// Road cells take the mask derived from their tile's directional flags.
// The start and end cells always get the full mask, overriding any road
// flags on the same tile, so they are enterable and exitable from every
// side. Every occupied cell also yields a Placement record, topmost tile
// winning there too.
func BuildGrid(m *tiled.Map, class *Classification) (*BuildResult, error) {
	grid := NewGrid(m.Width, m.Height)
	assigned := make([]bool, m.Width*m.Height)
	placements := make([]Placement, 0, m.Width*m.Height)

	var start, end Coord
	haveStart, haveEnd := false, false

	layers := m.TileLayers()
	for i := len(layers) - 1; i >= 0; i-- {
		layer := layers[i]
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				gid := layer.GIDAt(x, y)
				if gid == 0 {
					continue
				}
				if assigned[y*m.Width+x] {
					continue
				}
				assigned[y*m.Width+x] = true

				// Layer GIDs are 1-based, tileset ids 0-based.
				id := gid - 1
				c := Coord{X: x, Y: y}

				switch {
				case id == class.StartID:
					start, haveStart = c, true
					grid.Set(c, MaskAll)
				case id == class.EndID:
					end, haveEnd = c, true
					grid.Set(c, MaskAll)
				case class.IsRoad(id):
					grid.Set(c, class.Roads[id])
				}

				placements = append(placements, Placement{
					Coord:      c,
					TileID:     id,
					BuildPoint: class.IsBuildPoint(id),
				})
			}
		}
	}

	if !haveStart {
		return nil, &ConfigError{Reason: "start tile never appears on the map"}
	}
	if !haveEnd {
		return nil, &ConfigError{Reason: "end tile never appears on the map"}
	}

	return &BuildResult{
		Grid:       grid,
		Start:      start,
		End:        end,
		Placements: placements,
	}, nil
}
