package world

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/towerband/internal/telemetry"
	"github.com/samdwyer/towerband/internal/tiled"
)

// Level is the published result of loading one map: the walkability grid,
// the start and end cells, every route between them, and the per-cell
// placement records. A Level is built in one synchronous pass and is
// read-only afterwards; nothing mutates it while the map is active.
type Level struct {
	ID         uuid.UUID
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Grid       *Grid
	Start      Coord
	End        Coord
	Routes     []Route
	Placements []Placement
}

// LoadLevel runs the full ingestion pipeline on a map asset: parse,
// classify the tileset, build the walkability grid, and enumerate routes.
// Any failure aborts the load as a whole; a partial Level is never
// returned.
func LoadLevel(ctx context.Context, r io.Reader, limits SearchLimits) (*Level, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "level.load")
	defer span.End()

	startTime := time.Now()

	m, err := tiled.Parse(r)
	if err != nil {
		return nil, err
	}

	// The original maps reference a single tileset; layer GIDs are local
	// to it.
	class, err := ClassifyTileset(m.Tilesets[0])
	if err != nil {
		return nil, err
	}

	built, err := BuildGrid(m, class)
	if err != nil {
		return nil, err
	}

	routes, err := EnumerateRoutes(built.Grid, built.Start, built.End, limits)
	if err != nil {
		return nil, err
	}

	level := &Level{
		ID:         uuid.New(),
		Width:      m.Width,
		Height:     m.Height,
		TileWidth:  m.TileWidth,
		TileHeight: m.TileHeight,
		Grid:       built.Grid,
		Start:      built.Start,
		End:        built.End,
		Routes:     routes,
		Placements: built.Placements,
	}

	span.SetAttributes(
		attribute.String("level.id", level.ID.String()),
		attribute.Int("level.width", level.Width),
		attribute.Int("level.height", level.Height),
		attribute.Int("level.road_tiles", len(class.Roads)),
		attribute.Int("level.routes", len(routes)),
		attribute.Int("level.placements", len(built.Placements)),
		attribute.Int64("level.load_ms", time.Since(startTime).Milliseconds()),
	)
	return level, nil
}

// BuildPointCoords returns the coordinates of every construction-point cell.
func (l *Level) BuildPointCoords() []Coord {
	var coords []Coord
	for _, p := range l.Placements {
		if p.BuildPoint {
			coords = append(coords, p.Coord)
		}
	}
	return coords
}
