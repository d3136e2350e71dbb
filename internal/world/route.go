package world

import (
	"slices"
)

// Route is one cycle-free walk from the start cell to the end cell. The
// first coordinate is the start, the last is the end, and no coordinate
// repeats.
type Route []Coord

// Contains reports whether the route visits the coordinate.
func (r Route) Contains(c Coord) bool {
	return slices.Contains(r, c)
}

// SearchLimits bounds route enumeration. A dense map holds exponentially
// many simple routes, so both the number of routes and the recursion depth
// are capped; exceeding either aborts the load with an ExplosionError.
type SearchLimits struct {
	MaxRoutes int // Maximum routes to collect
	MaxDepth  int // Maximum route length in cells
}

// DefaultSearchLimits are generous enough for hand-authored maps while
// keeping adversarial geometry from exhausting memory.
var DefaultSearchLimits = SearchLimits{
	MaxRoutes: 4096,
	MaxDepth:  1024,
}

// EnumerateRoutes finds every simple route from start to end on the grid.
//
// The search is an exhaustive depth-first walk. From each cell it tries
// neighbors in mask-bit order (up, right, down, left); a step is legal when
// the current cell's mask allows the direction and the destination is on
// the grid. A neighbor already on the in-progress route is pruned, so no
// route revisits a cell. Routes sharing a prefix are all reported.
//
// An unreachable end yields an empty, non-nil slice and no error. The set
// of routes returned is deterministic for a fixed grid; their order follows
// the exploration order and is not part of the contract.
func EnumerateRoutes(grid *Grid, start, end Coord, limits SearchLimits) ([]Route, error) {
	s := &routeSearch{
		grid:   grid,
		end:    end,
		limits: limits,
		routes: []Route{},
		path:   make(Route, 0, 64),
	}
	s.path = append(s.path, start)
	if err := s.walk(); err != nil {
		return nil, err
	}
	return s.routes, nil
}

// routeSearch carries the shared accumulator and the single owned path
// buffer. The buffer is extended before each recursive step and truncated
// after it, so sibling branches never observe each other's tentative state.
type routeSearch struct {
	grid   *Grid
	end    Coord
	limits SearchLimits
	routes []Route
	path   Route
}

func (s *routeSearch) walk() error {
	here := s.path[len(s.path)-1]
	if here == s.end {
		if s.limits.MaxRoutes > 0 && len(s.routes) >= s.limits.MaxRoutes {
			return &ExplosionError{
				Routes:    len(s.routes),
				Depth:     len(s.path),
				MaxRoutes: s.limits.MaxRoutes,
				MaxDepth:  s.limits.MaxDepth,
			}
		}
		s.routes = append(s.routes, slices.Clone(s.path))
		return nil
	}
	if s.limits.MaxDepth > 0 && len(s.path) >= s.limits.MaxDepth {
		return &ExplosionError{
			Routes:    len(s.routes),
			Depth:     len(s.path) + 1,
			MaxRoutes: s.limits.MaxRoutes,
			MaxDepth:  s.limits.MaxDepth,
		}
	}

	mask := s.grid.At(here)
	for _, dir := range Directions {
		if !mask.Allows(dir) {
			continue
		}
		dx, dy := dir.Offset()
		next := Coord{X: here.X + dx, Y: here.Y + dy}
		if !s.grid.InBounds(next) || s.path.Contains(next) {
			continue
		}
		s.path = append(s.path, next)
		err := s.walk()
		s.path = s.path[:len(s.path)-1]
		if err != nil {
			return err
		}
	}
	return nil
}
