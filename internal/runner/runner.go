// Package runner provides the mobile agents that walk enumerated routes.
package runner

import (
	"github.com/samdwyer/towerband/internal/world"
)

// Runner is one agent walking a fixed route, one cell per tick.
type Runner struct {
	Route  world.Route // The route this runner follows, never mutated
	Step   int         // Index of the runner's current cell on the route
	Symbol rune        // Display symbol
}

// New creates a runner at the first cell of the given route.
func New(route world.Route) *Runner {
	return &Runner{
		Route:  route,
		Symbol: '@',
	}
}

// At returns the runner's current cell.
func (r *Runner) At() world.Coord {
	return r.Route[r.Step]
}

// Advance moves the runner one cell along its route. It reports whether
// the runner is still on the route; a finished runner stays on the last
// cell.
func (r *Runner) Advance() bool {
	if r.Done() {
		return false
	}
	r.Step++
	return true
}

// Done reports whether the runner has reached the end of its route.
func (r *Runner) Done() bool {
	return r.Step >= len(r.Route)-1
}
