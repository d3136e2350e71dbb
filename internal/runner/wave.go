package runner

import (
	"github.com/samdwyer/towerband/internal/world"
)

// Wave manages a group of runners released onto a level's routes. Routes
// are assigned round-robin in enumeration order; smarter selection policies
// can replace pickRoute later without touching callers.
type Wave struct {
	routes  []world.Route
	next    int // Index of the route the next spawn receives
	Runners []*Runner
}

// NewWave creates a wave over the level's route set. A level with no
// routes yields a wave that never spawns.
func NewWave(routes []world.Route) *Wave {
	return &Wave{routes: routes}
}

// Spawn releases one new runner at the start of the next route. It returns
// nil when the level has no routes.
func (w *Wave) Spawn() *Runner {
	route := w.pickRoute()
	if route == nil {
		return nil
	}
	r := New(route)
	w.Runners = append(w.Runners, r)
	return r
}

// pickRoute returns the next route in round-robin order.
func (w *Wave) pickRoute() world.Route {
	if len(w.routes) == 0 {
		return nil
	}
	route := w.routes[w.next]
	w.next = (w.next + 1) % len(w.routes)
	return route
}

// Advance steps every active runner one cell and reports how many runners
// reached the end this tick.
func (w *Wave) Advance() int {
	arrived := 0
	for _, r := range w.Runners {
		if r.Done() {
			continue
		}
		r.Advance()
		if r.Done() {
			arrived++
		}
	}
	return arrived
}

// Active returns the runners still walking their routes.
func (w *Wave) Active() []*Runner {
	active := make([]*Runner, 0, len(w.Runners))
	for _, r := range w.Runners {
		if !r.Done() {
			active = append(active, r)
		}
	}
	return active
}
