package world

import "fmt"

// ConfigError reports a map asset whose tile metadata or geometry cannot
// support the game: missing or duplicated start/end roles, or tiles with
// conflicting role markers. Loading aborts; there is no fallback.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "map configuration: " + e.Reason
}

// ExplosionError reports that route enumeration exceeded its configured
// limits. Dense maps can hold exponentially many simple routes, so the
// search is bounded rather than allowed to exhaust memory.
type ExplosionError struct {
	Routes    int // Routes found when the search was abandoned
	Depth     int // Depth reached when the search was abandoned
	MaxRoutes int
	MaxDepth  int
}

func (e *ExplosionError) Error() string {
	if e.MaxDepth > 0 && e.Depth > e.MaxDepth {
		return fmt.Sprintf("route enumeration exceeded max depth %d", e.MaxDepth)
	}
	return fmt.Sprintf("route enumeration exceeded max routes %d", e.MaxRoutes)
}
