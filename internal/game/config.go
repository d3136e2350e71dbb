package game

import (
	"os"
	"strconv"

	"github.com/samdwyer/towerband/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Limits bounds route enumeration during level loads.
	Limits world.SearchLimits
}

// ConfigFromEnv builds a Config from the environment, starting from the
// default search limits. TOWERBAND_MAX_ROUTES and TOWERBAND_MAX_DEPTH
// override the bounds; unparsable values are ignored.
func ConfigFromEnv() Config {
	cfg := Config{Limits: world.DefaultSearchLimits}
	if v, err := strconv.Atoi(os.Getenv("TOWERBAND_MAX_ROUTES")); err == nil && v > 0 {
		cfg.Limits.MaxRoutes = v
	}
	if v, err := strconv.Atoi(os.Getenv("TOWERBAND_MAX_DEPTH")); err == nil && v > 0 {
		cfg.Limits.MaxDepth = v
	}
	return cfg
}
