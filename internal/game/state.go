// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateMenu is the level-selection menu.
	StateMenu State = iota
	// StatePlaying is the active map with runners on their routes.
	StatePlaying
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}
