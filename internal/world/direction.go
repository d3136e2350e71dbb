// Package world turns a parsed map asset into a walkability grid and the
// full set of routes a runner can take from the start cell to the end cell.
package world

import "fmt"

// Coord identifies a single grid cell. Coords are compared by value.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists all directions in mask-bit order. This is also the
// neighbor exploration order during route enumeration.
var Directions = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Offset returns the cell delta for moving one step in the direction.
// Y grows downward, matching Tiled's row order.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	}
	return 0, 0
}

// Bit returns the direction's bit in a DirectionMask.
func (d Direction) Bit() DirectionMask {
	return 1 << d
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	return "unknown"
}

// DirectionMask is the set of directions a runner may leave a cell in.
// Bit 0 is up, bit 1 right, bit 2 down, bit 3 left. The zero mask marks an
// impassable cell.
type DirectionMask uint8

// MaskAll permits movement in every direction. Start and end cells always
// carry this mask so runners can enter and leave them.
const MaskAll DirectionMask = 0b1111

// Allows reports whether movement in the given direction is permitted.
func (m DirectionMask) Allows(d Direction) bool {
	return m&d.Bit() != 0
}

// Passable reports whether the cell can be traversed at all.
func (m DirectionMask) Passable() bool {
	return m != 0
}

func (m DirectionMask) String() string {
	return fmt.Sprintf("%04b", uint8(m))
}
