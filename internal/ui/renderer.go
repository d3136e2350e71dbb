package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/towerband/internal/runner"
	"github.com/samdwyer/towerband/internal/world"
)

// routePalette colors route overlays; routes beyond the palette wrap.
var routePalette = []tcell.Color{
	tcell.ColorAqua,
	tcell.ColorFuchsia,
	tcell.ColorLime,
	tcell.ColorOrange,
	tcell.ColorYellow,
}

// Renderer draws a loaded level and its runners to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderLevel draws the level's cells, optional route overlays, and the
// active runners.
func (r *Renderer) RenderLevel(level *world.Level, wave *runner.Wave, showRoutes bool) {
	r.screen.Clear()

	for _, p := range level.Placements {
		mask := level.Grid.At(p.Coord)
		ch, style := cellGlyph(p, mask)
		r.screen.SetContent(p.Coord.X, p.Coord.Y, ch, style)
	}

	if showRoutes {
		for i, route := range level.Routes {
			style := tcell.StyleDefault.Foreground(routePalette[i%len(routePalette)])
			for _, c := range route {
				r.screen.SetContent(c.X, c.Y, '·', style)
			}
		}
	}

	// Start/end markers stay visible above route overlays.
	markStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.SetContent(level.Start.X, level.Start.Y, 'S', markStyle)
	r.screen.SetContent(level.End.X, level.End.Y, 'E', markStyle)

	if wave != nil {
		runnerStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		for _, a := range wave.Active() {
			c := a.At()
			r.screen.SetContent(c.X, c.Y, a.Symbol, runnerStyle)
		}
	}

	r.RenderMessage(fmt.Sprintf("%d routes  [r] routes  [esc] menu  [q] quit", len(level.Routes)), level.Height+1)
	r.screen.Show()
}

// cellGlyph picks the rune and style for one placed tile.
func cellGlyph(p world.Placement, mask world.DirectionMask) (rune, tcell.Style) {
	if p.BuildPoint {
		return '^', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
	if !mask.Passable() {
		return '.', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
	return maskRune(mask), tcell.StyleDefault.Foreground(tcell.ColorGray)
}

// maskRune maps a direction mask to a box-drawing rune for display.
func maskRune(mask world.DirectionMask) rune {
	up := mask.Allows(world.DirUp)
	right := mask.Allows(world.DirRight)
	down := mask.Allows(world.DirDown)
	left := mask.Allows(world.DirLeft)

	switch {
	case up && right && down && left:
		return '┼'
	case up && down && !right && !left:
		return '│'
	case right && left && !up && !down:
		return '─'
	case right && down:
		return '┌'
	case down && left:
		return '┐'
	case up && right:
		return '└'
	case up && left:
		return '┘'
	default:
		return '+'
	}
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
