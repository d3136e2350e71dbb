package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/towerband/internal/levels"
	"github.com/samdwyer/towerband/internal/runner"
	"github.com/samdwyer/towerband/internal/telemetry"
	"github.com/samdwyer/towerband/internal/ui"
	"github.com/samdwyer/towerband/internal/world"
)

const (
	tickInterval  = 150 * time.Millisecond
	spawnInterval = 8 // Ticks between runner spawns
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	registry *levels.Registry

	state      State
	level      *world.Level
	wave       *runner.Wave
	showRoutes bool
	statusLine string
	ticks      int
	running    bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	registry, err := levels.LoadRegistry()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		registry: registry,
		state:    StateMenu,
		running:  true,
	}, nil
}

// Run executes the main game loop: a fixed tick driving runner movement,
// interleaved with terminal events.
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	g.render()
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ctx, ev)
			g.render()
		case <-ticker.C:
			if g.state == StatePlaying {
				g.tick()
				g.render()
			}
		}
	}

	g.screen.Close()
	return nil
}

// tick advances the simulation by one step.
func (g *Game) tick() {
	g.ticks++
	if g.ticks%spawnInterval == 1 {
		g.wave.Spawn()
	}
	g.wave.Advance()
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input for the current state.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		if g.state == StatePlaying {
			g.leaveLevel()
		} else {
			g.running = false
		}
		return
	case tcell.KeyCtrlC:
		g.running = false
		return
	}

	if ev.Key() != tcell.KeyRune {
		return
	}
	switch r := ev.Rune(); {
	case r == 'q' || r == 'Q':
		g.running = false
	case r == 'r' || r == 'R':
		g.showRoutes = !g.showRoutes
	case g.state == StateMenu && r >= '1' && r <= '9':
		idx := int(r - '1')
		if idx < g.registry.Count() {
			g.selectLevel(ctx, &g.registry.All()[idx])
		}
	}
}

// selectLevel runs the load pipeline for the chosen level. On failure the
// menu stays active and shows the cause; no partial level is ever entered.
func (g *Game) selectLevel(ctx context.Context, def *levels.LevelDef) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.select_level")
	defer span.End()
	span.SetAttributes(attribute.String("level.name", def.Name))

	asset, err := g.registry.Open(def)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		g.statusLine = fmt.Sprintf("cannot open %s: %v", def.File, err)
		return
	}
	defer asset.Close()

	level, err := world.LoadLevel(ctx, asset, g.cfg.Limits)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		g.statusLine = fmt.Sprintf("cannot load %s: %v", def.Name, err)
		return
	}

	g.level = level
	g.wave = runner.NewWave(level.Routes)
	g.ticks = 0
	g.statusLine = ""
	g.state = StatePlaying
}

// leaveLevel returns to the menu, dropping the active level.
func (g *Game) leaveLevel() {
	g.level = nil
	g.wave = nil
	g.state = StateMenu
}

// render draws the current state.
func (g *Game) render() {
	switch g.state {
	case StateMenu:
		g.renderMenu()
	case StatePlaying:
		g.renderer.RenderLevel(g.level, g.wave, g.showRoutes)
	}
}

// renderMenu draws the level-selection list and any load error.
func (g *Game) renderMenu() {
	g.screen.Clear()
	g.renderer.RenderMessage("towerband - pick a level", 1)
	for i, def := range g.registry.All() {
		line := fmt.Sprintf("  [%d] %s", i+1, def.Name)
		style := tcell.StyleDefault.Foreground(def.AccentColor())
		for col, ch := range line {
			g.screen.SetContent(col, 3+i, ch, style)
		}
	}
	if g.statusLine != "" {
		g.renderer.RenderMessage(g.statusLine, 4+g.registry.Count())
	}
	g.renderer.RenderMessage("[q] quit", 6+g.registry.Count())
	g.screen.Show()
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
