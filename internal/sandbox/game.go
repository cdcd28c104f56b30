// Package sandbox implements the interactive sandbox as a pure game: it
// turns input frames into simulation changes and draws the world into a
// core.Screen. It has no Bubble Tea dependency.
package sandbox

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sandbox/internal/config"
	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/element"
	"github.com/vovakirdan/tui-sandbox/internal/logging"
	"github.com/vovakirdan/tui-sandbox/internal/physics"
	"github.com/vovakirdan/tui-sandbox/internal/reaction"
	"github.com/vovakirdan/tui-sandbox/internal/registry"
	"github.com/vovakirdan/tui-sandbox/internal/world"
)

// Screen rows reserved above and below the world view.
const (
	headerRows = 1
	footerRows = 1
)

// Sample is the population of each kind at a tick.
type Sample struct {
	Tick       uint64
	Population [element.KindCount]int
}

// Total returns the number of particles in the sample.
func (s Sample) Total() int {
	n := 0
	for _, c := range s.Population {
		n += c
	}
	return n
}

// Game is one sandbox session.
type Game struct {
	cfg   config.SandboxConfig
	rules *reaction.Registry
	scene registry.Scene
	log   *log.Logger

	sim     *world.Simulation
	seed    int64
	started time.Time

	screenW, screenH int
	view             core.Rect // world view on screen
	pad              core.Point

	cursor   core.Point
	selected element.Kind
	brush    int
	pinned   bool
	paused   bool
	status   string

	samples []Sample
}

// New creates a sandbox game. A nil logger discards output.
func New(cfg config.SandboxConfig, rules *reaction.Registry, scene registry.Scene, logger *log.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	selected, err := cfg.InitialElement()
	if err != nil {
		selected = element.Sand
	}
	return &Game{
		cfg:      cfg,
		rules:    rules,
		scene:    scene,
		log:      logger,
		selected: selected,
		brush:    max(cfg.Brush.Size, 1),
	}
}

// ID returns the scene id.
func (g *Game) ID() string {
	return g.scene.ID()
}

// Title returns the scene title.
func (g *Game) Title() string {
	return g.scene.Title()
}

// Reset builds a fresh world for the screen size and populates the scene.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.screenW, g.screenH = rc.ScreenW, rc.ScreenH
	g.seed = rc.Seed
	g.layout()

	w, h := g.worldSize()
	lattice := physics.NewLattice(g.cfg.PhysicsParams(rc.Seed))
	g.sim = world.New(world.Config{
		Width:    w,
		Height:   h,
		Margin:   g.cfg.World.Margin,
		Boundary: g.cfg.Boundary,
	}, g.rules, lattice, g.log)
	g.scene.Populate(g.sim)

	g.cursor = core.Point{X: g.view.X + g.view.W/2, Y: g.view.Y + g.view.H/2}
	g.paused = false
	g.samples = g.samples[:0]
	g.started = time.Now()
	g.sample()
	g.setStatus("scene %s: %d particles", g.scene.ID(), g.sim.Count())
	g.log.Info("sandbox reset", "scene", g.scene.ID(), "width", w, "height", h, "seed", rc.Seed)
}

// Resize adapts the view to a new screen size. A world that fits the
// terminal is resized with it; the particles are kept.
func (g *Game) Resize(w, h int) {
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW, g.screenH = w, h
	g.layout()
	if g.sim != nil {
		g.sim.Resize(g.worldSize())
	}
	g.cursor = g.view.ClampPoint(g.cursor)
}

func (g *Game) layout() {
	g.view = core.NewRect(0, headerRows, g.screenW, max(g.screenH-headerRows-footerRows, 1))
	w, h := g.worldSize()
	g.pad = core.Point{X: (g.view.W - w) / 2, Y: (g.view.H - h) / 2}
}

// worldSize returns the configured world size, or the view size for a
// dimension left at zero.
func (g *Game) worldSize() (int, int) {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	if w <= 0 {
		w = g.view.W
	}
	if h <= 0 {
		h = g.view.H
	}
	return w, h
}

// Simulation exposes the running world.
func (g *Game) Simulation() *world.Simulation {
	return g.sim
}

// Selected returns the element placed by the brush.
func (g *Game) Selected() element.Kind {
	return g.selected
}

// Cursor returns the cursor position in screen cells.
func (g *Game) Cursor() core.Point {
	return g.cursor
}

// Brush returns the brush radius in cells; 1 is a single cell.
func (g *Game) Brush() int {
	return g.brush
}

// Samples returns the population history.
func (g *Game) Samples() []Sample {
	return g.samples
}

// Started returns when the current world was built.
func (g *Game) Started() time.Time {
	return g.started
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused, Status: g.status}
	if g.sim != nil {
		st.Population = g.sim.Count()
		st.Ticks = g.sim.Ticks()
	}
	return st
}

func (g *Game) setStatus(format string, args ...any) {
	g.status = fmt.Sprintf(format, args...)
}

// ScreenToWorld maps a screen cell to the world cell under it.
func (g *Game) ScreenToWorld(p core.Point) world.Vec2 {
	b := g.sim.Bounds()
	return world.Vec2{
		X: b.Min.X + float64(p.X-g.view.X-g.pad.X),
		Y: b.Max.Y - float64(p.Y-g.view.Y-g.pad.Y),
	}
}

// WorldToScreen maps a world position to a screen cell. It reports false
// when the position is outside the view.
func (g *Game) WorldToScreen(v world.Vec2) (core.Point, bool) {
	b := g.sim.Bounds()
	cx, cy := cellOf(v)
	p := core.Point{
		X: g.view.X + g.pad.X + cx - int(b.Min.X),
		Y: g.view.Y + g.pad.Y + int(b.Max.Y) - cy,
	}
	return p, g.view.Contains(p.X, p.Y)
}

func cellOf(v world.Vec2) (int, int) {
	return roundInt(v.X), roundInt(v.Y)
}
