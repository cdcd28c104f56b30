package sandbox

import (
	"math"

	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/element"
	"github.com/vovakirdan/tui-sandbox/internal/world"
)

// Step applies the frame's input and advances the world by one tick unless
// paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.handleInput(in)

	if !g.paused || in.Has(core.ActionStep) {
		g.sim.Tick()
		if every := g.cfg.Sampling.Every; every > 0 && g.sim.Ticks()%uint64(every) == 0 {
			g.sample()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	moves := map[core.Action]core.Point{
		core.ActionUp:    {X: 0, Y: -1},
		core.ActionDown:  {X: 0, Y: 1},
		core.ActionLeft:  {X: -1, Y: 0},
		core.ActionRight: {X: 1, Y: 0},
	}
	for a, d := range moves {
		if in.Has(a) {
			g.cursor = g.view.ClampPoint(core.Point{X: g.cursor.X + d.X, Y: g.cursor.Y + d.Y})
		}
	}

	if in.Select > 0 && in.Select <= int(element.KindCount) {
		g.selectKind(element.Kind(in.Select - 1))
	}
	if in.Has(core.ActionNextElement) {
		g.selectKind((g.selected + 1) % element.KindCount)
	}
	if in.Has(core.ActionPrevElement) {
		g.selectKind((g.selected + element.KindCount - 1) % element.KindCount)
	}

	if in.Has(core.ActionBrushUp) && g.brush < max(g.cfg.Brush.MaxSize, 1) {
		g.brush++
		g.setStatus("brush %d", g.brush)
	}
	if in.Has(core.ActionBrushDown) && g.brush > 1 {
		g.brush--
		g.setStatus("brush %d", g.brush)
	}
	if in.Has(core.ActionPin) {
		g.pinned = !g.pinned
		g.setStatus("pinned placement %s", onOff(g.pinned))
	}

	b := g.sim.Boundary()
	toggles := []struct {
		action core.Action
		side   *bool
		name   string
	}{
		{core.ActionToggleTop, &b.Top, "top"},
		{core.ActionToggleBottom, &b.Bottom, "bottom"},
		{core.ActionToggleLeft, &b.Left, "left"},
		{core.ActionToggleRight, &b.Right, "right"},
	}
	for _, t := range toggles {
		if in.Has(t.action) {
			*t.side = !*t.side
			g.setStatus("%s wall %s", t.name, onOff(*t.side))
		}
	}
	g.sim.SetBoundary(b)

	if in.Has(core.ActionClear) {
		g.sim.Clear()
		g.setStatus("cleared")
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if in.Has(core.ActionPlace) {
		g.place(g.cursor)
	}
	if in.Has(core.ActionErase) {
		g.erase(g.cursor)
	}
	for _, ev := range in.Pointer {
		if !g.view.Contains(ev.Cell.X, ev.Cell.Y) {
			continue
		}
		g.cursor = ev.Cell
		if ev.Erase {
			g.erase(ev.Cell)
		} else {
			g.place(ev.Cell)
		}
	}
}

func (g *Game) selectKind(k element.Kind) {
	g.selected = k
	g.setStatus("selected %s", element.Lookup(k).Name)
}

// brushCells returns the world cells covered by the brush at a screen cell.
func (g *Game) brushCells(at core.Point) []world.Vec2 {
	center := g.ScreenToWorld(at)
	r := g.brush - 1
	var out []world.Vec2
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			p := world.Vec2{X: center.X + float64(dx), Y: center.Y + float64(dy)}
			if g.sim.Bounds().Contains(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// place spawns the selected element on every empty cell under the brush.
// Occupied cells are skipped so holding the key does not pile particles up.
func (g *Game) place(at core.Point) {
	placed := 0
	for _, p := range g.brushCells(at) {
		if _, taken := g.sim.ParticleAt(p); taken {
			continue
		}
		if g.pinned {
			g.sim.SpawnPinned(g.selected, p)
		} else {
			g.sim.Spawn(g.selected, p)
		}
		placed++
	}
	if placed > 0 {
		g.log.Debug("placed", "kind", g.selected, "count", placed)
	}
}

func (g *Game) erase(at core.Point) {
	n := g.sim.EraseAt(g.ScreenToWorld(at), float64(g.brush-1))
	if n > 0 {
		g.setStatus("erased %d", n)
	}
}

func (g *Game) sample() {
	g.samples = append(g.samples, Sample{Tick: g.sim.Ticks(), Population: g.sim.Population()})
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func roundInt(f float64) int {
	return int(math.Floor(f + 0.5))
}
