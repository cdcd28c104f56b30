package sandbox

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/element"
	"github.com/vovakirdan/tui-sandbox/internal/world"
)

const (
	wallGlyph = '▓'
	// glowScale is the carried energy at which a particle renders fully hot.
	glowScale = 4.0
)

// Render draws the header, the world and the palette bar.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}
	g.renderWalls(dst)
	g.renderParticles(dst)
	g.renderBrush(dst)
	g.renderHeader(dst)
	g.renderPalette(dst)
}

func (g *Game) renderWalls(dst *core.Screen) {
	b := g.sim.Bounds()
	cfg := g.sim.Boundary()
	wall := core.Cell{Rune: wallGlyph, Fg: core.ColorGray}

	for x := b.Min.X; x <= b.Max.X; x++ {
		if cfg.Top {
			g.plot(dst, world.Vec2{X: x, Y: b.Max.Y}, wall)
		}
		if cfg.Bottom {
			g.plot(dst, world.Vec2{X: x, Y: b.Min.Y}, wall)
		}
	}
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		if cfg.Left {
			g.plot(dst, world.Vec2{X: b.Min.X, Y: y}, wall)
		}
		if cfg.Right {
			g.plot(dst, world.Vec2{X: b.Max.X, Y: y}, wall)
		}
	}
}

func (g *Game) renderParticles(dst *core.Screen) {
	g.sim.Each(func(_ world.Handle, p world.Particle) {
		props := element.Lookup(p.Kind)
		color := props.Color
		if p.Energy > 0 {
			color = color.Glow(p.Energy / glowScale)
		}
		g.plot(dst, p.Position, core.Cell{Rune: props.Glyph, Fg: core.Color(color.Hex())})
	})
}

func (g *Game) renderBrush(dst *core.Screen) {
	for _, p := range g.brushCells(g.cursor) {
		sp, ok := g.WorldToScreen(p)
		if !ok {
			continue
		}
		c := dst.GetCell(sp.X, sp.Y)
		c.Bg = core.ColorDim
		dst.SetCell(sp.X, sp.Y, c)
	}
	c := dst.GetCell(g.cursor.X, g.cursor.Y)
	if c.Rune == ' ' {
		c.Rune = '+'
		c.Fg = core.ColorYellow
	}
	c.Bg = core.ColorDim
	dst.SetCell(g.cursor.X, g.cursor.Y, c)
}

func (g *Game) renderHeader(dst *core.Screen) {
	props := element.Lookup(g.selected)
	parts := []string{
		g.scene.Title(),
		fmt.Sprintf("%s %c", props.Name, props.Glyph),
		fmt.Sprintf("brush %d", g.brush),
		"walls " + g.sim.Boundary().String(),
		fmt.Sprintf("%d particles", g.sim.Count()),
		fmt.Sprintf("t=%d", g.sim.Ticks()),
	}
	if g.pinned {
		parts = append(parts, "PIN")
	}
	if g.paused {
		parts = append(parts, "PAUSED")
	}
	header := " " + strings.Join(parts, " │ ")
	dst.DrawTextColored(0, 0, header, core.ColorWhite)

	// The status goes flush right when it does not cover the header.
	if g.status != "" {
		x := dst.Width() - len([]rune(g.status)) - 1
		if x > len([]rune(header))+1 {
			dst.DrawTextColored(x, 0, g.status, core.ColorGray)
		}
	}
}

func (g *Game) renderPalette(dst *core.Screen) {
	y := dst.Height() - 1
	x := 1
	for _, k := range element.Kinds() {
		props := element.Lookup(k)
		label := fmt.Sprintf("%d %c %s", int(k)+1, props.Glyph, props.Name)
		fg := core.Color(props.Color.Hex())
		for _, r := range label {
			c := core.Cell{Rune: r, Fg: fg}
			if k == g.selected {
				c.Bg = core.ColorDim
			}
			dst.SetCell(x, y, c)
			x++
		}
		x += 2
	}
}

func (g *Game) plot(dst *core.Screen, p world.Vec2, c core.Cell) {
	if sp, ok := g.WorldToScreen(p); ok {
		dst.SetCell(sp.X, sp.Y, c)
	}
}
