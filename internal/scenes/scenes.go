// Package scenes provides the built-in starting layouts. Importing it for
// side effects registers every scene.
package scenes

import (
	"math"

	"github.com/vovakirdan/tui-sandbox/internal/element"
	"github.com/vovakirdan/tui-sandbox/internal/registry"
	"github.com/vovakirdan/tui-sandbox/internal/world"
)

func init() {
	for _, s := range []scene{empty, beach, bonfire, rainstorm, lab} {
		s := s
		registry.Register(s.id, func() registry.Scene { return s })
	}
}

// scene is a registry.Scene backed by a populate function.
type scene struct {
	id, title, desc string
	populate        func(c canvas)
}

func (s scene) ID() string          { return s.id }
func (s scene) Title() string       { return s.title }
func (s scene) Description() string { return s.desc }

func (s scene) Populate(sim *world.Simulation) {
	if s.populate != nil {
		s.populate(canvas{sim: sim, b: interior(sim.Bounds(), sim.Boundary())})
	}
}

// interior shrinks b by one cell on every side that has a boundary wall.
func interior(b world.Bounds, walls world.BoundaryConfig) world.Bounds {
	if walls.Top {
		b.Max.Y--
	}
	if walls.Bottom {
		b.Min.Y++
	}
	if walls.Left {
		b.Min.X++
	}
	if walls.Right {
		b.Max.X--
	}
	return b
}

// canvas addresses the open part of the visible world in fractions of its
// size, with (0, 0) the bottom-left corner and (1, 1) the top-right one.
type canvas struct {
	sim *world.Simulation
	b   world.Bounds
}

func (c canvas) at(fx, fy float64) world.Vec2 {
	return world.Vec2{
		X: math.Round(c.b.Min.X + fx*(c.b.Max.X-c.b.Min.X)),
		Y: math.Round(c.b.Min.Y + fy*(c.b.Max.Y-c.b.Min.Y)),
	}
}

// fill spawns kind on every cell of the rectangle between two fractional
// corners.
func (c canvas) fill(kind element.Kind, fx0, fy0, fx1, fy1 float64) {
	lo, hi := c.at(fx0, fy0), c.at(fx1, fy1)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			c.sim.Spawn(kind, world.Vec2{X: x, Y: y})
		}
	}
}

// sprinkle spawns kind on every step-th cell of the rectangle.
func (c canvas) sprinkle(kind element.Kind, step int, fx0, fy0, fx1, fy1 float64) {
	lo, hi := c.at(fx0, fy0), c.at(fx1, fy1)
	s := float64(step)
	for y := lo.Y; y <= hi.Y; y += s {
		for x := lo.X; x <= hi.X; x += s {
			c.sim.Spawn(kind, world.Vec2{X: x, Y: y})
		}
	}
}

// mound spawns a triangle of kind resting on the bottom row, centered at
// fx with the given fractional half-width and height.
func (c canvas) mound(kind element.Kind, fx, halfW, fh float64) {
	base := c.at(fx, 0)
	w := halfW * (c.b.Max.X - c.b.Min.X)
	h := fh * (c.b.Max.Y - c.b.Min.Y)
	for dy := 0.0; dy <= h; dy++ {
		span := math.Round(w * (1 - dy/h))
		for dx := -span; dx <= span; dx++ {
			c.sim.Spawn(kind, world.Vec2{X: base.X + dx, Y: base.Y + dy})
		}
	}
}

var empty = scene{
	id:    "empty",
	title: "Empty",
	desc:  "Nothing but the walls",
}

var beach = scene{
	id:    "beach",
	title: "Beach",
	desc:  "A sand dune beside a pool of water",
	populate: func(c canvas) {
		c.mound(element.Sand, 0.25, 0.25, 0.35)
		c.fill(element.Water, 0.55, 0.05, 0.98, 0.25)
	},
}

var bonfire = scene{
	id:    "bonfire",
	title: "Bonfire",
	desc:  "Oil and powder waiting for a spark",
	populate: func(c canvas) {
		c.fill(element.Wall, 0.2, 0.3, 0.8, 0.3)
		c.fill(element.Oil, 0.25, 0.32, 0.5, 0.4)
		c.mound(element.Powder, 0.75, 0.1, 0.25)
		c.fill(element.Fire, 0.48, 0.6, 0.52, 0.62)
	},
}

var rainstorm = scene{
	id:    "rainstorm",
	title: "Rainstorm",
	desc:  "Steam clouds raining onto a powder field",
	populate: func(c canvas) {
		c.fill(element.Powder, 0.0, 0.05, 1.0, 0.12)
		c.fill(element.Steam, 0.1, 0.85, 0.4, 0.95)
		c.fill(element.Steam, 0.6, 0.8, 0.9, 0.9)
		c.sprinkle(element.Water, 3, 0.1, 0.5, 0.9, 0.7)
	},
}

var lab = scene{
	id:    "lab",
	title: "Lab",
	desc:  "Every element in its own jar",
	populate: func(c canvas) {
		kinds := []element.Kind{element.Powder, element.Sand, element.Water, element.Oil, element.Fire, element.Steam}
		n := float64(len(kinds))
		for i, k := range kinds {
			x0 := float64(i) / n
			x1 := float64(i+1) / n
			// Neighbouring jars share a side wall.
			if i == 0 {
				c.fill(element.Wall, x0, 0.1, x0, 0.6)
			}
			c.fill(element.Wall, x1, 0.1, x1, 0.6)
			c.fill(element.Wall, x0, 0.1, x1, 0.1)
			c.fill(k, x0+0.3/n, 0.15, x1-0.3/n, 0.35)
		}
	},
}
