package scenes

import (
	"testing"

	"github.com/vovakirdan/tui-sandbox/internal/element"
	"github.com/vovakirdan/tui-sandbox/internal/physics"
	"github.com/vovakirdan/tui-sandbox/internal/reaction"
	"github.com/vovakirdan/tui-sandbox/internal/registry"
	"github.com/vovakirdan/tui-sandbox/internal/world"
)

func newSim() *world.Simulation {
	return newSimWithWalls(world.DefaultBoundary())
}

func newSimWithWalls(b world.BoundaryConfig) *world.Simulation {
	return world.New(world.Config{Width: 80, Height: 24, Margin: 16, Boundary: b},
		reaction.Default(), physics.NewLattice(physics.DefaultParams()), nil)
}

func TestScenesRegistered(t *testing.T) {
	for _, id := range []string{"empty", "beach", "bonfire", "rainstorm", "lab"} {
		if !registry.Exists(id) {
			t.Errorf("scene %q not registered", id)
		}
	}
}

func TestScenesStayInView(t *testing.T) {
	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := registry.Create(info.ID)
			if err != nil {
				t.Fatalf("Create() error: %v", err)
			}
			sim := newSim()
			s.Populate(sim)

			b := sim.Bounds()
			sim.Each(func(_ world.Handle, p world.Particle) {
				if !b.Contains(p.Position) {
					t.Errorf("%v spawned outside the view at %v", p.Kind, p.Position)
				}
			})
			if info.ID != "empty" && sim.Count() == 0 {
				t.Error("scene spawned nothing")
			}
		})
	}
}

func TestScenesAvoidWallCells(t *testing.T) {
	tests := []struct {
		name  string
		walls world.BoundaryConfig
	}{
		{"default", world.DefaultBoundary()},
		{"boxed", world.BoundaryConfig{Top: true, Bottom: true, Left: true, Right: true}},
		{"small", world.DefaultBoundary()},
	}

	for _, tt := range tests {
		for _, info := range registry.List() {
			t.Run(tt.name+"/"+info.ID, func(t *testing.T) {
				s, _ := registry.Create(info.ID)
				sim := newSimWithWalls(tt.walls)
				if tt.name == "small" {
					sim.Resize(20, 8)
				}
				s.Populate(sim)

				b := sim.Bounds()
				sim.Each(func(_ world.Handle, p world.Particle) {
					onWall := (tt.walls.Bottom && p.Position.Y == b.Min.Y) ||
						(tt.walls.Top && p.Position.Y == b.Max.Y) ||
						(tt.walls.Left && p.Position.X == b.Min.X) ||
						(tt.walls.Right && p.Position.X == b.Max.X)
					if onWall {
						t.Errorf("%v spawned on a boundary wall at %v", p.Kind, p.Position)
					}
				})
			})
		}
	}
}

func TestLabHasEveryElement(t *testing.T) {
	s, _ := registry.Create("lab")
	sim := newSim()
	s.Populate(sim)

	pop := sim.Population()
	for _, k := range element.Kinds() {
		if pop[k] == 0 {
			t.Errorf("lab has no %v", k)
		}
	}
}

func TestScenesRunWithoutLosingTrack(t *testing.T) {
	for _, id := range []string{"bonfire", "rainstorm"} {
		s, _ := registry.Create(id)
		sim := newSim()
		s.Populate(sim)
		for i := 0; i < 50; i++ {
			sim.Tick()
		}
		n := 0
		sim.Each(func(world.Handle, world.Particle) { n++ })
		if n != sim.Count() {
			t.Errorf("%s: Each visited %d particles, Count() = %d", id, n, sim.Count())
		}
	}
}
