package world

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/vovakirdan/tui-sandbox/internal/element"
	"github.com/vovakirdan/tui-sandbox/internal/physics"
	"github.com/vovakirdan/tui-sandbox/internal/reaction"
)

func newTestSim(b BoundaryConfig) (*Simulation, *physics.Lattice) {
	lat := physics.NewLattice(physics.DefaultParams())
	sim := New(Config{Width: 800, Height: 600, Margin: 256, Boundary: b}, reaction.Default(), lat, nil)
	return sim, lat
}

func TestBodyRequestByMotionClass(t *testing.T) {
	tests := []struct {
		kind     element.Kind
		pinned   bool
		shape    physics.ShapeKind
		static   bool
		behavior physics.Behavior
		radius   float64
	}{
		{element.Wall, false, physics.Rectangle, true, physics.Static, 0},
		{element.Sand, false, physics.Rectangle, false, physics.Settle, 0},
		{element.Powder, false, physics.Rectangle, false, physics.Settle, 0},
		{element.Water, false, physics.Circle, false, physics.Flow, 0.5},
		{element.Oil, false, physics.Circle, false, physics.Flow, 0.5},
		{element.Steam, false, physics.Circle, false, physics.Wander, 0.1},
		{element.Fire, false, physics.Circle, false, physics.Wander, 0.1},
		{element.Water, true, physics.Circle, true, physics.Static, 0.5},
	}

	for _, tc := range tests {
		name := tc.kind.String()
		if tc.pinned {
			name += "/pinned"
		}
		t.Run(name, func(t *testing.T) {
			req := BodyRequest(tc.kind, Vec2{X: 1, Y: 2}, tc.pinned)
			if req.Shape.Kind != tc.shape {
				t.Errorf("Shape = %v, expected %v", req.Shape.Kind, tc.shape)
			}
			if req.Static != tc.static {
				t.Errorf("Static = %v, expected %v", req.Static, tc.static)
			}
			if req.Behavior != tc.behavior {
				t.Errorf("Behavior = %v, expected %v", req.Behavior, tc.behavior)
			}
			if req.Shape.Radius != tc.radius {
				t.Errorf("Radius = %v, expected %v", req.Shape.Radius, tc.radius)
			}
			if req.Mass != element.Lookup(tc.kind).Density {
				t.Errorf("Mass = %v, expected density", req.Mass)
			}
		})
	}
}

func TestSpawnRecordsParticle(t *testing.T) {
	g := NewWithT(t)
	sim, lat := newTestSim(BoundaryConfig{})

	h := sim.Spawn(element.Water, Vec2{X: 3, Y: 4})
	p, ok := sim.Particle(h)

	g.Expect(ok).To(BeTrue())
	g.Expect(p.Kind).To(Equal(element.Water))
	g.Expect(p.Position).To(Equal(Vec2{X: 3, Y: 4}))
	g.Expect(p.Wrap).To(BeTrue())
	g.Expect(p.Static).To(BeFalse())
	g.Expect(sim.Count()).To(Equal(1))
	g.Expect(lat.Count()).To(Equal(1))
}

func TestSpawnSamePositionIsIndependent(t *testing.T) {
	sim, lat := newTestSim(BoundaryConfig{})

	a := sim.Spawn(element.Sand, Vec2{})
	b := sim.Spawn(element.Sand, Vec2{})

	if a == b {
		t.Fatal("spawns at the same position returned the same handle")
	}
	if sim.Count() != 2 || lat.Count() != 2 {
		t.Errorf("Count() = %d/%d, expected 2", sim.Count(), lat.Count())
	}
}

func TestSpawnStaticNotWrapped(t *testing.T) {
	sim, _ := newTestSim(BoundaryConfig{})

	wall := sim.Spawn(element.Wall, Vec2{X: 1100})
	pinned := sim.SpawnPinned(element.Sand, Vec2{X: 1100})
	sim.ApplyWrap()

	for _, h := range []Handle{wall, pinned} {
		p, _ := sim.Particle(h)
		if p.Wrap || !p.Static {
			t.Errorf("%v: Wrap=%v Static=%v, expected static and not wrapped", p.Kind, p.Wrap, p.Static)
		}
		if p.Position.X != 1100 {
			t.Errorf("%v moved to %v", p.Kind, p.Position)
		}
	}
}

func TestDespawn(t *testing.T) {
	sim, lat := newTestSim(BoundaryConfig{})

	h := sim.Spawn(element.Oil, Vec2{})
	if !sim.Despawn(h) {
		t.Fatal("Despawn() = false for a live handle")
	}
	if sim.Despawn(h) {
		t.Error("Despawn() = true for a stale handle")
	}
	if _, ok := sim.Particle(h); ok {
		t.Error("Particle() resolved a removed handle")
	}
	if lat.Count() != 0 {
		t.Errorf("physics still holds %d bodies", lat.Count())
	}

	// Slot reuse must not revive the old handle.
	h2 := sim.Spawn(element.Fire, Vec2{})
	if _, ok := sim.Particle(h); ok {
		t.Error("stale handle resolved after slot reuse")
	}
	if p, ok := sim.Particle(h2); !ok || p.Kind != element.Fire {
		t.Errorf("Particle(h2) = %v, %v", p, ok)
	}
}

func TestApplyWrap(t *testing.T) {
	sim, _ := newTestSim(BoundaryConfig{})

	h := sim.Spawn(element.Sand, Vec2{X: 1100, Y: -500})
	sim.ApplyWrap()

	p, _ := sim.Particle(h)
	if p.Position != (Vec2{X: 44, Y: 356}) {
		t.Errorf("Position() = %v, expected {44 356}", p.Position)
	}
}

func TestBoundaryRebuild(t *testing.T) {
	g := NewWithT(t)
	sim, lat := newTestSim(BoundaryConfig{Top: true, Bottom: true})

	g.Expect(sim.WallCount()).To(Equal(2))
	g.Expect(lat.WallCount()).To(Equal(2))

	sim.SetBoundary(BoundaryConfig{Top: true, Bottom: true, Left: true})
	g.Expect(sim.WallCount()).To(Equal(3))
	g.Expect(lat.WallCount()).To(Equal(3))

	sim.SetBoundary(BoundaryConfig{})
	g.Expect(sim.WallCount()).To(Equal(0))
	g.Expect(lat.WallCount()).To(Equal(0))
	g.Expect(lat.Blocked(Vec2{X: 0, Y: 299})).To(BeFalse())
}

func TestBoundaryWallPlacement(t *testing.T) {
	sim, lat := newTestSim(BoundaryConfig{Top: true, Bottom: true, Left: true, Right: true})

	b := sim.Bounds()
	if b.Min != (Vec2{X: -400, Y: -300}) || b.Max != (Vec2{X: 399, Y: 299}) {
		t.Fatalf("Bounds() = %+v", b)
	}
	for _, p := range []Vec2{{X: 0, Y: 299}, {X: 0, Y: -300}, {X: -400, Y: 0}, {X: 399, Y: 0}} {
		if !lat.Blocked(p) {
			t.Errorf("expected wall at %v", p)
		}
	}
	if lat.Blocked(Vec2{}) {
		t.Error("center should be open")
	}
}

func TestWallsSpanWrapWindow(t *testing.T) {
	_, lat := newTestSim(DefaultBoundary())

	// Size is 1056x856 with the margin, so the window runs from -528 to 527.
	for _, p := range []Vec2{{X: -528, Y: -300}, {X: 527, Y: -300}, {X: -528, Y: 299}, {X: 527, Y: 299}} {
		if !lat.Blocked(p) {
			t.Errorf("expected wall at %v", p)
		}
	}
	if lat.Blocked(Vec2{X: 527, Y: 0}) {
		t.Error("open side should have no wall")
	}
}

func TestFloorHoldsLiquid(t *testing.T) {
	tests := []struct {
		name     string
		boundary BoundaryConfig
		visible  bool // every particle stays in the visible cells
	}{
		{"top and bottom", DefaultBoundary(), false},
		{"boxed", BoundaryConfig{Top: true, Bottom: true, Left: true, Right: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := physics.DefaultParams()
			params.Seed = 7
			lat := physics.NewLattice(params)
			sim := New(Config{Width: 40, Height: 20, Margin: 16, Boundary: tt.boundary}, reaction.Default(), lat, nil)

			b := sim.Bounds()
			n := 0
			for x := b.Min.X + 1; x < b.Max.X; x++ {
				for y := b.Min.Y + 1; y <= b.Min.Y+2; y++ {
					sim.Spawn(element.Water, Vec2{X: x, Y: y})
					n++
				}
			}

			for i := 0; i < 400; i++ {
				sim.Tick()
			}

			if sim.Count() != n {
				t.Fatalf("Count() = %d, expected %d", sim.Count(), n)
			}
			sim.Each(func(h Handle, p Particle) {
				if p.Position.Y <= b.Min.Y || p.Position.Y >= b.Max.Y {
					t.Errorf("particle %v at %v left the rows between the walls", h, p.Position)
				}
				if tt.visible && !b.Contains(p.Position) {
					t.Errorf("particle %v at %v left the visible area", h, p.Position)
				}
			})
		})
	}
}

func TestResizeRebuildsWalls(t *testing.T) {
	sim, lat := newTestSim(DefaultBoundary())

	sim.Resize(40, 20)

	if sim.WallCount() != 2 || lat.WallCount() != 2 {
		t.Errorf("WallCount() = %d/%d, expected 2", sim.WallCount(), lat.WallCount())
	}
	if !lat.Blocked(Vec2{X: 0, Y: -10}) {
		t.Error("bottom wall should follow the new size")
	}
	if lat.Blocked(Vec2{X: 0, Y: -300}) {
		t.Error("old bottom wall should be gone")
	}
}

func TestTickReaction(t *testing.T) {
	g := NewWithT(t)
	sim, lat := newTestSim(BoundaryConfig{})

	sim.SpawnPinned(element.Water, Vec2{X: 0})
	sim.SpawnPinned(element.Fire, Vec2{X: 1})
	sim.Tick()

	g.Expect(sim.Count()).To(Equal(1))
	g.Expect(lat.Count()).To(Equal(1))

	var product Particle
	sim.Each(func(_ Handle, p Particle) { product = p })
	g.Expect(product.Kind).To(Equal(element.Steam))
	g.Expect(product.Energy).To(BeNumerically(">", 0))

	st := sim.Stats()
	g.Expect(st.TotalReactions()).To(Equal(1))
	g.Expect(st.Reactions()).To(Equal([]Tally{
		{Pair: NewPair(element.Water, element.Fire), Product: element.Steam, Count: 1},
	}))
}

func TestTickReactsOncePerParticle(t *testing.T) {
	sim, _ := newTestSim(BoundaryConfig{})

	sim.SpawnPinned(element.Fire, Vec2{X: 0})
	sim.SpawnPinned(element.Water, Vec2{X: -1})
	sim.SpawnPinned(element.Oil, Vec2{X: 1})
	sim.Tick()

	pop := sim.Population()
	if pop[element.Steam] != 1 || pop[element.Oil] != 1 || sim.Count() != 2 {
		t.Errorf("population = %v, expected one steam and one oil", pop)
	}
	if got := sim.Stats().TotalReactions(); got != 1 {
		t.Errorf("TotalReactions() = %d, expected 1", got)
	}
}

func TestTickNoRule(t *testing.T) {
	sim, _ := newTestSim(BoundaryConfig{})

	sim.Spawn(element.Wall, Vec2{X: 0})
	sim.SpawnPinned(element.Water, Vec2{X: 1})
	sim.Tick()

	if sim.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", sim.Count())
	}
	if sim.Stats().TotalReactions() != 0 {
		t.Error("wall and water should not react")
	}
}

func TestClearKeepsWalls(t *testing.T) {
	sim, lat := newTestSim(DefaultBoundary())
	for i := 0; i < 5; i++ {
		sim.Spawn(element.Sand, Vec2{X: float64(i * 3)})
	}

	sim.Clear()

	if sim.Count() != 0 || lat.Count() != 0 {
		t.Errorf("Count() = %d/%d after Clear", sim.Count(), lat.Count())
	}
	if sim.WallCount() != 2 {
		t.Errorf("WallCount() = %d, expected 2", sim.WallCount())
	}
}

func TestEraseAtAndParticleAt(t *testing.T) {
	sim, _ := newTestSim(BoundaryConfig{})
	a := sim.SpawnPinned(element.Sand, Vec2{X: 0})
	sim.SpawnPinned(element.Sand, Vec2{X: 1})
	far := sim.SpawnPinned(element.Sand, Vec2{X: 10})

	if h, ok := sim.ParticleAt(Vec2{X: 0.2}); !ok || h != a {
		t.Errorf("ParticleAt() = %v, %v; expected %v", h, ok, a)
	}
	if n := sim.EraseAt(Vec2{}, 1); n != 2 {
		t.Errorf("EraseAt() = %d, expected 2", n)
	}
	if _, ok := sim.Particle(far); !ok {
		t.Error("far particle should survive")
	}
}

func TestStatsPeakAndSpawned(t *testing.T) {
	sim, _ := newTestSim(BoundaryConfig{})
	h := sim.Spawn(element.Sand, Vec2{})
	sim.Spawn(element.Sand, Vec2{X: 5})
	sim.Despawn(h)
	sim.Spawn(element.Water, Vec2{X: 9})

	st := sim.Stats()
	if st.Peak != 2 {
		t.Errorf("Peak = %d, expected 2", st.Peak)
	}
	if st.Spawned[element.Sand] != 2 || st.TotalSpawned() != 3 {
		t.Errorf("Spawned = %v", st.Spawned)
	}
}

func TestTickCountsAndCools(t *testing.T) {
	sim, _ := newTestSim(BoundaryConfig{})
	sim.SpawnPinned(element.Water, Vec2{})
	sim.SpawnPinned(element.Fire, Vec2{X: 1})
	sim.Tick()

	var before float64
	sim.Each(func(_ Handle, p Particle) { before = p.Energy })
	sim.Tick()
	var after float64
	sim.Each(func(_ Handle, p Particle) { after = p.Energy })

	if sim.Ticks() != 2 || sim.Stats().Ticks != 2 {
		t.Errorf("Ticks() = %d, expected 2", sim.Ticks())
	}
	if !(after < before) {
		t.Errorf("energy %v should cool below %v", after, before)
	}
}
