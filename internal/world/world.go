// Package world runs a sandbox simulation: it owns the particles, turns
// placement requests into physics bodies, resolves reactions between
// touching particles, keeps free particles inside a wrapping window and
// maintains the boundary walls.
//
// A Simulation is driven by a single goroutine; it does no locking.
package world

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sandbox/internal/element"
	"github.com/vovakirdan/tui-sandbox/internal/logging"
	"github.com/vovakirdan/tui-sandbox/internal/physics"
	"github.com/vovakirdan/tui-sandbox/internal/reaction"
)

type (
	Vec2    = physics.Vec2
	Segment = physics.Segment
)

// Physics is the body store a Simulation drives. physics.Lattice
// implements it.
type Physics interface {
	CreateBody(req physics.BodyRequest) physics.BodyID
	CreateWall(seg physics.Segment) physics.BodyID
	Remove(id physics.BodyID)
	Body(id physics.BodyID) (physics.Body, bool)
	SetPosition(id physics.BodyID, p physics.Vec2)
	SetVelocity(id physics.BodyID, v physics.Vec2)
	Step()
	Contacts() []physics.Contact
}

var _ Physics = (*physics.Lattice)(nil)

// Config sizes the world. Units are lattice cells.
type Config struct {
	Width    int
	Height   int
	Margin   int
	Boundary BoundaryConfig
}

// Footprint sizes per motion class.
const (
	fillRadius    = 0.5
	diffuseRadius = 0.1
	// coolRate is the fraction of carried energy a particle keeps each tick.
	coolRate = 0.97
)

type particle struct {
	kind   element.Kind
	body   physics.BodyID
	wrap   bool
	pinned bool
	energy float64
	born   uint64
}

// Particle is a read-only view of a live particle.
type Particle struct {
	Kind     element.Kind
	Position Vec2
	Velocity Vec2
	Shape    physics.Shape
	Static   bool
	Pinned   bool
	Wrap     bool
	Energy   float64
	Born     uint64
}

// Simulation owns a set of particles and the walls around them.
type Simulation struct {
	width, height int
	margin        int

	rules  *reaction.Registry
	phys   Physics
	log    *log.Logger
	wrap   WrapPolicy
	bodies map[physics.BodyID]Handle

	particles arena
	walls     []physics.BodyID
	boundary  BoundaryConfig

	tick  uint64
	stats Stats
}

// New creates a simulation and builds its boundary walls. A nil logger
// discards output.
func New(cfg Config, rules *reaction.Registry, phys Physics, logger *log.Logger) *Simulation {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Simulation{
		width:    cfg.Width,
		height:   cfg.Height,
		margin:   cfg.Margin,
		rules:    rules,
		phys:     phys,
		log:      logger,
		wrap:     NewWrapPolicy(float64(cfg.Width), float64(cfg.Height), float64(cfg.Margin)),
		bodies:   make(map[physics.BodyID]Handle),
		boundary: cfg.Boundary,
		stats:    newStats(),
	}
	s.rebuildWalls()
	return s
}

// Rules returns the reaction registry in use.
func (s *Simulation) Rules() *reaction.Registry {
	return s.rules
}

// Size returns the visible world size in cells.
func (s *Simulation) Size() (int, int) {
	return s.width, s.height
}

// Bounds returns the inclusive range of visible cells. The origin is the
// center of the view and y points up.
func (s *Simulation) Bounds() Bounds {
	hw, hh := float64(s.width/2), float64(s.height/2)
	return Bounds{
		Min: Vec2{X: -hw, Y: -hh},
		Max: Vec2{X: float64(s.width) - hw - 1, Y: float64(s.height) - hh - 1},
	}
}

// Wrap returns the wrap policy in use.
func (s *Simulation) Wrap() WrapPolicy {
	return s.wrap
}

// Resize changes the visible size, then rebuilds the walls and refolds
// every particle.
func (s *Simulation) Resize(w, h int) {
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.wrap = NewWrapPolicy(float64(w), float64(h), float64(s.margin))
	s.rebuildWalls()
	s.ApplyWrap()
}

// Spawn places a particle of kind at pos and returns its handle. Frozen
// kinds get an immovable body. Spawning never deduplicates: two spawns at
// the same position create two particles.
func (s *Simulation) Spawn(kind element.Kind, pos Vec2) Handle {
	return s.spawn(kind, pos, false, Vec2{}, 0)
}

// SpawnPinned places a particle that never moves regardless of its kind.
func (s *Simulation) SpawnPinned(kind element.Kind, pos Vec2) Handle {
	return s.spawn(kind, pos, true, Vec2{}, 0)
}

// BodyRequest derives the physics request for a kind at pos.
func BodyRequest(kind element.Kind, pos Vec2, pinned bool) physics.BodyRequest {
	props := element.Lookup(kind)
	req := physics.BodyRequest{
		Position: pos,
		Mass:     props.Density,
		Static:   pinned || props.Motion.Static(),
	}
	switch props.Motion {
	case element.Frozen:
		req.Shape = physics.Rect(1, 1)
		req.Behavior = physics.Static
	case element.Fall:
		req.Shape = physics.Rect(1, 1)
		req.Behavior = physics.Settle
	case element.Fill:
		req.Shape = physics.Round(fillRadius)
		req.Behavior = physics.Flow
	case element.Diffuse:
		req.Shape = physics.Round(diffuseRadius)
		req.Behavior = physics.Wander
	}
	if req.Static {
		req.Behavior = physics.Static
	}
	return req
}

func (s *Simulation) spawn(kind element.Kind, pos Vec2, pinned bool, vel Vec2, energy float64) Handle {
	req := BodyRequest(kind, pos, pinned)
	req.Velocity = vel
	id := s.phys.CreateBody(req)
	h := s.particles.insert(particle{
		kind:   kind,
		body:   id,
		wrap:   !req.Static,
		pinned: pinned,
		energy: energy,
		born:   s.tick,
	})
	s.bodies[id] = h
	s.stats.Spawned[kind]++
	if n := s.particles.live; n > s.stats.Peak {
		s.stats.Peak = n
	}
	s.log.Debug("spawned particle", "kind", kind, "handle", h, "x", pos.X, "y", pos.Y, "pinned", pinned)
	return h
}

// Despawn removes a particle. It reports false for a stale handle.
func (s *Simulation) Despawn(h Handle) bool {
	p, ok := s.particles.remove(h)
	if !ok {
		return false
	}
	s.phys.Remove(p.body)
	delete(s.bodies, p.body)
	return true
}

// Particle returns a view of the particle behind h.
func (s *Simulation) Particle(h Handle) (Particle, bool) {
	p, ok := s.particles.get(h)
	if !ok {
		return Particle{}, false
	}
	return s.view(p), true
}

func (s *Simulation) view(p *particle) Particle {
	b, _ := s.phys.Body(p.body)
	return Particle{
		Kind:     p.kind,
		Position: b.Position,
		Velocity: b.Velocity,
		Shape:    b.Shape,
		Static:   b.Static,
		Pinned:   p.pinned,
		Wrap:     p.wrap,
		Energy:   p.energy,
		Born:     p.born,
	}
}

// Each calls fn for every live particle in handle order.
func (s *Simulation) Each(fn func(Handle, Particle)) {
	s.particles.each(func(h Handle, p *particle) {
		fn(h, s.view(p))
	})
}

// Count returns the number of live particles.
func (s *Simulation) Count() int {
	return s.particles.live
}

// ParticleAt returns the first particle whose cell contains pos.
func (s *Simulation) ParticleAt(pos Vec2) (Handle, bool) {
	var found Handle
	s.particles.each(func(h Handle, p *particle) {
		if !found.IsZero() {
			return
		}
		if b, ok := s.phys.Body(p.body); ok && sameCell(b.Position, pos) {
			found = h
		}
	})
	return found, !found.IsZero()
}

// EraseAt removes every particle within radius of pos and returns how many
// were removed.
func (s *Simulation) EraseAt(pos Vec2, radius float64) int {
	var doomed []Handle
	s.particles.each(func(h Handle, p *particle) {
		if b, ok := s.phys.Body(p.body); ok && b.Position.Sub(pos).Len() <= radius+0.5 {
			doomed = append(doomed, h)
		}
	})
	for _, h := range doomed {
		s.Despawn(h)
	}
	return len(doomed)
}

// Clear removes every particle. Walls stay.
func (s *Simulation) Clear() {
	var all []Handle
	s.particles.each(func(h Handle, _ *particle) { all = append(all, h) })
	for _, h := range all {
		s.Despawn(h)
	}
	s.log.Debug("cleared world", "removed", len(all))
}

// Tick advances the world: physics first, then reactions between touching
// particles, then cooling and wrap.
func (s *Simulation) Tick() {
	s.tick++
	s.phys.Step()
	s.resolveReactions()
	s.cool()
	s.ApplyWrap()
	s.stats.Ticks = s.tick
}

// Ticks returns the number of ticks run.
func (s *Simulation) Ticks() uint64 {
	return s.tick
}

// ApplyWrap folds every wrap-eligible particle into the wrap window.
func (s *Simulation) ApplyWrap() {
	s.particles.each(func(_ Handle, p *particle) {
		if !p.wrap {
			return
		}
		b, ok := s.phys.Body(p.body)
		if !ok || s.wrap.Contains(b.Position) {
			return
		}
		s.phys.SetPosition(p.body, s.wrap.Fold(b.Position))
	})
}

func (s *Simulation) cool() {
	s.particles.each(func(_ Handle, p *particle) {
		if p.energy == 0 {
			return
		}
		p.energy *= coolRate
		if p.energy < 0.01 {
			p.energy = 0
		}
	})
}

func sameCell(a, b Vec2) bool {
	return math.Floor(a.X+0.5) == math.Floor(b.X+0.5) && math.Floor(a.Y+0.5) == math.Floor(b.Y+0.5)
}
