package world

import (
	"math"

	"github.com/vovakirdan/tui-sandbox/internal/element"
)

// restEnergy is the energy each unit of mass brings into a reaction on top
// of its motion, so that resting particles still react visibly.
const restEnergy = 0.5

// resolveReactions consumes touching pairs that have a rule. Contacts are
// visited in body order and each particle reacts at most once per tick.
func (s *Simulation) resolveReactions() {
	if s.rules == nil || s.rules.Len() == 0 {
		return
	}
	consumed := make(map[Handle]bool)
	for _, c := range s.phys.Contacts() {
		ha, okA := s.bodies[c.A]
		hb, okB := s.bodies[c.B]
		if !okA || !okB || consumed[ha] || consumed[hb] {
			continue
		}
		pa, _ := s.particles.get(ha)
		pb, _ := s.particles.get(hb)
		rule, ok := s.rules.Find(pa.kind, pb.kind)
		if !ok {
			continue
		}
		consumed[ha], consumed[hb] = true, true
		s.react(ha, hb, rule.Product, rule.Apply(s.energyOf(pa)+s.energyOf(pb)))
		s.stats.recordReaction(pa.kind, pb.kind, rule.Product)
	}
}

// energyOf returns a particle's kinetic, carried and rest energy.
func (s *Simulation) energyOf(p *particle) float64 {
	b, _ := s.phys.Body(p.body)
	return 0.5*b.Mass*b.Velocity.LenSq() + p.energy + restEnergy*b.Mass
}

// react replaces a and b with one product particle at their midpoint.
// Half of total becomes carried energy, the other half velocity along the
// reactants' net momentum.
func (s *Simulation) react(a, b Handle, product element.Kind, total float64) Handle {
	pa, _ := s.particles.get(a)
	pb, _ := s.particles.get(b)
	ba, _ := s.phys.Body(pa.body)
	bb, _ := s.phys.Body(pb.body)
	kindA, kindB := pa.kind, pb.kind

	mid := ba.Position.Add(bb.Position).Scale(0.5)
	mid = Vec2{X: math.Floor(mid.X + 0.5), Y: math.Floor(mid.Y + 0.5)}
	momentum := ba.Velocity.Scale(ba.Mass).Add(bb.Velocity.Scale(bb.Mass))
	dir := momentum.Normalize()
	if dir == (Vec2{}) {
		dir = Vec2{Y: 1}
	}

	s.Despawn(a)
	s.Despawn(b)

	mass := element.Lookup(product).Density
	speed := math.Sqrt(total / mass) // sqrt(2 * (total/2) / mass)
	h := s.spawn(product, mid, false, Vec2{}, total/2)
	if p, ok := s.particles.get(h); ok {
		s.phys.SetVelocity(p.body, dir.Scale(speed))
	}
	s.log.Debug("reaction", "a", kindA, "b", kindB, "product", product, "energy", total)
	return h
}
