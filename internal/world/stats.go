package world

import (
	"sort"

	"github.com/vovakirdan/tui-sandbox/internal/element"
)

// Pair is an unordered reactant pair, lower kind first.
type Pair struct {
	A, B element.Kind
}

// NewPair returns the canonical pair for a and b.
func NewPair(a, b element.Kind) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

func (p Pair) String() string {
	return p.A.String() + "+" + p.B.String()
}

// Tally counts how often a pair reacted into a product.
type Tally struct {
	Pair    Pair
	Product element.Kind
	Count   int
}

// Stats summarizes a simulation run.
type Stats struct {
	Ticks     uint64
	Peak      int
	Spawned   [element.KindCount]int
	reactions map[Pair]*Tally
}

func newStats() Stats {
	return Stats{reactions: make(map[Pair]*Tally)}
}

func (st *Stats) recordReaction(a, b, product element.Kind) {
	key := NewPair(a, b)
	t, ok := st.reactions[key]
	if !ok {
		t = &Tally{Pair: key, Product: product}
		st.reactions[key] = t
	}
	t.Product = product
	t.Count++
}

// Reactions returns per-pair tallies sorted by pair.
func (st Stats) Reactions() []Tally {
	out := make([]Tally, 0, len(st.reactions))
	for _, t := range st.reactions {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pair.A != out[j].Pair.A {
			return out[i].Pair.A < out[j].Pair.A
		}
		return out[i].Pair.B < out[j].Pair.B
	})
	return out
}

// TotalReactions returns the number of reactions that happened.
func (st Stats) TotalReactions() int {
	n := 0
	for _, t := range st.reactions {
		n += t.Count
	}
	return n
}

// TotalSpawned returns the number of particles ever spawned.
func (st Stats) TotalSpawned() int {
	n := 0
	for _, c := range st.Spawned {
		n += c
	}
	return n
}

// Stats returns a copy of the run statistics.
func (s *Simulation) Stats() Stats {
	out := s.stats
	out.reactions = make(map[Pair]*Tally, len(s.stats.reactions))
	for k, t := range s.stats.reactions {
		c := *t
		out.reactions[k] = &c
	}
	return out
}

// Population returns the number of live particles of each kind.
func (s *Simulation) Population() [element.KindCount]int {
	var out [element.KindCount]int
	s.particles.each(func(_ Handle, p *particle) {
		out[p.kind]++
	})
	return out
}
