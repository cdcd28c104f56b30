package sandbox

import (
	"time"

	"github.com/vovakirdan/tui-sandbox/internal/element"
	"github.com/vovakirdan/tui-sandbox/internal/storage"
)

// Record summarizes the current session for the history store.
// Empty kinds are left out of the samples.
func (g *Game) Record(ended time.Time) storage.SessionRecord {
	rec := storage.SessionRecord{
		Scene:     g.scene.ID(),
		Seed:      g.seed,
		StartedAt: g.started,
		EndedAt:   ended,
	}
	if g.sim == nil {
		return rec
	}

	st := g.sim.Stats()
	rec.Boundary = g.sim.Boundary().String()
	rec.Ticks = st.Ticks
	rec.Peak = st.Peak
	rec.Spawned = st.TotalSpawned()
	rec.Reactions = st.TotalReactions()

	for _, t := range st.Reactions() {
		rec.Tallies = append(rec.Tallies, storage.ReactionTally{
			A:       t.Pair.A.String(),
			B:       t.Pair.B.String(),
			Product: t.Product.String(),
			Count:   t.Count,
		})
	}
	for _, s := range g.samples {
		counts := make(map[string]int)
		for k, n := range s.Population {
			if n > 0 {
				counts[element.Kind(k).String()] = n
			}
		}
		rec.Samples = append(rec.Samples, storage.PopulationSample{Tick: s.Tick, Counts: counts})
	}
	return rec
}
