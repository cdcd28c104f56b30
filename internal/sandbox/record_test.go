package sandbox

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-sandbox/internal/core"
)

func TestRecord(t *testing.T) {
	g := newGame(t)
	g.Step(frame(core.ActionPlace))
	g.Step(core.NewInputFrame())

	ended := g.Started().Add(time.Minute)
	rec := g.Record(ended)

	if rec.Scene != "blank" || rec.Seed != 1 {
		t.Errorf("Record() scene/seed = %s/%d, expected blank/1", rec.Scene, rec.Seed)
	}
	if rec.Boundary != "TB--" {
		t.Errorf("Record().Boundary = %q, expected %q", rec.Boundary, "TB--")
	}
	if rec.Ticks != 2 || rec.Spawned != 1 || rec.Peak != 1 {
		t.Errorf("Record() ticks/spawned/peak = %d/%d/%d", rec.Ticks, rec.Spawned, rec.Peak)
	}
	if rec.Duration() != time.Minute {
		t.Errorf("Duration() = %v, expected 1m", rec.Duration())
	}
	if len(rec.Samples) != 2 {
		t.Fatalf("len(Samples) = %d, expected 2", len(rec.Samples))
	}
	if len(rec.Samples[0].Counts) != 0 {
		t.Errorf("first sample = %v, expected empty", rec.Samples[0].Counts)
	}
	if rec.Samples[1].Counts["sand"] != 1 {
		t.Errorf("second sample = %v, expected one sand", rec.Samples[1].Counts)
	}
}
