package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-sandbox/internal/element"
	"github.com/vovakirdan/tui-sandbox/internal/reaction"
	"github.com/vovakirdan/tui-sandbox/internal/world"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg := DefaultSandboxConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded default invalid: %v", err)
	}

	want := DefaultSandboxConfig()
	got := cfg
	got.Reactions = nil
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("embedded default differs from DefaultSandboxConfig (-want +got):\n%s", diff)
	}

	specs, err := cfg.RuleSpecs()
	if err != nil {
		t.Fatalf("RuleSpecs() error: %v", err)
	}
	if diff := cmp.Diff(reaction.DefaultRules(), specs); diff != "" {
		t.Errorf("embedded reactions differ from built-in rules (-want +got):\n%s", diff)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := writeConfig(t, `
boundary:
  top: false
  left: true
physics:
  friction: 0.9
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	wantBoundary := world.BoundaryConfig{Top: false, Bottom: true, Left: true}
	if cfg.Boundary != wantBoundary {
		t.Errorf("Boundary = %+v, expected %+v", cfg.Boundary, wantBoundary)
	}
	if cfg.Physics.Friction != 0.9 {
		t.Errorf("Friction = %v, expected 0.9", cfg.Physics.Friction)
	}
	if cfg.Physics.Damping != 0.8 {
		t.Errorf("Damping = %v, expected default 0.8", cfg.Physics.Damping)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() = %v, expected not-exist error", err)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"friction", "physics:\n  friction: 2\n"},
		{"margin", "world:\n  margin: -1\n"},
		{"max speed", "physics:\n  max_speed: -2\n"},
		{"brush", "brush:\n  size: 9\n  max_size: 2\n"},
		{"element", "brush:\n  element: lava\n"},
		{"syntax", "world: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.body)); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestRuleSpecsFromYAML(t *testing.T) {
	cfg := DefaultSandboxConfig()
	cfg.Reactions = []ReactionConfig{
		{Reactants: []string{"Sand", "water"}, Product: "powder", Energy: 0.5},
	}

	specs, err := cfg.RuleSpecs()
	if err != nil {
		t.Fatalf("RuleSpecs() error: %v", err)
	}
	want := []reaction.Spec{{
		Reactants:    []element.Kind{element.Sand, element.Water},
		Product:      element.Powder,
		EnergyScalar: 0.5,
	}}
	if diff := cmp.Diff(want, specs); diff != "" {
		t.Errorf("RuleSpecs() mismatch (-want +got):\n%s", diff)
	}

	reg, err := cfg.Registry()
	if err != nil {
		t.Fatalf("Registry() error: %v", err)
	}
	if _, ok := reg.Find(element.Water, element.Sand); !ok {
		t.Error("mirrored rule missing")
	}
}

func TestRuleSpecsErrors(t *testing.T) {
	cfg := DefaultSandboxConfig()

	cfg.Reactions = []ReactionConfig{{Reactants: []string{"watr", "fire"}, Product: "steam", Energy: 1}}
	_, err := cfg.RuleSpecs()
	var unknown *element.UnknownKindError
	if !errors.As(err, &unknown) || unknown.Suggestion != "water" {
		t.Errorf("RuleSpecs() = %v, expected unknown kind with suggestion", err)
	}

	cfg.Reactions = []ReactionConfig{{Reactants: []string{"water"}, Product: "steam", Energy: 1}}
	if _, err := cfg.Registry(); !errors.Is(err, reaction.ErrNonBinaryReaction) {
		t.Errorf("Registry() = %v, expected ErrNonBinaryReaction", err)
	}
}

func TestBoundaryPresets(t *testing.T) {
	tests := []struct {
		preset BoundaryPreset
		sides  int
	}{
		{BoundaryDefault, 2},
		{BoundaryBoxed, 4},
		{BoundaryFloor, 1},
		{BoundaryTunnel, 2},
		{BoundaryOpen, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSandboxConfig()
			if err := ApplyBoundaryPreset(&cfg, tc.preset); err != nil {
				t.Fatalf("ApplyBoundaryPreset() error: %v", err)
			}
			if cfg.Boundary.Sides() != tc.sides {
				t.Errorf("Sides() = %d, expected %d", cfg.Boundary.Sides(), tc.sides)
			}
		})
	}

	if len(BoundaryPresets()) != len(tests) {
		t.Error("BoundaryPresets() should list every preset")
	}
	cfg := DefaultSandboxConfig()
	if err := ApplyBoundaryPreset(&cfg, "moat"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestPhysicsParams(t *testing.T) {
	p := DefaultSandboxConfig().PhysicsParams(7)
	if p.Seed != 7 || p.Friction != 0.3 || p.MaxSpeed != 3 {
		t.Errorf("PhysicsParams() = %+v", p)
	}
}
