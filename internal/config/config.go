// Package config provides YAML-based sandbox configuration loading and
// boundary presets.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-sandbox/internal/element"
	"github.com/vovakirdan/tui-sandbox/internal/physics"
	"github.com/vovakirdan/tui-sandbox/internal/reaction"
	"github.com/vovakirdan/tui-sandbox/internal/world"
)

// SandboxConfig contains all configuration for the sandbox.
type SandboxConfig struct {
	World     WorldConfig          `yaml:"world"`
	Boundary  world.BoundaryConfig `yaml:"boundary"`
	Physics   PhysicsConfig        `yaml:"physics"`
	Brush     BrushConfig          `yaml:"brush"`
	Sampling  SamplingConfig       `yaml:"sampling"`
	Reactions []ReactionConfig     `yaml:"reactions"`
}

// WorldConfig sizes the world. Zero width or height means fit the terminal.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Margin int `yaml:"margin"` // extra wrap distance beyond the visible area
}

// PhysicsConfig tunes the lattice movement heuristics.
type PhysicsConfig struct {
	Friction float64 `yaml:"friction"`
	Wander   float64 `yaml:"wander"`
	Damping  float64 `yaml:"damping"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// BrushConfig controls placement.
type BrushConfig struct {
	Size    int    `yaml:"size"`    // initial brush radius in cells
	MaxSize int    `yaml:"max_size"`
	Element string `yaml:"element"` // initially selected element
}

// SamplingConfig controls population history.
type SamplingConfig struct {
	Every int `yaml:"every"` // ticks between population samples, 0 disables
}

// ReactionConfig is a reaction rule as written in YAML.
type ReactionConfig struct {
	Reactants []string `yaml:"reactants"`
	Product   string   `yaml:"product"`
	Energy    float64  `yaml:"energy"`
}

// PhysicsParams converts the physics section to lattice parameters.
func (c SandboxConfig) PhysicsParams(seed int64) physics.Params {
	return physics.Params{
		Friction: c.Physics.Friction,
		Wander:   c.Physics.Wander,
		Damping:  c.Physics.Damping,
		MaxSpeed: c.Physics.MaxSpeed,
		Seed:     seed,
	}
}

// RuleSpecs resolves the configured reactions. An empty list means the
// built-in rule table.
func (c SandboxConfig) RuleSpecs() ([]reaction.Spec, error) {
	if len(c.Reactions) == 0 {
		return reaction.DefaultRules(), nil
	}
	specs := make([]reaction.Spec, 0, len(c.Reactions))
	for i, rc := range c.Reactions {
		spec := reaction.Spec{EnergyScalar: rc.Energy}
		for _, name := range rc.Reactants {
			k, err := element.ParseKind(name)
			if err != nil {
				return nil, fmt.Errorf("reaction %d: %w", i, err)
			}
			spec.Reactants = append(spec.Reactants, k)
		}
		product, err := element.ParseKind(rc.Product)
		if err != nil {
			return nil, fmt.Errorf("reaction %d: product: %w", i, err)
		}
		spec.Product = product
		specs = append(specs, spec)
	}
	return specs, nil
}

// Registry builds the reaction registry described by the config.
func (c SandboxConfig) Registry() (*reaction.Registry, error) {
	specs, err := c.RuleSpecs()
	if err != nil {
		return nil, err
	}
	return reaction.Build(specs)
}

// InitialElement returns the element selected at startup.
func (c SandboxConfig) InitialElement() (element.Kind, error) {
	if c.Brush.Element == "" {
		return element.Sand, nil
	}
	return element.ParseKind(c.Brush.Element)
}

// Validate checks ranges that would make the simulation misbehave.
func (c SandboxConfig) Validate() error {
	switch {
	case c.World.Width < 0 || c.World.Height < 0:
		return fmt.Errorf("config: world size must not be negative")
	case c.World.Margin < 0:
		return fmt.Errorf("config: world margin must not be negative")
	case c.Physics.Friction < 0 || c.Physics.Friction > 1:
		return fmt.Errorf("config: physics.friction must be within [0, 1]")
	case c.Physics.Wander < 0 || c.Physics.Wander > 1:
		return fmt.Errorf("config: physics.wander must be within [0, 1]")
	case c.Physics.Damping < 0 || c.Physics.Damping > 1:
		return fmt.Errorf("config: physics.damping must be within [0, 1]")
	case c.Physics.MaxSpeed < 0:
		return fmt.Errorf("config: physics.max_speed must not be negative")
	case c.Brush.Size < 0 || c.Brush.MaxSize < c.Brush.Size:
		return fmt.Errorf("config: brush size must be within [0, max_size]")
	case c.Sampling.Every < 0:
		return fmt.Errorf("config: sampling.every must not be negative")
	}
	if _, err := c.InitialElement(); err != nil {
		return fmt.Errorf("config: brush.element: %w", err)
	}
	return nil
}

// BoundaryPreset names a common wall layout.
type BoundaryPreset string

const (
	BoundaryDefault BoundaryPreset = "default" // top and bottom
	BoundaryBoxed   BoundaryPreset = "boxed"   // all four sides
	BoundaryFloor   BoundaryPreset = "floor"   // bottom only
	BoundaryTunnel  BoundaryPreset = "tunnel"  // left and right
	BoundaryOpen    BoundaryPreset = "open"    // no walls, everything wraps
)

// BoundaryPresets lists every preset in display order.
func BoundaryPresets() []BoundaryPreset {
	return []BoundaryPreset{BoundaryDefault, BoundaryBoxed, BoundaryFloor, BoundaryTunnel, BoundaryOpen}
}

// BoundaryForPreset returns the wall layout of a preset.
func BoundaryForPreset(preset BoundaryPreset) (world.BoundaryConfig, error) {
	switch preset {
	case BoundaryDefault:
		return world.DefaultBoundary(), nil
	case BoundaryBoxed:
		return world.BoundaryConfig{Top: true, Bottom: true, Left: true, Right: true}, nil
	case BoundaryFloor:
		return world.BoundaryConfig{Bottom: true}, nil
	case BoundaryTunnel:
		return world.BoundaryConfig{Left: true, Right: true}, nil
	case BoundaryOpen:
		return world.BoundaryConfig{}, nil
	default:
		return world.BoundaryConfig{}, fmt.Errorf("config: unknown boundary preset %q", preset)
	}
}

// ApplyBoundaryPreset replaces the config's boundary with a preset.
func ApplyBoundaryPreset(cfg *SandboxConfig, preset BoundaryPreset) error {
	b, err := BoundaryForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Boundary = b
	return nil
}
