package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-sandbox/internal/world"
)

//go:embed defaults/sandbox.yaml
var defaultSandboxYAML []byte

// DefaultSandboxConfig returns the hardcoded sandbox configuration.
func DefaultSandboxConfig() SandboxConfig {
	return SandboxConfig{
		World: WorldConfig{
			Margin: 16,
		},
		Boundary: world.DefaultBoundary(),
		Physics: PhysicsConfig{
			Friction: 0.3,
			Wander:   0.6,
			Damping:  0.8,
			MaxSpeed: 3,
		},
		Brush: BrushConfig{
			Size:    1,
			MaxSize: 6,
			Element: "sand",
		},
		Sampling: SamplingConfig{
			Every: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSandboxYAML
}
