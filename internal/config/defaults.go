package config

import (
	_ "embed"
)

//go:embed defaults/glider.yaml
var defaultGliderYAML []byte

// DefaultConfig returns the default glider configuration.
// Kept in sync with defaults/glider.yaml; used as the last-resort
// fallback if the embedded YAML fails to parse.
func DefaultConfig() GliderConfig {
	return GliderConfig{
		Physics: Physics{
			Gravity:          900.0,
			JumpImpulse:      -108.0,
			TerminalVelocity: 180.0,
			ScrollSpeed:      48.0,
			MaxTickSeconds:   1.0 / 30.0,
		},
		Actor: Actor{
			X:            10.0,
			Width:        2.0,
			Height:       2.0,
			MinRotation:  -0.5,
			MaxRotation:  1.2,
			RotationRate: 8.0,
		},
		Obstacles: Obstacles{
			Width:         5.0,
			GapSize:       9.0,
			SpawnInterval: 0.9,
			TopMargin:     3.0,
			BottomMargin:  3.0,
		},
		Pool: Pool{
			WarmUp:      4,
			FreeCeiling: 8,
		},
		Perf: Perf{
			WindowSize:  120,
			SlowFrameMs: 25.0,
			SlowStreak:  12,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultGliderYAML
}
