// Package config provides YAML-based configuration loading and difficulty
// management for the glider engine.
package config

// GliderConfig contains all tunable parameters for the game.
// Units are playfield cells and seconds; the simulation integrates
// against wall-clock deltas, not ticks.
type GliderConfig struct {
	Physics    Physics          `yaml:"physics"`
	Actor      Actor            `yaml:"actor"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	Pool       Pool             `yaml:"pool"`
	Perf       Perf             `yaml:"perf"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Physics defines the vertical kinematics of the actor and the horizontal
// scroll of the world.
type Physics struct {
	Gravity          float64 `yaml:"gravity"`           // Downward acceleration, cells/s^2
	JumpImpulse      float64 `yaml:"jump_impulse"`      // Velocity assigned on jump, cells/s (negative = up)
	TerminalVelocity float64 `yaml:"terminal_velocity"` // Max fall speed, cells/s
	ScrollSpeed      float64 `yaml:"scroll_speed"`      // Base obstacle speed, cells/s
	MaxTickSeconds   float64 `yaml:"max_tick_seconds"`  // Delta-time clamp per update
}

// Actor defines the player hitbox and rotation envelope.
type Actor struct {
	X            float64 `yaml:"x"`             // Fixed horizontal offset of the actor center
	Width        float64 `yaml:"width"`         // Hitbox width
	Height       float64 `yaml:"height"`        // Hitbox height
	MinRotation  float64 `yaml:"min_rotation"`  // Radians, most upward tilt
	MaxRotation  float64 `yaml:"max_rotation"`  // Radians, most downward tilt
	RotationRate float64 `yaml:"rotation_rate"` // Damped-approach rate toward target angle, 1/s
}

// Obstacles defines barrier geometry and spawn cadence.
type Obstacles struct {
	Width         float64 `yaml:"width"`          // Barrier width in cells
	GapSize       float64 `yaml:"gap_size"`       // Height of the passable opening
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
	TopMargin     float64 `yaml:"top_margin"`     // Min distance of gap center from the ceiling
	BottomMargin  float64 `yaml:"bottom_margin"`  // Min distance of gap center from the floor
}

// Pool defines obstacle recycling limits.
type Pool struct {
	WarmUp      int `yaml:"warm_up"`      // Instances preallocated at startup
	FreeCeiling int `yaml:"free_ceiling"` // Max retained recyclable instances
}

// Perf defines the frame-cost monitor thresholds.
type Perf struct {
	WindowSize  int     `yaml:"window_size"`   // Frame-cost samples retained
	SlowFrameMs float64 `yaml:"slow_frame_ms"` // Cost above which a frame counts as slow
	SlowStreak  int     `yaml:"slow_streak"`   // Consecutive slow frames before degrading
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GliderConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
