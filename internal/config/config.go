// Package config provides YAML-based game configuration loading, variant
// presets and difficulty management.
package config

// EscapeZoneConfig contains all tunables for the driving simulation.
// Sizes and speeds are in world units (device pixels) and per-tick values.
type EscapeZoneConfig struct {
	World      WorldConfig      `yaml:"world"`
	Car        CarConfig        `yaml:"car"`
	Speed      SpeedConfig      `yaml:"speed"`
	Road       RoadConfig       `yaml:"road"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Turbo      TurboConfig      `yaml:"turbo"`
	Collision  CollisionConfig  `yaml:"collision"`
	Edge       EdgeConfig       `yaml:"edge"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig is the size of the simulated device screen.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CarConfig defines the player car and its steering response.
type CarConfig struct {
	Size             float64 `yaml:"size"`
	SteerSensitivity float64 `yaml:"steer_sensitivity"`
	MaxAngle         float64 `yaml:"max_angle"`     // degrees
	BottomOffset     float64 `yaml:"bottom_offset"` // in car sizes from the bottom edge
}

// SpeedConfig defines scroll speed and its score ramp.
type SpeedConfig struct {
	Initial    float64 `yaml:"initial"`
	Max        float64 `yaml:"max"`
	RampEvery  int     `yaml:"ramp_every"` // points between speed bumps
	RampAmount float64 `yaml:"ramp_amount"`
}

// RoadConfig defines track segment geometry and curve generation.
type RoadConfig struct {
	SegmentHeight  float64 `yaml:"segment_height"`
	BaseWidth      float64 `yaml:"base_width"`      // fraction of world width at difficulty 0
	MinWidth       float64 `yaml:"min_width"`       // floor as fraction of world width
	Lookahead      int     `yaml:"lookahead"`       // segments kept above the visible area
	CurveBase      float64 `yaml:"curve_base"`      // x drift per segment at difficulty 0
	StraightChance float64 `yaml:"straight_chance"` // probability a re-rolled curve is straight
	CurveMinTicks  int     `yaml:"curve_min_ticks"`
	CurveTickRange int     `yaml:"curve_tick_range"`
}

// SpawnConfig defines entity sizes and per-tick spawn probabilities.
type SpawnConfig struct {
	ObstacleSize   float64 `yaml:"obstacle_size"`
	PowerUpSize    float64 `yaml:"powerup_size"`
	ObstacleChance float64 `yaml:"obstacle_chance"`
	PowerUpChance  float64 `yaml:"powerup_chance"`
	SceneryChance  float64 `yaml:"scenery_chance"`
	TreeMinSize    float64 `yaml:"tree_min_size"`
	TreeSizeRange  float64 `yaml:"tree_size_range"`
	TreeMaxSize    float64 `yaml:"tree_max_size"` // cull margin below the screen
	TreeGap        float64 `yaml:"tree_gap"`      // left-side clearance from the road
	TreeSpread     float64 `yaml:"tree_spread"`
}

// TurboMode selects how power-ups affect speed.
type TurboMode string

const (
	TurboBoost TurboMode = "boost" // pickup grants a timed boost
	TurboMeter TurboMode = "meter" // pickup refills a meter the player spends
)

// TurboConfig defines the turbo policy and its parameters.
type TurboConfig struct {
	Mode        TurboMode `yaml:"mode"`
	Boost       float64   `yaml:"boost"`       // speed added while active
	DurationMS  int       `yaml:"duration_ms"` // boost mode
	MeterMax    float64   `yaml:"meter_max"`
	MeterRefill float64   `yaml:"meter_refill"`
	MeterDrain  float64   `yaml:"meter_drain"` // units per tick while burning
}

// CollisionMode selects the car-vs-entity contact test.
type CollisionMode string

const (
	CollisionRadius CollisionMode = "radius"
	CollisionRect   CollisionMode = "rect"
)

// CollisionConfig defines the contact test and radii as size fractions.
type CollisionConfig struct {
	Mode           CollisionMode `yaml:"mode"`
	CarRadius      float64       `yaml:"car_radius"`
	ObstacleRadius float64       `yaml:"obstacle_radius"`
	PowerUpRadius  float64       `yaml:"powerup_radius"`
}

// EdgeMode selects what happens at the road edge.
type EdgeMode string

const (
	EdgeClamp EdgeMode = "clamp" // car is held inside the segment
	EdgeKill  EdgeMode = "kill"  // touching outside the segment ends the run
)

// EdgeConfig defines the road-edge policy.
type EdgeConfig struct {
	Mode EdgeMode `yaml:"mode"`
}

// AudioConfig names the sound cue assets. Paths are relative to the assets dir.
type AudioConfig struct {
	Crash string `yaml:"crash"`
	Turbo string `yaml:"turbo"`
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
	WidthReduction float64 `yaml:"width_reduction"` // road width fraction removed at max difficulty
	CurveGain      float64 `yaml:"curve_gain"`      // extra drift per segment at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string onto a preset. Unknown strings give "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
