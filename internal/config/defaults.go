package config

import (
	_ "embed"
)

//go:embed defaults/escapezone.yaml
var defaultEscapeZoneYAML []byte

// DefaultEscapeZoneConfig returns the built-in configuration. It mirrors the
// embedded YAML and is the last-resort fallback when that fails to parse.
func DefaultEscapeZoneConfig() EscapeZoneConfig {
	return EscapeZoneConfig{
		World: WorldConfig{
			Width:  400,
			Height: 800,
		},
		Car: CarConfig{
			Size:             70,
			SteerSensitivity: 0.4,
			MaxAngle:         45,
			BottomOffset:     2,
		},
		Speed: SpeedConfig{
			Initial:    4,
			Max:        12,
			RampEvery:  200,
			RampAmount: 0.2,
		},
		Road: RoadConfig{
			SegmentHeight:  20,
			BaseWidth:      0.6,
			MinWidth:       0.25,
			Lookahead:      5,
			CurveBase:      1,
			StraightChance: 0.4,
			CurveMinTicks:  80,
			CurveTickRange: 100,
		},
		Spawn: SpawnConfig{
			ObstacleSize:   50,
			PowerUpSize:    40,
			ObstacleChance: 0.03,
			PowerUpChance:  0.008,
			SceneryChance:  0.15,
			TreeMinSize:    40,
			TreeSizeRange:  50,
			TreeMaxSize:    80,
			TreeGap:        60,
			TreeSpread:     80,
		},
		Turbo: TurboConfig{
			Mode:        TurboBoost,
			Boost:       8,
			DurationMS:  2000,
			MeterMax:    100,
			MeterRefill: 50,
			MeterDrain:  1,
		},
		Collision: CollisionConfig{
			Mode:           CollisionRadius,
			CarRadius:      0.35,
			ObstacleRadius: 0.4,
			PowerUpRadius:  0.5,
		},
		Edge: EdgeConfig{
			Mode: EdgeClamp,
		},
		Audio: AudioConfig{
			Crash: "explosion.mp3",
			Turbo: "turbo.mp3",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 15000,
			},
			Scaling: ScalingConfig{
				WidthReduction: 0.35,
				CurveGain:      3,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game family.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "escapezone":
		return defaultEscapeZoneYAML
	default:
		return nil
	}
}
