package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for values the simulation cannot run with.
// All problems are reported together.
func (c EscapeZoneConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Car.Size <= 0 {
		errs = append(errs, fmt.Errorf("car.size must be positive, got %g", c.Car.Size))
	}
	if c.Car.MaxAngle <= 0 || c.Car.MaxAngle >= 90 {
		errs = append(errs, fmt.Errorf("car.max_angle must be in (0, 90), got %g", c.Car.MaxAngle))
	}
	if c.Road.SegmentHeight <= 0 {
		errs = append(errs, fmt.Errorf("road.segment_height must be positive, got %g", c.Road.SegmentHeight))
	}
	if c.Road.BaseWidth <= 0 || c.Road.BaseWidth > 1 {
		errs = append(errs, fmt.Errorf("road.base_width must be in (0, 1], got %g", c.Road.BaseWidth))
	}
	if c.Road.MinWidth <= 0 || c.Road.MinWidth > c.Road.BaseWidth {
		errs = append(errs, fmt.Errorf("road.min_width must be in (0, base_width], got %g", c.Road.MinWidth))
	}
	if c.World.Width > 0 && c.Road.MinWidth*c.World.Width < c.Car.Size {
		errs = append(errs, errors.New("road.min_width leaves no room for the car"))
	}
	if c.Speed.Initial <= 0 || c.Speed.Max < c.Speed.Initial {
		errs = append(errs, fmt.Errorf("speed must satisfy 0 < initial <= max, got %g/%g", c.Speed.Initial, c.Speed.Max))
	}

	switch c.Turbo.Mode {
	case TurboBoost, TurboMeter:
	default:
		errs = append(errs, fmt.Errorf("turbo.mode %q is not one of boost, meter", c.Turbo.Mode))
	}
	switch c.Collision.Mode {
	case CollisionRadius, CollisionRect:
	default:
		errs = append(errs, fmt.Errorf("collision.mode %q is not one of radius, rect", c.Collision.Mode))
	}
	switch c.Edge.Mode {
	case EdgeClamp, EdgeKill:
	default:
		errs = append(errs, fmt.Errorf("edge.mode %q is not one of clamp, kill", c.Edge.Mode))
	}

	for name, p := range map[string]float64{
		"spawn.obstacle_chance": c.Spawn.ObstacleChance,
		"spawn.powerup_chance":  c.Spawn.PowerUpChance,
		"spawn.scenery_chance":  c.Spawn.SceneryChance,
		"road.straight_chance":  c.Road.StraightChance,
	} {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s must be a probability, got %g", name, p))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
