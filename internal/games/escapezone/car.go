package escapezone

import (
	"math"

	"github.com/vovakirdan/escapezone/internal/config"
	"github.com/vovakirdan/escapezone/internal/core"
)

// tiltScale turns a unit tilt reading into degrees of rotation per tick
// before sensitivity is applied.
const tiltScale = 10

// Car is the player vehicle. Pos is the sprite's top-left corner; the car
// never moves vertically, the road scrolls under it.
type Car struct {
	Pos      core.Vec
	Rotation float64 // degrees, negative = left
	Size     float64
}

// newCar places the car centred near the bottom of the world.
func newCar(cfg *config.EscapeZoneConfig) Car {
	size := cfg.Car.Size
	return Car{
		Pos: core.Vec{
			X: cfg.World.Width/2 - size/2,
			Y: cfg.World.Height - size*cfg.Car.BottomOffset,
		},
		Size: size,
	}
}

// Steer applies one tick of tilt: the reading turns the car (clamped to
// the max angle) and the heading moves it sideways at the given speed.
// Returns the proposed x; the caller applies the edge policy.
func (c *Car) Steer(tilt core.Tilt, speed float64, cfg config.CarConfig) float64 {
	delta := tilt.Y * cfg.SteerSensitivity * tiltScale
	c.Rotation = core.ClampF(c.Rotation+delta, -cfg.MaxAngle, cfg.MaxAngle)
	return c.Pos.X + speed*math.Sin(core.Radians(c.Rotation))
}

// Box returns the car bounds in world units.
func (c Car) Box() core.RectF {
	return core.NewRectF(c.Pos.X, c.Pos.Y, c.Size, c.Size)
}

// Lane returns the x range the car's left edge may occupy on seg.
func (c Car) Lane(seg Segment) (lo, hi float64) {
	return seg.X, seg.Right() - c.Size
}
