package escapezone

import (
	"github.com/vovakirdan/escapezone/internal/core"
)

// Autopilot produces tilt readings that keep the car near the middle of the
// road and sidestep obstacles coming down its lane. It drives `sim` runs
// and long-running tests.
type Autopilot struct {
	// Gain is degrees of target heading per world unit of lateral error.
	Gain float64
	// Horizon is how far above the car obstacles are considered.
	Horizon float64
}

// NewAutopilot returns an autopilot with a stable default tuning.
func NewAutopilot() Autopilot {
	return Autopilot{Gain: 0.5, Horizon: 300}
}

// Input builds the frame for the next tick. It presses Confirm when the
// game is not running so a run starts or restarts.
func (a Autopilot) Input(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	if !g.Playing() {
		in.Set(core.ActionConfirm)
		return in
	}

	car := g.Car()
	seg, ok := g.Track().SegmentAt(car.Pos.Y)
	if !ok {
		return in
	}
	lo, hi := car.Lane(seg)
	target := a.avoid(g, car, (lo+hi)/2, lo, hi)

	cfg := g.Config().Car
	heading := core.ClampF((target-car.Pos.X)*a.Gain, -cfg.MaxAngle, cfg.MaxAngle)
	perTick := cfg.SteerSensitivity * tiltScale
	if perTick <= 0 {
		return in
	}
	in.Tilt = core.Tilt{Y: core.ClampF((heading-car.Rotation)/perTick, -1, 1), Z: 1}
	return in
}

// avoid moves the target to whichever side of the nearest threatening
// obstacle has more room.
func (a Autopilot) avoid(g *Game, car Car, target, lo, hi float64) float64 {
	var threat *Entity
	obstacles := g.Entities().Obstacles()
	for i := range obstacles {
		o := &obstacles[i]
		if o.Pos.Y+o.Size < car.Pos.Y-a.Horizon || o.Pos.Y > car.Pos.Y+car.Size {
			continue
		}
		if o.Pos.X+o.Size < car.Pos.X-car.Size || o.Pos.X > car.Pos.X+2*car.Size {
			continue
		}
		if threat == nil || o.Pos.Y > threat.Pos.Y {
			threat = o
		}
	}
	if threat == nil {
		return target
	}

	leftRoom := threat.Pos.X - lo
	rightRoom := hi - (threat.Pos.X + threat.Size)
	if leftRoom > rightRoom {
		return core.ClampF(threat.Pos.X-car.Size, lo, hi)
	}
	return core.ClampF(threat.Pos.X+threat.Size, lo, hi)
}
