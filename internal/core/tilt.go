package core

import "math"

// Tilt is one accelerometer sample. Y drives steering: positive tilts right.
type Tilt struct {
	X, Y, Z float64
}

// TiltController emulates a tilt sensor from discrete left/right nudges.
// A nudge moves Y by Step; every Tick the reading relaxes toward level by
// Decay. Y is kept within [-1, 1].
type TiltController struct {
	Step  float64
	Decay float64
	y     float64
}

// NewTiltController returns a controller with the default feel.
func NewTiltController() *TiltController {
	return &TiltController{Step: 0.35, Decay: 0.85}
}

// Nudge tilts the virtual device; dir < 0 is left, dir > 0 right.
func (c *TiltController) Nudge(dir int) {
	switch {
	case dir < 0:
		c.y -= c.Step
	case dir > 0:
		c.y += c.Step
	}
	c.y = ClampF(c.y, -1, 1)
}

// Apply consumes steering actions from the frame and writes the reading
// into it.
func (c *TiltController) Apply(f *InputFrame) {
	if f.Has(ActionSteerLeft) {
		c.Nudge(-1)
	}
	if f.Has(ActionSteerRight) {
		c.Nudge(1)
	}
	f.Tilt = c.Reading()
}

// Tick relaxes the reading toward level. Tiny residues snap to zero.
func (c *TiltController) Tick() {
	c.y *= c.Decay
	if math.Abs(c.y) < 0.01 {
		c.y = 0
	}
}

// Reading returns the current sample. The device is assumed face-up (Z=1).
func (c *TiltController) Reading() Tilt {
	return Tilt{Y: c.y, Z: 1}
}

// Reset levels the device.
func (c *TiltController) Reset() {
	c.y = 0
}
