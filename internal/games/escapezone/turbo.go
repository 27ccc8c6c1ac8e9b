package escapezone

import (
	"github.com/vovakirdan/escapezone/internal/config"
	"github.com/vovakirdan/escapezone/internal/core"
)

// Turbo is the power-up policy: it decides how much extra speed the car
// gets and how pickups feed it.
type Turbo interface {
	// Engage handles the boost key. Reports whether turbo just kicked in.
	Engage(pressed bool) bool
	// Pickup applies a collected power-up.
	Pickup()
	// Boost returns the speed currently added on top of the base speed.
	Boost() float64
	// Tick advances timers and drains.
	Tick()
	// Level returns remaining turbo in [0, 1] for the HUD.
	Level() float64
	// Reset clears any active turbo.
	Reset()
}

// NewTurbo returns the policy selected by cfg.
func NewTurbo(cfg config.TurboConfig, rt core.RuntimeConfig) Turbo {
	if cfg.Mode == config.TurboMeter {
		return &meterTurbo{cfg: cfg}
	}
	return &boostTurbo{cfg: cfg, duration: rt.TicksFor(cfg.DurationMS)}
}

// boostTurbo grants a fixed boost for a number of ticks after each pickup.
type boostTurbo struct {
	cfg       config.TurboConfig
	duration  int
	remaining int
}

func (t *boostTurbo) Engage(bool) bool { return false }

func (t *boostTurbo) Pickup() {
	t.remaining = t.duration
}

func (t *boostTurbo) Boost() float64 {
	if t.remaining > 0 {
		return t.cfg.Boost
	}
	return 0
}

func (t *boostTurbo) Tick() {
	if t.remaining > 0 {
		t.remaining--
	}
}

func (t *boostTurbo) Level() float64 {
	if t.duration == 0 {
		return 0
	}
	return float64(t.remaining) / float64(t.duration)
}

func (t *boostTurbo) Reset() { t.remaining = 0 }

// meterTurbo stores pickups in a meter the player burns on demand.
type meterTurbo struct {
	cfg     config.TurboConfig
	meter   float64
	burning bool
}

func (t *meterTurbo) Engage(pressed bool) bool {
	if !pressed {
		return false
	}
	if t.burning {
		t.burning = false
		return false
	}
	if t.meter <= 0 {
		return false
	}
	t.burning = true
	return true
}

func (t *meterTurbo) Pickup() {
	t.meter = core.ClampF(t.meter+t.cfg.MeterRefill, 0, t.cfg.MeterMax)
}

func (t *meterTurbo) Boost() float64 {
	if t.burning {
		return t.cfg.Boost
	}
	return 0
}

func (t *meterTurbo) Tick() {
	if !t.burning {
		return
	}
	t.meter -= t.cfg.MeterDrain
	if t.meter <= 0 {
		t.meter = 0
		t.burning = false
	}
}

func (t *meterTurbo) Level() float64 {
	if t.cfg.MeterMax <= 0 {
		return 0
	}
	return t.meter / t.cfg.MeterMax
}

func (t *meterTurbo) Reset() {
	t.meter = 0
	t.burning = false
}
