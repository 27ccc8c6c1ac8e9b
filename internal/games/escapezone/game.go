// Package escapezone implements a tilt-steered endless driving game: the
// road scrolls and curves, obstacles end the run and power-ups give turbo.
// One simulation serves every shipped variant; the variant picks the turbo,
// collision and road-edge policies.
package escapezone

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/escapezone/internal/config"
	"github.com/vovakirdan/escapezone/internal/core"
	"github.com/vovakirdan/escapezone/internal/registry"
)

type phase int

const (
	phaseStart phase = iota
	phasePlaying
	phaseGameOver
)

func (p phase) String() string {
	switch p {
	case phaseStart:
		return "start"
	case phasePlaying:
		return "playing"
	case phaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Game is the driving simulation for one variant.
type Game struct {
	variant    config.Variant
	fixedCfg   *config.EscapeZoneConfig // set by NewWithConfig; skips file loading
	cfg        config.EscapeZoneConfig
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	track      *Track
	entities   *EntityManager
	collider   Collider
	turbo      Turbo
	car        Car

	phase     phase
	paused    bool
	score     int
	ticks     int
	distance  float64
	pickups   int
	speed     float64 // base speed before turbo
	endReason core.EndReason
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path used by every variant.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config's own difficulty settings.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a game for the variant, loading config on every Reset.
func New(v config.Variant) *Game {
	return &Game{variant: v}
}

// NewWithConfig creates a game that always uses cfg (with the variant's
// policies applied) instead of loading it from disk.
func NewWithConfig(v config.Variant, cfg config.EscapeZoneConfig) *Game {
	config.ApplyVariant(&cfg, v)
	return &Game{variant: v, fixedCfg: &cfg}
}

// ID returns the variant id.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the variant's display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset loads configuration, reseeds and puts the game at its start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadEscapeZone(configPath)
		if err != nil {
			cfg = config.DefaultEscapeZoneConfig()
		}
		config.ApplyEscapeZonePreset(&cfg, difficultyPreset)
		config.ApplyVariant(&cfg, g.variant)
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.track = NewTrack(g.rng, &g.cfg, g.difficulty)
	g.entities = NewEntityManager(g.rng, &g.cfg)
	g.collider = NewCollider(g.cfg.Collision)
	g.turbo = NewTurbo(g.cfg.Turbo, runtime)

	g.newRound()
	g.phase = phaseStart
}

// newRound clears every per-run value and lays down a fresh road.
func (g *Game) newRound() {
	g.score = 0
	g.ticks = 0
	g.distance = 0
	g.pickups = 0
	g.paused = false
	g.endReason = core.EndNone
	g.speed = g.cfg.Speed.Initial

	g.track.Reset(g.difficulty.Level(0, 0))
	g.entities.Reset()
	g.turbo.Reset()
	g.car = newCar(&g.cfg)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case phaseStart:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBoost) {
			g.phase = phasePlaying
			return g.result(core.EventStart)
		}
		return g.result()

	case phaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.newRound()
			g.phase = phasePlaying
			return g.result(core.EventStart)
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	var events []core.Event
	g.ticks++

	if g.turbo.Engage(in.Has(core.ActionBoost)) {
		events = append(events, core.EventTurbo)
	}
	eff := g.EffectiveSpeed()
	level := g.difficulty.Level(g.score, g.ticks)

	// The world moves first so the car is checked against the road it
	// will be drawn on.
	g.track.Scroll(eff)
	g.entities.Scroll(eff)
	for _, seg := range g.track.Extend(level) {
		g.entities.MaybePlantTree(seg)
	}
	if seg, ok := g.track.SpawnSegment(); ok {
		g.entities.SpawnOnSegment(seg)
	}

	if reason := g.steer(in.Tilt, eff); reason != core.EndNone {
		return g.end(reason, events)
	}

	g.score++
	g.distance += eff
	g.rampSpeed()
	g.turbo.Tick()

	for _, o := range g.entities.Obstacles() {
		if g.collider.Obstacle(g.car, o) {
			return g.end(core.EndObstacle, events)
		}
	}

	var hit []int
	for _, p := range g.entities.PowerUps() {
		if g.collider.PowerUp(g.car, p) {
			hit = append(hit, p.ID)
		}
	}
	for _, id := range hit {
		if g.entities.RemovePowerUp(id) {
			g.pickups++
			g.turbo.Pickup()
			events = append(events, core.EventPickup, core.EventTurbo)
		}
	}

	return g.result(events...)
}

// steer turns and moves the car, then applies the edge policy against the
// segment under it.
func (g *Game) steer(tilt core.Tilt, eff float64) core.EndReason {
	x := g.car.Steer(tilt, eff, g.cfg.Car)

	seg, ok := g.track.SegmentAt(g.car.Pos.Y)
	if !ok {
		return core.EndOffTrack
	}

	lo, hi := g.car.Lane(seg)
	if x < lo || x > hi {
		if g.cfg.Edge.Mode == config.EdgeKill {
			g.car.Pos.X = x
			return core.EndOffTrack
		}
		x = core.ClampF(x, lo, hi)
	}
	g.car.Pos.X = x
	return core.EndNone
}

// rampSpeed raises the base speed by a fixed amount every RampEvery points.
func (g *Game) rampSpeed() {
	sc := g.cfg.Speed
	if sc.RampEvery <= 0 {
		return
	}
	steps := float64(g.score / sc.RampEvery)
	g.speed = math.Min(sc.Max, sc.Initial+steps*sc.RampAmount)
}

func (g *Game) end(reason core.EndReason, events []core.Event) core.StepResult {
	g.phase = phaseGameOver
	g.endReason = reason
	return g.result(append(events, core.EventCrash)...)
}

func (g *Game) result(events ...core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

// EffectiveSpeed returns the base speed plus any active turbo.
func (g *Game) EffectiveSpeed() float64 {
	return g.speed + g.turbo.Boost()
}

// Car returns the player car.
func (g *Game) Car() Car {
	return g.car
}

// Track returns the road.
func (g *Game) Track() *Track {
	return g.track
}

// Entities returns the obstacles, power-ups and scenery.
func (g *Game) Entities() *EntityManager {
	return g.entities
}

// Config returns the effective configuration after presets and variant.
func (g *Game) Config() config.EscapeZoneConfig {
	return g.cfg
}

// Playing reports whether a run is in progress.
func (g *Game) Playing() bool {
	return g.phase == phasePlaying
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == phaseGameOver,
		Paused:   g.paused,
	}
}

// Summary describes the current or last run.
func (g *Game) Summary() core.RunSummary {
	return core.RunSummary{
		Score:     g.score,
		Ticks:     g.ticks,
		Distance:  g.distance,
		Pickups:   g.pickups,
		EndReason: g.endReason,
	}
}

func init() {
	for _, v := range config.Variants() {
		v := v
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
