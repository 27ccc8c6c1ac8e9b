package escapezone

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/escapezone/internal/config"
	"github.com/vovakirdan/escapezone/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  40,
		ScreenH:  30,
		TickRate: 60,
		Seed:     seed,
	}
}

// newTestGame builds a game for the variant with obstacles and power-ups
// switched off unless mutate turns them back on.
func newTestGame(t *testing.T, variantID string, seed int64, mutate func(*config.EscapeZoneConfig)) *Game {
	t.Helper()
	v, ok := config.LookupVariant(variantID)
	if !ok {
		t.Fatalf("unknown variant %q", variantID)
	}
	cfg := config.DefaultEscapeZoneConfig()
	cfg.Spawn.ObstacleChance = 0
	cfg.Spawn.PowerUpChance = 0
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(v, cfg)
	g.Reset(testRuntime(seed))
	return g
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func tilted(y float64) core.InputFrame {
	in := core.NewInputFrame()
	in.Tilt = core.Tilt{Y: y, Z: 1}
	return in
}

func startGame(t *testing.T, g *Game) {
	t.Helper()
	res := g.Step(press(core.ActionConfirm))
	if !g.Playing() {
		t.Fatal("Confirm should start the run")
	}
	if !hasEvent(res.Events, core.EventStart) {
		t.Errorf("start should emit %v, got %v", core.EventStart, res.Events)
	}
}

func hasEvent(events []core.Event, e core.Event) bool {
	for _, ev := range events {
		if ev == e {
			return true
		}
	}
	return false
}

func countEvent(events []core.Event, e core.Event) int {
	n := 0
	for _, ev := range events {
		if ev == e {
			n++
		}
	}
	return n
}

func TestStartScreenWaitsForInput(t *testing.T) {
	g := newTestGame(t, "escapezone", 1, nil)

	for i := 0; i < 10; i++ {
		g.Step(idle())
	}
	if g.Playing() {
		t.Fatal("game should wait at the start screen")
	}
	if g.State().Score != 0 {
		t.Errorf("score should not advance before start, got %d", g.State().Score)
	}

	g.Step(press(core.ActionBoost))
	if !g.Playing() {
		t.Error("Boost should also start the run")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (*Game, core.RunSummary) {
		g := newTestGame(t, "escapezone", 12345, func(c *config.EscapeZoneConfig) {
			c.Spawn.ObstacleChance = 0.03
			c.Spawn.PowerUpChance = 0.008
		})
		pilot := NewAutopilot()
		for i := 0; i < 1500; i++ {
			g.Step(pilot.Input(g))
			if g.State().GameOver {
				break
			}
		}
		return g, g.Summary()
	}

	g1, s1 := run()
	g2, s2 := run()

	if s1 != s2 {
		t.Errorf("Determinism failed: summaries differ. Run1=%+v, Run2=%+v", s1, s2)
	}

	seg1, seg2 := g1.Track().Segments(), g2.Track().Segments()
	if len(seg1) != len(seg2) {
		t.Fatalf("Determinism failed: segment counts differ. Run1=%d, Run2=%d", len(seg1), len(seg2))
	}
	for i := range seg1 {
		if seg1[i] != seg2[i] {
			t.Fatalf("Determinism failed: segment %d differs. Run1=%+v, Run2=%+v", i, seg1[i], seg2[i])
		}
	}
	if len(g1.Entities().Trees()) != len(g2.Entities().Trees()) {
		t.Error("Determinism failed: scenery differs")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, "escapezone", 42, nil)
	startGame(t, g)

	for i := 0; i < 100; i++ {
		g.Step(tilted(0.3))
	}
	if g.State().Score == 0 {
		t.Fatal("score should advance while playing")
	}

	g.Reset(testRuntime(42))

	if g.Playing() {
		t.Error("Reset should return to the start screen")
	}
	if s := g.Summary(); s.Score != 0 || s.Ticks != 0 || s.Distance != 0 || s.Pickups != 0 {
		t.Errorf("Reset should clear the run, got %+v", s)
	}
	if g.Car().Rotation != 0 {
		t.Errorf("Reset should level the car, rotation=%v", g.Car().Rotation)
	}
	if g.EffectiveSpeed() != g.Config().Speed.Initial {
		t.Errorf("Reset should restore initial speed, got %v", g.EffectiveSpeed())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, "escapezone", 7, nil)
	startGame(t, g)

	for i := 0; i < 10; i++ {
		g.Step(idle())
	}

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("P should pause")
	}

	score := g.State().Score
	car := g.Car()
	top, _ := g.Track().Top()
	for i := 0; i < 20; i++ {
		g.Step(tilted(1))
	}
	if g.State().Score != score {
		t.Errorf("score changed while paused: %d -> %d", score, g.State().Score)
	}
	if g.Car() != car {
		t.Error("car moved while paused")
	}
	if top2, _ := g.Track().Top(); top2 != top {
		t.Error("track scrolled while paused")
	}

	res := g.Step(press(core.ActionPause))
	if res.State.Paused {
		t.Fatal("second P should resume")
	}
	if res.State.Score != score+1 {
		t.Errorf("resuming tick should advance the score, got %d", res.State.Score)
	}
}

func TestTrackInvariantsDuringPlay(t *testing.T) {
	g := newTestGame(t, "escapezone", 99, func(c *config.EscapeZoneConfig) {
		// Hardest road: narrow and strongly curving from the first tick.
		c.Difficulty.Enabled = false
		c.Difficulty.InitialLevel = 1
	})
	startGame(t, g)

	w := g.Config().World.Width
	for i := 0; i < 3000; i++ {
		// Swing hard between the edges to exercise the clamp.
		tilt := 1.0
		if (i/150)%2 == 1 {
			tilt = -1
		}
		g.Step(tilted(tilt))

		if g.State().GameOver {
			t.Fatalf("clamped car should never leave the road, ended at tick %d: %+v", i, g.Summary())
		}

		segs := g.Track().Segments()
		for j, s := range segs {
			if s.Width > w {
				t.Fatalf("tick %d: segment %d wider than world: %v", i, s.ID, s.Width)
			}
			if s.X < 0 || s.Right() > w+1e-9 {
				t.Fatalf("tick %d: segment %d outside world: x=%v right=%v", i, s.ID, s.X, s.Right())
			}
			if j > 0 && !(s.Y < segs[j-1].Y) {
				t.Fatalf("tick %d: segments out of order at %d: %v then %v", i, j, segs[j-1].Y, s.Y)
			}
			if j > 0 && s.ID <= segs[j-1].ID {
				t.Fatalf("tick %d: segment ids not in creation order", i)
			}
		}

		car := g.Car()
		seg, ok := g.Track().SegmentAt(car.Pos.Y)
		if !ok {
			t.Fatalf("tick %d: no segment under the car", i)
		}
		if car.Pos.X < seg.X-1e-9 || car.Pos.X > seg.Right()-car.Size+1e-9 {
			t.Fatalf("tick %d: car x=%v outside lane [%v, %v]", i, car.Pos.X, seg.X, seg.Right()-car.Size)
		}
		if math.Abs(car.Rotation) > g.Config().Car.MaxAngle {
			t.Fatalf("tick %d: rotation %v beyond max angle", i, car.Rotation)
		}
	}
}

func TestDefaultRoadIdlesWithoutLeaving(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g := newTestGame(t, "escapezone", seed, nil)
		startGame(t, g)

		for i := 0; i < 2500; i++ {
			g.Step(idle())
			if g.State().GameOver {
				t.Fatalf("seed %d: clamped car left the road at tick %d: %+v", seed, i, g.Summary())
			}
		}
	}
}

func TestInitialRoadUsesPresetLevel(t *testing.T) {
	tests := []struct {
		preset config.DifficultyPreset
	}{
		{config.DifficultyEasy},
		{config.DifficultyNormal},
		{config.DifficultyHard},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			g := newTestGame(t, "escapezone", 11, func(c *config.EscapeZoneConfig) {
				config.ApplyEscapeZonePreset(c, tt.preset)
			})
			cfg := g.Config()
			diff := config.NewDifficultyManager(cfg.Difficulty)
			want := cfg.World.Width * diff.RoadWidth(cfg.Road.BaseWidth, cfg.Road.MinWidth, config.InitialLevelForPreset(tt.preset))

			for _, s := range g.Track().Segments() {
				if math.Abs(s.Width-want) > 1e-9 {
					t.Fatalf("segment %d width = %v, expected %v", s.ID, s.Width, want)
				}
				if math.Abs(s.X-(cfg.World.Width-want)/2) > 1e-9 {
					t.Fatalf("segment %d not centred: x = %v", s.ID, s.X)
				}
			}
			if tt.preset != config.DifficultyEasy && !(want < cfg.World.Width*cfg.Road.BaseWidth) {
				t.Errorf("%s road should start narrower than the base width", tt.preset)
			}
		})
	}
}

func TestSpeedRamp(t *testing.T) {
	g := newTestGame(t, "escapezone", 3, nil)
	startGame(t, g)

	for i := 0; i < 199; i++ {
		g.Step(NewAutopilot().Input(g))
	}
	if got := g.EffectiveSpeed(); got != 4 {
		t.Errorf("speed before first ramp = %v, expected 4", got)
	}
	g.Step(NewAutopilot().Input(g))
	if got := g.EffectiveSpeed(); math.Abs(got-4.2) > 1e-9 {
		t.Errorf("speed after 200 points = %v, expected 4.2", got)
	}

	g.score = 1_000_000
	g.rampSpeed()
	if got := g.EffectiveSpeed(); got != g.Config().Speed.Max {
		t.Errorf("speed should cap at %v, got %v", g.Config().Speed.Max, got)
	}
}

func TestObstacleCollisionEndsRunOnce(t *testing.T) {
	for _, id := range []string{"escapezone", "escapezone_boxed"} {
		t.Run(id, func(t *testing.T) {
			g := newTestGame(t, id, 5, nil)
			startGame(t, g)

			car := g.Car()
			g.entities.obstacles = append(g.entities.obstacles, Entity{ID: 1000, Pos: car.Pos, Size: 50})

			res := g.Step(idle())
			if !res.State.GameOver {
				t.Fatal("obstacle contact should end the run")
			}
			if countEvent(res.Events, core.EventCrash) != 1 {
				t.Errorf("expected exactly one crash event, got %v", res.Events)
			}
			if g.Summary().EndReason != core.EndObstacle {
				t.Errorf("EndReason = %q, expected %q", g.Summary().EndReason, core.EndObstacle)
			}

			res = g.Step(idle())
			if len(res.Events) != 0 {
				t.Errorf("no further events expected after game over, got %v", res.Events)
			}
		})
	}
}

func TestCollisionPolicies(t *testing.T) {
	// Boxes overlap diagonally but the circles are too far apart.
	tests := []struct {
		variant string
		crash   bool
	}{
		{"escapezone", false},
		{"escapezone_boxed", true},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			g := newTestGame(t, tt.variant, 5, nil)
			startGame(t, g)

			c := g.Car().Box().Center()
			size := 50.0
			speed := g.EffectiveSpeed()
			pos := core.Vec{X: c.X + 40 - size/2, Y: c.Y + 40 - size/2 - speed}
			g.entities.obstacles = append(g.entities.obstacles, Entity{ID: 1000, Pos: pos, Size: size})

			res := g.Step(idle())
			if res.State.GameOver != tt.crash {
				t.Errorf("GameOver = %v, expected %v", res.State.GameOver, tt.crash)
			}
		})
	}
}

func TestPowerUpCollectedOnce(t *testing.T) {
	for _, id := range []string{"escapezone", "escapezone_boxed", "escapezone_meter"} {
		t.Run(id, func(t *testing.T) {
			g := newTestGame(t, id, 5, nil)
			startGame(t, g)

			car := g.Car()
			g.entities.powerUps = append(g.entities.powerUps, Entity{ID: 2000, Pos: car.Pos, Size: 40})

			res := g.Step(idle())
			if res.State.GameOver {
				t.Fatal("power-up must not end the run")
			}
			if countEvent(res.Events, core.EventPickup) != 1 {
				t.Errorf("expected one pickup event, got %v", res.Events)
			}
			if !hasEvent(res.Events, core.EventTurbo) {
				t.Errorf("pickup should play the turbo cue, got %v", res.Events)
			}
			if len(g.Entities().PowerUps()) != 0 {
				t.Error("collected power-up should be removed")
			}

			for i := 0; i < 5; i++ {
				res = g.Step(idle())
				if hasEvent(res.Events, core.EventPickup) {
					t.Fatal("power-up collected twice")
				}
			}
			if g.Summary().Pickups != 1 {
				t.Errorf("Pickups = %d, expected 1", g.Summary().Pickups)
			}
		})
	}
}

func TestBoostLastsConfiguredTicks(t *testing.T) {
	g := newTestGame(t, "escapezone", 11, nil)
	startGame(t, g)
	base := g.EffectiveSpeed()

	pickup := func() {
		g.entities.powerUps = append(g.entities.powerUps, Entity{ID: 3000 + g.ticks, Pos: g.Car().Pos, Size: 40})
		res := g.Step(idle())
		if !hasEvent(res.Events, core.EventPickup) {
			t.Fatal("expected pickup")
		}
	}

	pickup()
	if got := g.EffectiveSpeed(); got != base+8 {
		t.Fatalf("boosted speed = %v, expected %v", got, base+8)
	}

	// Re-pickup halfway restarts the timer.
	for i := 0; i < 60; i++ {
		g.Step(idle())
	}
	pickup()

	ticks := g.runtime.TicksFor(g.Config().Turbo.DurationMS)
	if ticks != 120 {
		t.Fatalf("TicksFor(2000) = %d, expected 120", ticks)
	}
	for i := 0; i < ticks-1; i++ {
		g.Step(idle())
		if g.EffectiveSpeed() <= base {
			t.Fatalf("boost ended early after %d ticks", i+1)
		}
	}
	g.Step(idle())
	if got := g.EffectiveSpeed(); got != base {
		t.Errorf("boost should end after %d ticks, speed=%v", ticks, got)
	}
}

func TestMeterVariantBurnsOnDemand(t *testing.T) {
	g := newTestGame(t, "escapezone_meter", 11, nil)
	startGame(t, g)
	base := g.EffectiveSpeed()

	res := g.Step(press(core.ActionBoost))
	if hasEvent(res.Events, core.EventTurbo) || g.EffectiveSpeed() != base {
		t.Fatal("empty meter must not engage")
	}

	g.entities.powerUps = append(g.entities.powerUps, Entity{ID: 1, Pos: g.Car().Pos, Size: 40})
	g.Step(idle())
	if g.EffectiveSpeed() != base {
		t.Fatal("meter pickup alone should not boost")
	}

	res = g.Step(press(core.ActionBoost))
	if !hasEvent(res.Events, core.EventTurbo) {
		t.Errorf("engaging turbo should emit %v", core.EventTurbo)
	}
	if g.EffectiveSpeed() != base+8 {
		t.Fatalf("burning speed = %v, expected %v", g.EffectiveSpeed(), base+8)
	}

	burned := 1
	for g.EffectiveSpeed() > base && burned < 100 {
		g.Step(idle())
		burned++
	}
	if burned != 50 {
		t.Errorf("meter of 50 at 1/tick burned for %d ticks", burned)
	}
}

func TestEdgePolicies(t *testing.T) {
	tests := []struct {
		variant string
		dies    bool
	}{
		{"escapezone", false},
		{"escapezone_edge", true},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			g := newTestGame(t, tt.variant, 8, nil)
			startGame(t, g)

			var res core.StepResult
			for i := 0; i < 300 && !res.State.GameOver; i++ {
				res = g.Step(tilted(1))
			}

			if res.State.GameOver != tt.dies {
				t.Fatalf("GameOver = %v, expected %v", res.State.GameOver, tt.dies)
			}
			if !tt.dies {
				return
			}
			if g.Summary().EndReason != core.EndOffTrack {
				t.Errorf("EndReason = %q, expected %q", g.Summary().EndReason, core.EndOffTrack)
			}
			if !hasEvent(res.Events, core.EventCrash) {
				t.Error("leaving the road should play the crash cue")
			}
		})
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, "escapezone_edge", 8, nil)
	startGame(t, g)

	for i := 0; i < 300 && !g.State().GameOver; i++ {
		g.Step(tilted(-1))
	}
	if !g.State().GameOver {
		t.Fatal("expected the run to end")
	}

	res := g.Step(press(core.ActionRestart))
	if !g.Playing() || res.State.GameOver {
		t.Fatal("R should restart the run")
	}
	if !hasEvent(res.Events, core.EventStart) {
		t.Error("restart should emit the start event")
	}
	if s := g.Summary(); s.Score != 0 || s.EndReason != core.EndNone {
		t.Errorf("restart should clear the run, got %+v", s)
	}
	if g.Car().Pos.X != g.Config().World.Width/2-g.Config().Car.Size/2 {
		t.Error("restart should re-centre the car")
	}
}

func TestSummaryTracksRun(t *testing.T) {
	g := newTestGame(t, "escapezone", 2, nil)
	startGame(t, g)

	for i := 0; i < 50; i++ {
		g.Step(idle())
	}
	s := g.Summary()
	if s.Ticks != 50 || s.Score != 50 {
		t.Errorf("expected 50 ticks and points, got %+v", s)
	}
	if math.Abs(s.Distance-50*4) > 1e-9 {
		t.Errorf("Distance = %v, expected %v", s.Distance, 50*4)
	}
}

func TestAutopilotKeepsCarOnRoad(t *testing.T) {
	g := newTestGame(t, "escapezone_edge", 2024, nil)
	pilot := NewAutopilot()

	g.Step(pilot.Input(g))
	if !g.Playing() {
		t.Fatal("autopilot should start the run")
	}
	for i := 0; i < 600; i++ {
		g.Step(pilot.Input(g))
		if g.State().GameOver {
			t.Fatalf("autopilot left the road at tick %d: %+v", i, g.Summary())
		}
	}
	if g.State().Score != 600 {
		t.Errorf("Score = %d, expected 600", g.State().Score)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, "escapezone", 4, nil)
	screen := core.NewScreen(40, 30)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Escape Zone") {
		t.Error("start screen should show the title")
	}

	startGame(t, g)
	g.Step(idle())
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Score: 1") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.ContainsRune(screen.String(), CarBody) {
		t.Error("car should be drawn")
	}
	if !strings.ContainsRune(screen.String(), EdgeLeft) || !strings.ContainsRune(screen.String(), EdgeRight) {
		t.Error("road edges should be drawn")
	}

	g.phase = phaseGameOver
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over box should be drawn")
	}
}

func TestHUDRowIsRepaintedEachFrame(t *testing.T) {
	g := newTestGame(t, "escapezone", 4, nil)
	startGame(t, g)
	g.Step(idle())

	screen := core.NewScreen(40, 30)
	screen.FillColor('@', core.ColorRed)
	g.Render(screen)

	if strings.ContainsRune(screen.Row(0), '@') {
		t.Fatalf("stale cells left in HUD row %q", screen.Row(0))
	}
	// Gap between the score and the turbo gauge.
	mid := screen.GetCell(20, 0)
	if mid.Rune != ' ' || mid.Color != core.ColorDefault {
		t.Errorf("HUD gap cell = %+v", mid)
	}
}

func TestRenderBeforeReset(t *testing.T) {
	g := New(config.Variants()[0])
	screen := core.NewScreen(20, 10)
	g.Render(screen)
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range config.Variants() {
		g := New(v)
		if g.ID() != v.ID || g.Title() != v.Title {
			t.Errorf("New(%s) = %s/%s", v.ID, g.ID(), g.Title())
		}
	}
}
