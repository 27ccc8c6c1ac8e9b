package escapezone

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/escapezone/internal/config"
)

func newTestTrack(seed int64) (*Track, *config.EscapeZoneConfig) {
	cfg := config.DefaultEscapeZoneConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	return NewTrack(rand.New(rand.NewSource(seed)), &cfg, diff), &cfg
}

func TestTrackResetLayout(t *testing.T) {
	tr, cfg := newTestTrack(1)
	tr.Reset(0)

	segs := tr.Segments()
	want := int(math.Ceil(cfg.World.Height/cfg.Road.SegmentHeight)) + cfg.Road.Lookahead
	if len(segs) != want {
		t.Fatalf("initial segments = %d, expected %d", len(segs), want)
	}

	width := cfg.World.Width * cfg.Road.BaseWidth
	for i, s := range segs {
		if s.Y != cfg.World.Height-float64(i)*cfg.Road.SegmentHeight {
			t.Errorf("segment %d y = %v", i, s.Y)
		}
		if s.Width != width || s.X != (cfg.World.Width-width)/2 {
			t.Errorf("segment %d should be centred at base width, got x=%v w=%v", i, s.X, s.Width)
		}
	}
	if c := tr.Curve(); c.Direction != 0 || c.Duration != 0 {
		t.Errorf("curve should start straight and expired, got %+v", c)
	}
}

func TestTrackExtendKeepsLookahead(t *testing.T) {
	tr, cfg := newTestTrack(2)
	tr.Reset(0)
	threshold := -cfg.Road.SegmentHeight * float64(cfg.Road.Lookahead)

	for i := 0; i < 500; i++ {
		tr.Scroll(7.5)
		tr.Extend(0)
		top, ok := tr.Top()
		if !ok {
			t.Fatal("track emptied")
		}
		if top.Y > threshold {
			t.Fatalf("tick %d: top segment at %v, expected <= %v", i, top.Y, threshold)
		}
		if _, ok := tr.SegmentAt(cfg.World.Height - cfg.Car.Size*cfg.Car.BottomOffset); !ok {
			t.Fatalf("tick %d: gap under the car row", i)
		}
	}
}

func TestTrackExtendIsBounded(t *testing.T) {
	tr, cfg := newTestTrack(3)
	cfg.Road.SegmentHeight = 5
	tr.Reset(0)

	// Almost the whole road scrolls away in one go.
	tr.Scroll(cfg.World.Height)
	created := tr.Extend(0)
	if len(created) != maxSegmentsPerTick {
		t.Fatalf("created %d segments in one call, expected the cap of %d", len(created), maxSegmentsPerTick)
	}

	for i := 0; i < 10; i++ {
		tr.Extend(0)
	}
	top, _ := tr.Top()
	if top.Y > -cfg.Road.SegmentHeight*float64(cfg.Road.Lookahead) {
		t.Errorf("later calls should catch up, top at %v", top.Y)
	}
}

func TestCurveChangesOnlyWhenDurationExpires(t *testing.T) {
	tr, cfg := newTestTrack(2024)
	tr.Reset(0)
	tr.Extend(0) // settle at exactly lookahead

	rerolls := 0
	for i := 0; i < 2000; i++ {
		before := tr.Curve()
		prev, _ := tr.Top()

		tr.Scroll(cfg.Road.SegmentHeight)
		created := tr.Extend(0)
		if len(created) != 1 {
			t.Fatalf("step %d: expected one new segment, got %d", i, len(created))
		}
		after := tr.Curve()

		if before.Duration > 0 {
			if after.Direction != before.Direction {
				t.Fatalf("step %d: direction changed %d -> %d with %d ticks left",
					i, before.Direction, after.Direction, before.Duration)
			}
			if after.Duration != before.Duration-1 {
				t.Fatalf("step %d: duration %d -> %d", i, before.Duration, after.Duration)
			}
		} else {
			rerolls++
			if after.Duration < cfg.Road.CurveMinTicks || after.Duration >= cfg.Road.CurveMinTicks+cfg.Road.CurveTickRange {
				t.Fatalf("step %d: re-rolled duration %d out of range", i, after.Duration)
			}
		}

		seg := created[0]
		drift := seg.X - (prev.X + float64(after.Direction)*cfg.Road.CurveBase)
		clamped := seg.X == 0 || seg.Right() == cfg.World.Width
		if math.Abs(drift) > 1e-9 && !clamped {
			t.Fatalf("step %d: segment x=%v does not follow the curve from %v", i, seg.X, prev.X)
		}
	}
	if rerolls < 2 {
		t.Errorf("expected several curve re-rolls, got %d", rerolls)
	}
}

func TestTrackWidthShrinksWithLevel(t *testing.T) {
	tr, cfg := newTestTrack(4)

	prev := math.Inf(1)
	for _, level := range []float64{0, 0.25, 0.5, 0.75, 1} {
		tr.Reset(0)
		tr.Scroll(cfg.Road.SegmentHeight)
		created := tr.Extend(level)
		if len(created) == 0 {
			t.Fatal("expected a new segment")
		}
		w := created[len(created)-1].Width
		if w > prev {
			t.Errorf("width grew from %v to %v at level %v", prev, w, level)
		}
		if w < cfg.World.Width*cfg.Road.MinWidth {
			t.Errorf("width %v below floor at level %v", w, level)
		}
		prev = w
	}
}

func TestSpawnSegment(t *testing.T) {
	tr, cfg := newTestTrack(5)
	tr.Reset(0)

	// Fresh segments sit on multiples of the segment height.
	if s, ok := tr.SpawnSegment(); ok {
		t.Errorf("no segment should straddle y=0, got %+v", s)
	}

	tr.Scroll(cfg.Road.SegmentHeight / 2)
	seg, ok := tr.SpawnSegment()
	if !ok {
		t.Fatal("expected a segment straddling the top edge")
	}
	if !(seg.Y > -cfg.Road.SegmentHeight && seg.Y < 0) {
		t.Errorf("spawn segment y = %v", seg.Y)
	}
}

func TestSegmentAtCoversRoadAfterLongScroll(t *testing.T) {
	tr, cfg := newTestTrack(6)
	tr.Reset(0)
	segH := cfg.Road.SegmentHeight

	// Fractional steps like the eased speed produces.
	for i := 0; i < 5000; i++ {
		tr.Scroll(3.7 + float64(i%7)*0.013)
		tr.Extend(0.5)

		segs := tr.Segments()
		for j := 1; j < len(segs); j++ {
			if math.Abs(segs[j].Y+segH-segs[j-1].Y) > 1e-6 {
				t.Fatalf("tick %d: rows %d and %d do not meet", i, segs[j-1].ID, segs[j].ID)
			}
		}
		for _, s := range segs {
			for _, y := range []float64{s.Y, math.Nextafter(s.Y, math.Inf(-1)), s.Y + segH, s.Y + segH/2} {
				if y < 0 || y >= cfg.World.Height {
					continue
				}
				if _, ok := tr.SegmentAt(y); !ok {
					t.Fatalf("tick %d: no segment at y=%v", i, y)
				}
			}
		}
		carY := cfg.World.Height - cfg.Car.Size*cfg.Car.BottomOffset
		if _, ok := tr.SegmentAt(carY); !ok {
			t.Fatalf("tick %d: gap under the car row", i)
		}
	}
}

func TestSegmentAtOutsideRoad(t *testing.T) {
	tr, cfg := newTestTrack(7)
	tr.Reset(0)

	if _, ok := tr.SegmentAt(cfg.World.Height + 2*cfg.Road.SegmentHeight); ok {
		t.Error("nothing should sit below the bottom row")
	}
	top, _ := tr.Top()
	if _, ok := tr.SegmentAt(top.Y - 1); ok {
		t.Error("nothing should sit above the newest row")
	}
	if s, ok := tr.SegmentAt(top.Y); !ok || s.ID != top.ID {
		t.Errorf("top edge of the newest row should resolve to it, got %+v", s)
	}
}
