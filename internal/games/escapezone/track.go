package escapezone

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/escapezone/internal/config"
)

// maxSegmentsPerTick bounds generation when the scroll outruns the lookahead.
const maxSegmentsPerTick = 64

// Segment is one horizontal slice of drivable road.
type Segment struct {
	ID    int     // also the segment's row index counted up from the first one
	Y     float64 // top edge in world units; grows as the road scrolls down
	X     float64 // left edge
	Width float64
}

// Right returns the x-coordinate of the right edge.
func (s Segment) Right() float64 {
	return s.X + s.Width
}

// Curve biases where new segments are placed.
type Curve struct {
	Direction int // -1 left, 0 straight, 1 right
	Duration  int // segments left before re-roll
}

// Track owns the ordered segment sequence: oldest (bottom-most) first,
// newest (top-most) last. Segment IDs are contiguous, and every Y is derived
// from the shared scroll offset and the ID so neighbours always meet exactly.
type Track struct {
	segments   []Segment
	curve      Curve
	nextID     int
	scrolled   float64
	rng        *rand.Rand
	cfg        *config.EscapeZoneConfig
	difficulty *config.DifficultyManager
}

// NewTrack creates a track drawing randomness from rng.
func NewTrack(rng *rand.Rand, cfg *config.EscapeZoneConfig, diff *config.DifficultyManager) *Track {
	return &Track{
		segments:   make([]Segment, 0, 64),
		rng:        rng,
		cfg:        cfg,
		difficulty: diff,
	}
}

// Reset lays down a straight road from the bottom of the screen up past the
// top, centred, at the width for the given difficulty level.
func (t *Track) Reset(level float64) {
	t.segments = t.segments[:0]
	t.curve = Curve{}
	t.nextID = 0
	t.scrolled = 0

	w := t.cfg.World.Width
	h := t.cfg.World.Height
	segH := t.cfg.Road.SegmentHeight
	width := w * t.difficulty.RoadWidth(t.cfg.Road.BaseWidth, t.cfg.Road.MinWidth, level)
	x := (w - width) / 2

	count := int(math.Ceil(h/segH)) + t.cfg.Road.Lookahead
	for i := 0; i < count; i++ {
		id := t.newID()
		t.segments = append(t.segments, Segment{
			ID:    id,
			Y:     t.rowY(id),
			X:     x,
			Width: width,
		})
	}
}

// rowY is the top edge of the segment with the given ID.
func (t *Track) rowY(id int) float64 {
	return t.cfg.World.Height + t.scrolled - float64(id)*t.cfg.Road.SegmentHeight
}

// rowAt is the ID of the segment whose span [Y, Y+segH) contains y.
func (t *Track) rowAt(y float64) int {
	return int(math.Ceil((t.cfg.World.Height + t.scrolled - y) / t.cfg.Road.SegmentHeight))
}

func (t *Track) newID() int {
	id := t.nextID
	t.nextID++
	return id
}

// Segments returns the live segments, bottom-most first.
func (t *Track) Segments() []Segment {
	return t.segments
}

// Curve returns the current curve state.
func (t *Track) Curve() Curve {
	return t.curve
}

// Top returns the newest segment.
func (t *Track) Top() (Segment, bool) {
	if len(t.segments) == 0 {
		return Segment{}, false
	}
	return t.segments[len(t.segments)-1], true
}

// Scroll moves every segment down by dy and drops those that left the screen.
func (t *Track) Scroll(dy float64) {
	limit := t.cfg.World.Height + t.cfg.Road.SegmentHeight
	t.scrolled += dy

	kept := t.segments[:0]
	for _, s := range t.segments {
		s.Y = t.rowY(s.ID)
		if s.Y < limit {
			kept = append(kept, s)
		}
	}
	t.segments = kept
}

// Extend appends segments until the newest sits at least lookahead
// segments above the visible area. Returns the segments it created.
func (t *Track) Extend(level float64) []Segment {
	threshold := -t.cfg.Road.SegmentHeight * float64(t.cfg.Road.Lookahead)

	var created []Segment
	for n := 0; n < maxSegmentsPerTick; n++ {
		top, ok := t.Top()
		if !ok || top.Y <= threshold {
			break
		}
		seg := t.next(top, level)
		t.segments = append(t.segments, seg)
		created = append(created, seg)
	}
	return created
}

// next builds the segment above prev, advancing the curve state.
func (t *Track) next(prev Segment, level float64) Segment {
	if t.curve.Duration <= 0 {
		t.curve = t.rollCurve()
	} else {
		t.curve.Duration--
	}

	w := t.cfg.World.Width
	width := w * t.difficulty.RoadWidth(t.cfg.Road.BaseWidth, t.cfg.Road.MinWidth, level)
	strength := float64(t.curve.Direction) * t.difficulty.CurveStrength(t.cfg.Road.CurveBase, level)

	x := prev.X + strength
	if x < 0 {
		x = 0
	}
	if x+width > w {
		x = w - width
	}

	id := t.newID()
	return Segment{
		ID:    id,
		Y:     t.rowY(id),
		X:     x,
		Width: width,
	}
}

// rollCurve picks a new bend: straight with StraightChance, otherwise an
// even split between left and right.
func (t *Track) rollCurve() Curve {
	dir := 0
	if t.rng.Float64() >= t.cfg.Road.StraightChance {
		if t.rng.Float64() < 0.5 {
			dir = -1
		} else {
			dir = 1
		}
	}

	duration := t.cfg.Road.CurveMinTicks
	if t.cfg.Road.CurveTickRange > 0 {
		duration += t.rng.Intn(t.cfg.Road.CurveTickRange)
	}
	return Curve{Direction: dir, Duration: duration}
}

// SegmentAt returns the segment whose vertical span contains y. Every y
// maps to exactly one row, so the live rows cover their span without gaps.
func (t *Track) SegmentAt(y float64) (Segment, bool) {
	if len(t.segments) == 0 {
		return Segment{}, false
	}
	i := t.rowAt(y) - t.segments[0].ID
	if i < 0 || i >= len(t.segments) {
		return Segment{}, false
	}
	return t.segments[i], true
}

// SpawnSegment returns the segment straddling the top edge of the screen,
// where new obstacles and power-ups enter.
func (t *Track) SpawnSegment() (Segment, bool) {
	s, ok := t.SegmentAt(0)
	if !ok || s.Y >= 0 {
		// A row starting exactly at the edge does not straddle it.
		return Segment{}, false
	}
	return s, true
}
