package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

// crashGenerator is a low rumble under filtered noise that dies away.
type crashGenerator struct {
	sr   beep.SampleRate
	pos  int
	rng  *rand.Rand
	prev float64
}

func newCrashGenerator(sr beep.SampleRate) *crashGenerator {
	return &crashGenerator{sr: sr, rng: rand.New(rand.NewSource(1))}
}

func (g *crashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 6)

		// One-pole low-pass keeps the noise from hissing.
		noise := g.rng.Float64()*2 - 1
		g.prev = 0.8*g.prev + 0.2*noise

		rumble := math.Sin(2 * math.Pi * 55 * t)
		sample := envelope * (0.5*g.prev + 0.3*rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *crashGenerator) Err() error {
	return nil
}

// turboGenerator is a rising whoosh.
type turboGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
}

func newTurboGenerator(sr beep.SampleRate) *turboGenerator {
	return &turboGenerator{sr: sr}
}

func (g *turboGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 200 + 1200*t
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := math.Min(t/0.03, 1) * math.Exp(-t*3)
		sample := 0.25 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *turboGenerator) Err() error {
	return nil
}
