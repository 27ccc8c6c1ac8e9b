// Package audio plays the crash and turbo cues. Cues come from asset files
// (mp3 or wav) or, without an assets directory, from built-in synthesized
// tones. Any failure only silences the affected cue.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/escapezone/internal/config"
	"github.com/vovakirdan/escapezone/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player reacts to simulation events with sound.
type Player interface {
	Play(e core.Event)
	Close()
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play(core.Event) {}
func (Nop) Close()          {}

// Manager owns the speaker and the decoded cues.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cues        map[core.Event]*beep.Buffer
	initialized bool
	logger      *log.Logger
}

// NewManager decodes the cues named in cfg from assetsDir. An empty
// assetsDir selects the synthesized cues. Call Initialize to open the
// speaker.
func NewManager(assetsDir string, cfg config.AudioConfig, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	m := &Manager{
		mixer:  &beep.Mixer{},
		cues:   make(map[core.Event]*beep.Buffer),
		logger: logger,
	}

	if assetsDir == "" {
		m.cues[core.EventCrash] = bufferOf(beep.Take(sampleRate.N(600*time.Millisecond), newCrashGenerator(sampleRate)))
		m.cues[core.EventTurbo] = bufferOf(beep.Take(sampleRate.N(400*time.Millisecond), newTurboGenerator(sampleRate)))
		return m
	}

	for ev, name := range map[core.Event]string{
		core.EventCrash: cfg.Crash,
		core.EventTurbo: cfg.Turbo,
	} {
		if name == "" {
			continue
		}
		buf, err := LoadCue(filepath.Join(assetsDir, name))
		if err != nil {
			logger.Warn("sound cue disabled", "cue", ev, "err", err)
			continue
		}
		m.cues[ev] = buf
	}
	return m
}

// Initialize opens the speaker. The game runs silently if it fails.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Has reports whether a cue is loaded for the event.
func (m *Manager) Has(e core.Event) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cues[e] != nil
}

// Play starts the cue for e, if any. Overlapping cues mix.
func (m *Manager) Play(e core.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf := m.cues[e]
	if !m.initialized || buf == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// Close stops everything that is playing.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// LoadCue decodes an mp3 or wav file into a buffer at the mixer's rate.
func LoadCue(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("audio: unsupported format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}
	return bufferOf(s), nil
}

func bufferOf(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf
}
