package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/escapezone/internal/audio"
	"github.com/vovakirdan/escapezone/internal/core"
	"github.com/vovakirdan/escapezone/internal/registry"
	"github.com/vovakirdan/escapezone/internal/storage"
)

// Deps are the services a game session talks to. Any of them may be nil.
type Deps struct {
	Store  *storage.Store
	Audio  audio.Player
	Logger *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Audio == nil {
		d.Audio = audio.Nop{}
	}
	if d.Logger == nil {
		d.Logger = log.Default()
	}
	return d
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	tilt       *core.TiltController
	keyMapper  *KeyMapper
	gameState  core.GameState
	embedded   bool // inside a session: Back returns to the menu instead of quitting
	quitting   bool
	backToMenu bool
	recorded   bool // result of the current run has been stored
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:       deps.withDefaults(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		tilt:       core.NewTiltController(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.recordAbandoned()
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves only from a paused or finished run.
	if m.inputFrame.Has(core.ActionBack) {
		if !m.gameState.GameOver && !m.gameState.Paused {
			delete(m.inputFrame.Actions, core.ActionBack)
			return m, nil
		}
		m.recordAbandoned()
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The simulation runs in
// world units, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.tilt.Apply(&m.inputFrame)
	// The frame is cleared below, so the game gets its own copy.
	result := m.game.Step(m.inputFrame.Clone())
	m.tilt.Tick()
	m.gameState = result.State

	for _, e := range result.Events {
		if e == core.EventStart {
			m.tilt.Reset()
			m.recorded = false
		}
		m.deps.Audio.Play(e)
	}

	if m.gameState.GameOver && !m.recorded {
		m.record(core.EndNone)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordAbandoned stores a run the player walked away from.
func (m *Model) recordAbandoned() {
	if !m.recorded && !m.gameState.GameOver && m.gameState.Score > 0 {
		m.record(core.EndQuit)
	}
}

// record saves the score (finished runs only) and the run summary.
// Storage failures are logged; the game continues regardless.
func (m *Model) record(fallback core.EndReason) {
	m.recorded = true

	summary := core.RunSummary{Score: m.gameState.Score, EndReason: fallback}
	if s, ok := m.game.(registry.Summarizer); ok {
		summary = s.Summary()
		if summary.EndReason == core.EndNone {
			summary.EndReason = fallback
		}
	}

	if m.deps.Store == nil || summary.Score <= 0 {
		return
	}

	if m.gameState.GameOver {
		if _, err := m.deps.Store.SaveScore(m.game.ID(), summary.Score); err != nil {
			m.deps.Logger.Warn("could not save score", "game", m.game.ID(), "err", err)
		}
	}

	_, err := m.deps.Store.SaveRun(storage.RunRecord{
		GameID:    m.game.ID(),
		Score:     summary.Score,
		Ticks:     summary.Ticks,
		Distance:  summary.Distance,
		Pickups:   summary.Pickups,
		EndReason: string(summary.EndReason),
	})
	if err != nil {
		m.deps.Logger.Warn("could not save run", "game", m.game.ID(), "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.deps.Logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".escapezone", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.deps.Logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.deps.Logger.Warn("screenshot failed", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) error {
	model := NewModel(game, deps, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
