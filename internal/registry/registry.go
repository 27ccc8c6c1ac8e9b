// Package registry holds the factories for every playable game variant.
// Variants register themselves from init(), so the CLI and the SSH server can
// list and build them without importing each one by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/escapezone/internal/core"
)

// Game is the contract between a simulation and the platform.
// Implementations hold no terminal or audio state.
type Game interface {
	// ID is the stable identifier used by the CLI and the score tables.
	ID() string

	// Title is the human-readable name shown in menus.
	Title() string

	// Reset (re)initialises the game at its start screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. dst is not pre-cleared.
	Render(dst *core.Screen)

	// State returns score and game-over/pause flags.
	State() core.GameState
}

// Summarizer is implemented by games that can describe the current round
// for persistence beyond the bare score.
type Summarizer interface {
	Summary() core.RunSummary
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the registered title for id, or id itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
