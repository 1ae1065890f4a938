// Package registry maps game mode IDs to factories. Modes register
// themselves from init(), so the CLI, the menu and the SSH server can list
// and start them without importing each one by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/highscore/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface every playable mode implements. Games hold pure
// logic; the platform maps keys to actions, drives the tick and draws the
// screen they render.
type Game interface {
	// ID is the mode identifier used on the command line and as the key
	// for stored scores.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new round for the given screen and tick rate.
	Reset(cfg core.RuntimeConfig)

	// Step advances the round by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the round into dst, which is cleared first.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState
}

// Finisher is implemented by games that take the player's name once a
// round is over and persist the result.
type Finisher interface {
	Finish(name string) error
}

// Slotted is implemented by games that keep state in a named save slot.
type Slotted interface {
	SetSlot(slot string)
}

// Describer is implemented by games with a one-line description for menus.
type Describer interface {
	Blurb() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Blurb string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id. It creates one instance to read
// the title and blurb. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Blurb = d.Blurb()
	}
	entries[id] = entry{factory: f, info: info}
}

// List returns every registered game, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
