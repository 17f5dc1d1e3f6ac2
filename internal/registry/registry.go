// Package registry holds the GridStrike game variants.
// Variants register themselves in init() functions, so hosts can list and
// start them by ID without importing each one by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gridstrike/internal/core"
)

// Game is what a host drives: it owns the rules and draws into a Screen.
// Implementations never touch the terminal. Hosts map keys to actions,
// call Step at a fixed rate and print the rendered Screen.
type Game interface {
	// ID returns the variant identifier used on the command line (e.g. "gridstrike").
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset builds a fresh board for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one fixed tick with the actions held this tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. dst is cleared by the caller.
	Render(dst *core.Screen)

	// State returns the HUD-facing state.
	State() core.GameState
}

// Info describes a registered variant.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a variant. It panics on an empty or duplicate ID.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if id == "" {
		panic("registry: empty variant id")
	}
	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	entries[id] = entry{
		info:    Info{ID: id, Title: f().Title(), Description: description},
		factory: f,
	}
}

// List returns all registered variants sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return e.factory(), nil
}

// Exists reports whether a variant is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// reset clears the registry. Tests only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	entries = make(map[string]entry)
}
