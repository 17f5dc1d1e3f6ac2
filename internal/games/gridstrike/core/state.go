// Package core implements the GridStrike rules: a 5×5 board of colored
// tiles, a player token that moves one cell per animation, an attack that
// clears tiles and a replenisher that refills empty cells on every tick.
//
// The package never draws or reads input. Visual side effects go through
// the Scene interface and the animation gate is queried from it.
package core

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultMoveDuration is the length of the player's move animation.
const DefaultMoveDuration = 250 * time.Millisecond

// EventKind identifies the kind of an Event.
type EventKind int

const (
	EventNone EventKind = iota
	EventTick
	EventDirectional
	EventAction
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "tick"
	case EventDirectional:
		return "directional"
	case EventAction:
		return "action"
	default:
		return "none"
	}
}

// Event is an input delivered by the hosting loop.
type Event struct {
	Kind EventKind
	Dir  Direction // Only meaningful for EventDirectional
}

// TickEvent returns a simulation tick event.
func TickEvent() Event {
	return Event{Kind: EventTick}
}

// MoveEvent returns a directional input event.
func MoveEvent(d Direction) Event {
	return Event{Kind: EventDirectional, Dir: d}
}

// ActionEvent returns an attack input event.
func ActionEvent() Event {
	return Event{Kind: EventAction}
}

// Outcome describes what handling one event changed.
type Outcome struct {
	Moved        bool         // Player position changed
	Dropped      bool         // Directional input ignored because the player was animating
	Displacement Displacement // Applied displacement, zero unless Moved
	Removed      int          // Tiles cleared by an attack
	Filled       int          // Cells refilled by a tick
}

// Options configures a State. Zero values select the defaults.
type Options struct {
	Rule         AttackRule    // Defaults to SingleTileRule
	MoveDuration time.Duration // Defaults to DefaultMoveDuration
	Easing       Easing        // Defaults to EaseInOut
	Logger       *log.Logger   // Defaults to a discarding logger
}

// State owns the board and the player position and applies events to them.
// It is not safe for concurrent use; the host delivers one event at a time.
type State struct {
	grid         *Grid
	player       Coord
	playerVisual VisualID

	rng     *rand.Rand
	scene   Scene
	rule    AttackRule
	moveDur time.Duration
	easing  Easing
	logger  *log.Logger
}

// NewState builds a fully populated board with the player at (0,0).
// rng and scene are shared with the caller and must not be nil.
func NewState(rng *rand.Rand, scene Scene, opts Options) *State {
	if opts.Rule == nil {
		opts.Rule = SingleTileRule{}
	}
	if opts.MoveDuration <= 0 {
		opts.MoveDuration = DefaultMoveDuration
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &State{
		grid:    NewGrid(rng, scene),
		player:  C(0, 0),
		rng:     rng,
		scene:   scene,
		rule:    opts.Rule,
		moveDur: opts.MoveDuration,
		easing:  opts.Easing,
		logger:  opts.Logger,
	}
	s.playerVisual = scene.CreatePlayerVisual(s.player)
	return s
}

// HandleEvent applies one event. Unknown event kinds are ignored.
func (s *State) HandleEvent(ev Event) Outcome {
	switch ev.Kind {
	case EventTick:
		return s.tick()
	case EventDirectional:
		return s.move(ev.Dir)
	case EventAction:
		return s.attack()
	default:
		return Outcome{}
	}
}

func (s *State) tick() Outcome {
	filled := Replenish(s.grid, s.rng, s.scene)
	if filled > 0 {
		s.logger.Debug("replenished", "cells", filled)
	}
	return Outcome{Filled: filled}
}

func (s *State) move(dir Direction) Outcome {
	if s.scene.IsAnimating(s.playerVisual) {
		s.logger.Debug("move dropped while animating", "dir", dir)
		return Outcome{Dropped: true}
	}

	d, ok := RequestMove(dir, s.player)
	if !ok || d.IsZero() {
		return Outcome{}
	}

	s.player = d.Apply(s.player)
	dx, dy := d.Pixels()
	s.scene.MoveVisual(s.playerVisual, dx, dy, s.moveDur, s.easing)
	s.logger.Debug("player moved", "dir", dir, "to", s.player)
	return Outcome{Moved: true, Displacement: d}
}

func (s *State) attack() Outcome {
	removed := Resolve(s.grid, s.player, s.rule, s.scene)
	if removed > 0 {
		s.logger.Debug("attack", "at", s.player, "rule", s.rule.Name(), "removed", removed)
	}
	return Outcome{Removed: removed}
}

// Player returns the player's board position.
func (s *State) Player() Coord {
	return s.player
}

// PlayerVisual returns the scene handle of the player token.
func (s *State) PlayerVisual() VisualID {
	return s.playerVisual
}

// Grid returns a copy of the board.
func (s *State) Grid() *Grid {
	return s.grid.Clone()
}

// Rule returns the active attack rule.
func (s *State) Rule() AttackRule {
	return s.rule
}
