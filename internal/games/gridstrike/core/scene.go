package core

import (
	"strings"
	"time"
)

// Easing names the timing curve of a scheduled move.
type Easing int

const (
	EaseInOut Easing = iota
	EaseLinear
)

// String returns the config name of the easing.
func (e Easing) String() string {
	switch e {
	case EaseInOut:
		return "ease_in_out"
	case EaseLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// ParseEasing converts a config name to an Easing.
func ParseEasing(s string) (Easing, bool) {
	switch strings.ToLower(s) {
	case "ease_in_out", "ease-in-out", "inout":
		return EaseInOut, true
	case "linear":
		return EaseLinear, true
	default:
		return EaseInOut, false
	}
}

// Scene is the rendering collaborator the rules keep in sync with the board.
// Handles are opaque; requests are fire-and-forget, and removing an unknown
// handle must be harmless.
type Scene interface {
	// IsAnimating reports whether a move animation is running for id.
	IsAnimating(id VisualID) bool

	// CreateVisual adds a tile entity at a board coordinate and returns its handle.
	CreateVisual(color TileColor, at Coord) VisualID

	// CreatePlayerVisual adds the player token at a board coordinate.
	CreatePlayerVisual(at Coord) VisualID

	// RemoveVisual drops an entity from the scene.
	RemoveVisual(id VisualID)

	// MoveVisual animates id by (dx, dy) pixels over duration.
	MoveVisual(id VisualID, dx, dy float64, duration time.Duration, easing Easing)
}
