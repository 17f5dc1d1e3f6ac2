package core

import (
	platformcore "github.com/vovakirdan/gridstrike/internal/core"
)

// Direction is a requested player move.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the raw one-cell offset for the direction.
// Unknown directions have no offset.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Displacement is the per-axis cell delta actually applied to the player.
type Displacement struct {
	DX int
	DY int
}

// IsZero reports whether the displacement moves nothing.
func (d Displacement) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Pixels returns the displacement in scene pixels.
func (d Displacement) Pixels() (dx, dy float64) {
	return float64(d.DX * TileSize), float64(d.DY * TileSize)
}

// Apply returns c moved by the displacement.
func (d Displacement) Apply(c Coord) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// RequestMove clamps pos+delta(dir) to the board per axis and returns the
// displacement that results. A move into a wall yields the zero displacement.
// ok is false only for an unknown direction.
//
// RequestMove is pure: the caller checks the animation gate beforehand and
// applies the displacement afterwards.
func RequestMove(dir Direction, pos Coord) (d Displacement, ok bool) {
	if !dir.Valid() {
		return Displacement{}, false
	}
	dx, dy := dir.Delta()
	x := platformcore.Clamp(pos.X+dx, 0, Width-1)
	y := platformcore.Clamp(pos.Y+dy, 0, Height-1)
	return Displacement{DX: x - pos.X, DY: y - pos.Y}, true
}
