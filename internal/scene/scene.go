// Package scene holds the visual entities of a GridStrike board and plays
// their move animations with gween tweens. It implements core.Scene.
package scene

import (
	"sort"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/gridstrike/internal/games/gridstrike/core"
)

// Sprite is one visual entity. X and Y are pixel coordinates of the
// sprite's top-left corner; a board cell is core.TileSize pixels wide.
type Sprite struct {
	ID     core.VisualID
	Color  core.TileColor
	Player bool
	X, Y   float64
}

// Cell returns the board cell nearest to the sprite's current position.
func (s Sprite) Cell() core.Coord {
	return core.C(
		int(s.X/core.TileSize+0.5),
		int(s.Y/core.TileSize+0.5),
	)
}

// motion is a running move animation; one tween per axis.
type motion struct {
	x, y             *gween.Tween
	targetX, targetY float64
}

// Scene stores sprites by handle. Handles are never reused.
type Scene struct {
	nextID  core.VisualID
	sprites map[core.VisualID]*Sprite
	motions map[core.VisualID]*motion
}

var _ core.Scene = (*Scene)(nil)

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		sprites: make(map[core.VisualID]*Sprite),
		motions: make(map[core.VisualID]*motion),
	}
}

func (s *Scene) add(sp Sprite, at core.Coord) core.VisualID {
	s.nextID++
	sp.ID = s.nextID
	sp.X = float64(at.X * core.TileSize)
	sp.Y = float64(at.Y * core.TileSize)
	s.sprites[sp.ID] = &sp
	return sp.ID
}

// CreateVisual adds a tile sprite at a board coordinate.
func (s *Scene) CreateVisual(color core.TileColor, at core.Coord) core.VisualID {
	return s.add(Sprite{Color: color}, at)
}

// CreatePlayerVisual adds the player sprite at a board coordinate.
func (s *Scene) CreatePlayerVisual(at core.Coord) core.VisualID {
	return s.add(Sprite{Player: true}, at)
}

// RemoveVisual drops a sprite and any animation attached to it.
// Unknown handles are ignored.
func (s *Scene) RemoveVisual(id core.VisualID) {
	delete(s.sprites, id)
	delete(s.motions, id)
}

// IsAnimating reports whether a move animation is running for id.
func (s *Scene) IsAnimating(id core.VisualID) bool {
	_, ok := s.motions[id]
	return ok
}

// MoveVisual starts moving id by (dx, dy) pixels over duration.
// A new move replaces a running one, starting from the current position.
// A non-positive duration moves the sprite immediately.
func (s *Scene) MoveVisual(id core.VisualID, dx, dy float64, duration time.Duration, easing core.Easing) {
	sp, ok := s.sprites[id]
	if !ok {
		return
	}

	if m, running := s.motions[id]; running {
		dx += m.targetX - sp.X
		dy += m.targetY - sp.Y
	}
	tx, ty := sp.X+dx, sp.Y+dy

	secs := float32(duration.Seconds())
	if secs <= 0 {
		sp.X, sp.Y = tx, ty
		delete(s.motions, id)
		return
	}

	fn := easingFunc(easing)
	s.motions[id] = &motion{
		x:       gween.New(float32(sp.X), float32(tx), secs, fn),
		y:       gween.New(float32(sp.Y), float32(ty), secs, fn),
		targetX: tx,
		targetY: ty,
	}
}

// Update advances every running animation by dt. Finished sprites snap to
// their exact target and stop animating.
func (s *Scene) Update(dt time.Duration) {
	step := float32(dt.Seconds())
	for id, m := range s.motions {
		sp := s.sprites[id]
		x, doneX := m.x.Update(step)
		y, doneY := m.y.Update(step)
		if doneX && doneY {
			sp.X, sp.Y = m.targetX, m.targetY
			delete(s.motions, id)
			continue
		}
		sp.X, sp.Y = float64(x), float64(y)
	}
}

// Animating returns the number of running animations.
func (s *Scene) Animating() int {
	return len(s.motions)
}

// Sprite returns a copy of the sprite with the given handle.
func (s *Scene) Sprite(id core.VisualID) (Sprite, bool) {
	sp, ok := s.sprites[id]
	if !ok {
		return Sprite{}, false
	}
	return *sp, true
}

// Sprites returns copies of all sprites, tiles first and then the player,
// each group ordered by handle.
func (s *Scene) Sprites() []Sprite {
	out := make([]Sprite, 0, len(s.sprites))
	for _, sp := range s.sprites {
		out = append(out, *sp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Player != out[j].Player {
			return !out[i].Player
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Len returns the number of sprites.
func (s *Scene) Len() int {
	return len(s.sprites)
}

func easingFunc(e core.Easing) ease.TweenFunc {
	switch e {
	case core.EaseLinear:
		return ease.Linear
	default:
		return ease.InOutQuad
	}
}
