package core_test

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/gridstrike/internal/games/gridstrike/core"
)

// fakeScene records every request the rules make.
type fakeScene struct {
	nextID    core.VisualID
	live      map[core.VisualID]core.Coord
	animating map[core.VisualID]bool
	removed   []core.VisualID
	moves     []fakeMove
}

type fakeMove struct {
	id       core.VisualID
	dx, dy   float64
	duration time.Duration
	easing   core.Easing
}

func newFakeScene() *fakeScene {
	return &fakeScene{
		live:      make(map[core.VisualID]core.Coord),
		animating: make(map[core.VisualID]bool),
	}
}

func (f *fakeScene) IsAnimating(id core.VisualID) bool {
	return f.animating[id]
}

func (f *fakeScene) CreateVisual(_ core.TileColor, at core.Coord) core.VisualID {
	f.nextID++
	f.live[f.nextID] = at
	return f.nextID
}

func (f *fakeScene) CreatePlayerVisual(at core.Coord) core.VisualID {
	f.nextID++
	f.live[f.nextID] = at
	return f.nextID
}

func (f *fakeScene) RemoveVisual(id core.VisualID) {
	f.removed = append(f.removed, id)
	delete(f.live, id)
}

func (f *fakeScene) MoveVisual(id core.VisualID, dx, dy float64, d time.Duration, e core.Easing) {
	f.moves = append(f.moves, fakeMove{id: id, dx: dx, dy: dy, duration: d, easing: e})
}

func seeded() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
