package scene

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/gridstrike/internal/games/gridstrike/core"
)

func TestCreateVisualPlacesSpriteAtCell(t *testing.T) {
	s := New()
	id := s.CreateVisual(core.ColorBlue, core.C(3, 2))

	sp, ok := s.Sprite(id)
	if !ok {
		t.Fatal("sprite not found")
	}
	if sp.X != 3*core.TileSize || sp.Y != 2*core.TileSize {
		t.Errorf("sprite at (%v, %v), expected (%d, %d)", sp.X, sp.Y, 3*core.TileSize, 2*core.TileSize)
	}
	if sp.Cell() != core.C(3, 2) || sp.Color != core.ColorBlue || sp.Player {
		t.Errorf("unexpected sprite %+v", sp)
	}
}

func TestHandlesAreNeverReused(t *testing.T) {
	s := New()
	seen := make(map[core.VisualID]bool)

	for i := 0; i < 50; i++ {
		id := s.CreateVisual(core.ColorRed, core.C(0, 0))
		if id == 0 || seen[id] {
			t.Fatalf("handle %d reused or zero", id)
		}
		seen[id] = true
		if i%2 == 0 {
			s.RemoveVisual(id)
		}
	}
	if s.Len() != 25 {
		t.Errorf("Len() = %d, expected 25", s.Len())
	}
}

func TestRemoveUnknownVisualIsHarmless(t *testing.T) {
	s := New()
	id := s.CreateVisual(core.ColorGreen, core.C(1, 1))

	s.RemoveVisual(id + 100)
	s.RemoveVisual(id)
	s.RemoveVisual(id)

	if s.Len() != 0 {
		t.Errorf("Len() = %d after removal", s.Len())
	}
}

func TestMoveVisualAnimatesUntilDone(t *testing.T) {
	tests := []struct {
		name   string
		easing core.Easing
	}{
		{"ease in out", core.EaseInOut},
		{"linear", core.EaseLinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			id := s.CreatePlayerVisual(core.C(0, 0))

			s.MoveVisual(id, core.TileSize, 0, 100*time.Millisecond, tt.easing)
			if !s.IsAnimating(id) {
				t.Fatal("sprite should be animating after MoveVisual")
			}

			s.Update(50 * time.Millisecond)
			mid, _ := s.Sprite(id)
			if !s.IsAnimating(id) {
				t.Fatal("animation finished too early")
			}
			if mid.X <= 0 || mid.X >= core.TileSize {
				t.Errorf("mid-animation X = %v, expected strictly between 0 and %d", mid.X, core.TileSize)
			}

			s.Update(60 * time.Millisecond)
			end, _ := s.Sprite(id)
			if s.IsAnimating(id) {
				t.Error("animation should have finished")
			}
			if end.X != core.TileSize || end.Y != 0 {
				t.Errorf("final position (%v, %v), expected (%d, 0)", end.X, end.Y, core.TileSize)
			}
		})
	}
}

func TestMoveVisualZeroDurationIsImmediate(t *testing.T) {
	s := New()
	id := s.CreatePlayerVisual(core.C(1, 1))

	s.MoveVisual(id, 0, -core.TileSize, 0, core.EaseInOut)

	sp, _ := s.Sprite(id)
	if s.IsAnimating(id) || sp.Cell() != core.C(1, 0) {
		t.Errorf("sprite %+v animating=%v, expected immediate move to (1,0)", sp, s.IsAnimating(id))
	}
}

func TestMoveVisualRetargetsRunningAnimation(t *testing.T) {
	s := New()
	id := s.CreatePlayerVisual(core.C(0, 0))

	s.MoveVisual(id, core.TileSize, 0, 100*time.Millisecond, core.EaseInOut)
	s.Update(30 * time.Millisecond)
	s.MoveVisual(id, core.TileSize, 0, 100*time.Millisecond, core.EaseInOut)
	s.Update(200 * time.Millisecond)

	sp, _ := s.Sprite(id)
	if sp.Cell() != core.C(2, 0) || sp.X != 2*core.TileSize {
		t.Errorf("sprite ended at (%v, %v), expected (%d, 0)", sp.X, sp.Y, 2*core.TileSize)
	}
}

func TestSpritesOrdersPlayerLast(t *testing.T) {
	s := New()
	player := s.CreatePlayerVisual(core.C(0, 0))
	s.CreateVisual(core.ColorRed, core.C(1, 0))
	s.CreateVisual(core.ColorBlue, core.C(2, 0))

	sprites := s.Sprites()
	if len(sprites) != 3 {
		t.Fatalf("Sprites() returned %d, expected 3", len(sprites))
	}
	if sprites[2].ID != player || !sprites[2].Player {
		t.Errorf("last sprite = %+v, expected the player", sprites[2])
	}
	if sprites[0].ID > sprites[1].ID {
		t.Error("tile sprites should be ordered by handle")
	}
}

// The rules and the scene stay consistent: every board tile has exactly one
// live sprite at its cell and nothing else survives.
func TestSceneMirrorsBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := New()
	state := core.NewState(rng, s, core.Options{MoveDuration: 80 * time.Millisecond})

	dirs := []core.Direction{core.DirRight, core.DirDown, core.DirRight, core.DirDown, core.DirLeft}
	for i := 0; i < 200; i++ {
		switch rng.Intn(3) {
		case 0:
			state.HandleEvent(core.MoveEvent(dirs[rng.Intn(len(dirs))]))
		case 1:
			state.HandleEvent(core.ActionEvent())
		default:
			state.HandleEvent(core.TickEvent())
		}
		s.Update(16 * time.Millisecond)
	}
	for s.Animating() > 0 {
		s.Update(16 * time.Millisecond)
	}

	grid := state.Grid()
	if s.Len() != grid.OccupiedCount()+1 {
		t.Fatalf("scene has %d sprites, board has %d tiles + player", s.Len(), grid.OccupiedCount())
	}
	grid.ForEachCell(func(c core.Coord, cell *core.Cell) {
		if !cell.Occupied {
			return
		}
		sp, ok := s.Sprite(cell.Tile.Visual)
		if !ok {
			t.Errorf("tile at %v has no sprite", c)
			return
		}
		if sp.Cell() != c || sp.Color != cell.Tile.Color {
			t.Errorf("tile at %v: sprite %+v", c, sp)
		}
	})
	player, _ := s.Sprite(state.PlayerVisual())
	if player.Cell() != state.Player() {
		t.Errorf("player sprite at %v, state at %v", player.Cell(), state.Player())
	}
}
