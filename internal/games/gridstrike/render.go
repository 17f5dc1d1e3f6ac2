package gridstrike

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/gridstrike/internal/core"
	"github.com/vovakirdan/gridstrike/internal/games/gridstrike/core"
	"github.com/vovakirdan/gridstrike/internal/scene"
)

const (
	hudHeight = 2
	maxCellH  = 3
)

// layout maps board pixels to screen characters.
type layout struct {
	board platformcore.Rect // Box around the board, border included
	cellW int
	cellH int
}

// computeLayout picks the largest cell size that fits the screen.
// Cells are twice as wide as tall so they look square in a terminal.
func computeLayout(w, h int) (layout, bool) {
	cellH := min(maxCellH, (h-hudHeight-2)/core.Height)
	cellH = min(cellH, (w-2)/(2*core.Width))
	if cellH < 1 {
		return layout{}, false
	}
	cellW := 2 * cellH

	area := platformcore.NewRect(0, hudHeight, w, h-hudHeight)
	board := area.Centered(core.Width*cellW+2, core.Height*cellH+2)
	return layout{board: board, cellW: cellW, cellH: cellH}, true
}

// origin returns the screen position of a sprite's top-left character.
func (l layout) origin(sp scene.Sprite) (int, int) {
	x := int(math.Round(sp.X / core.TileSize * float64(l.cellW)))
	y := int(math.Round(sp.Y / core.TileSize * float64(l.cellH)))
	return l.board.X + 1 + x, l.board.Y + 1 + y
}

// Render draws the HUD, the board and every sprite.
func (g *Game) Render(dst *platformcore.Screen) {
	g.renderHUD(dst)

	l, ok := computeLayout(dst.Width(), dst.Height())
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	dst.DrawBox(l.board, platformcore.ColorGray)
	inner := platformcore.NewRect(l.board.X+1, l.board.Y+1, l.board.W-2, l.board.H-2)
	dst.FillRect(inner, '·', platformcore.ColorGray)

	for _, sp := range g.scene.Sprites() {
		x, y := l.origin(sp)
		if sp.Player {
			g.renderPlayer(dst, l, x, y)
			continue
		}
		dst.FillRect(platformcore.NewRect(x, y, l.cellW, l.cellH), '█', tileColor(sp.Color))
	}

	if g.paused {
		dst.DrawTextCentered(l.board.Y+l.board.H/2, " Paused ")
	}
}

// renderPlayer draws the player marker centered in its cell, on top of the tile.
func (g *Game) renderPlayer(dst *platformcore.Screen, l layout, x, y int) {
	cy := y + l.cellH/2
	cx := x + l.cellW/2
	if l.cellW >= 4 {
		dst.SetColored(x, cy, '[', platformcore.ColorBrightWhite)
		dst.SetColored(x+l.cellW-1, cy, ']', platformcore.ColorBrightWhite)
	}
	dst.SetColored(cx, cy, '@', platformcore.ColorBrightWhite)
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	p := g.state.Player()
	hud := fmt.Sprintf(" %s | Rule: %s | Cleared: %d | Pos: %s",
		g.title, g.rule.Name(), g.cleared, p)
	dst.DrawTextColored(0, 0, hud, platformcore.ColorWhite)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', platformcore.ColorGray)
	}
}

func tileColor(c core.TileColor) platformcore.Color {
	switch c {
	case core.ColorRed:
		return platformcore.ColorRed
	case core.ColorGreen:
		return platformcore.ColorGreen
	case core.ColorBlue:
		return platformcore.ColorBlue
	case core.ColorYellow:
		return platformcore.ColorYellow
	default:
		return platformcore.ColorDefault
	}
}
