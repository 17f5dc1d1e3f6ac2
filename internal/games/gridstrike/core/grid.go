package core

import (
	"fmt"
	"math/rand"
)

// Board dimensions and tile size are fixed.
const (
	Width    = 5
	Height   = 5
	TileSize = 16 // Pixels per tile edge in scene space
)

// Coord is a board position. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// InBounds reports whether c lies on the board.
func InBounds(c Coord) bool {
	return c.X >= 0 && c.X < Width && c.Y >= 0 && c.Y < Height
}

// VisualID is an opaque handle to an entity owned by the scene.
// The zero value never refers to a visual.
type VisualID uint64

// Tile is one occupied board cell.
type Tile struct {
	Color  TileColor
	Visual VisualID
}

// Cell is the content of one board position; Occupied is false for empty cells.
type Cell struct {
	Tile     Tile
	Occupied bool
}

// Empty returns an unoccupied cell.
func Empty() Cell {
	return Cell{}
}

// Occupied returns a cell holding t.
func Occupied(t Tile) Cell {
	return Cell{Tile: t, Occupied: true}
}

// Grid is the fixed-size board. Cells are indexed [y][x].
//
// Callers pass coordinates that were already clamped to the board; an
// out-of-bounds access is a programming error and panics.
type Grid struct {
	cells [Height][Width]Cell
}

// NewEmptyGrid creates a grid with every cell empty.
func NewEmptyGrid() *Grid {
	return &Grid{}
}

// NewGrid creates a grid with every cell holding a random tile whose
// visual is created in scene at the tile's board coordinate.
func NewGrid(rng *rand.Rand, scene Scene) *Grid {
	g := NewEmptyGrid()
	Replenish(g, rng, scene)
	return g
}

func mustInBounds(c Coord) {
	if !InBounds(c) {
		panic(fmt.Sprintf("gridstrike: coordinate %v out of bounds %dx%d", c, Width, Height))
	}
}

// Get returns the cell at c.
func (g *Grid) Get(c Coord) Cell {
	mustInBounds(c)
	return g.cells[c.Y][c.X]
}

// Set replaces the cell at c.
func (g *Grid) Set(c Coord, cell Cell) {
	mustInBounds(c)
	g.cells[c.Y][c.X] = cell
}

// ForEachCell calls visit for every cell in row-major order.
// visit may modify the cell through the pointer.
func (g *Grid) ForEachCell(visit func(c Coord, cell *Cell)) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			visit(C(x, y), &g.cells[y][x])
		}
	}
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int {
	count := 0
	g.ForEachCell(func(_ Coord, cell *Cell) {
		if cell.Occupied {
			count++
		}
	})
	return count
}

// EmptyCoords returns the coordinates of all empty cells in row-major order.
func (g *Grid) EmptyCoords() []Coord {
	var coords []Coord
	g.ForEachCell(func(c Coord, cell *Cell) {
		if !cell.Occupied {
			coords = append(coords, c)
		}
	})
	return coords
}

// Clone returns a copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := *g
	return &clone
}

// ValidateVisuals checks that every occupied cell references a distinct,
// non-zero visual.
func (g *Grid) ValidateVisuals() error {
	seen := make(map[VisualID]Coord, Width*Height)
	var err error
	g.ForEachCell(func(c Coord, cell *Cell) {
		if err != nil || !cell.Occupied {
			return
		}
		id := cell.Tile.Visual
		if id == 0 {
			err = fmt.Errorf("cell %v has no visual", c)
			return
		}
		if prev, dup := seen[id]; dup {
			err = fmt.Errorf("visual %d shared by %v and %v", id, prev, c)
			return
		}
		seen[id] = c
	})
	return err
}
