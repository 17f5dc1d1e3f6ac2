package core

import "math/rand"

// Replenish fills every empty cell with a new random tile and creates its
// visual at the cell's board coordinate. Occupied cells are left alone.
// Returns the number of cells filled.
func Replenish(g *Grid, rng *rand.Rand, scene Scene) int {
	filled := 0
	g.ForEachCell(func(c Coord, cell *Cell) {
		if cell.Occupied {
			return
		}
		color := RandomColor(rng)
		id := scene.CreateVisual(color, c)
		*cell = Occupied(Tile{Color: color, Visual: id})
		filled++
	})
	return filled
}
