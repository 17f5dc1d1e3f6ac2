package core

import "fmt"

// AttackRule decides which cells an attack at a position clears.
type AttackRule interface {
	// Name is the config name of the rule.
	Name() string

	// Targets returns the cells to clear for an attack at pos.
	Targets(g *Grid, pos Coord) []Coord
}

// SingleTileRule clears only the tile under the player.
type SingleTileRule struct{}

// Name implements AttackRule.
func (SingleTileRule) Name() string { return "single" }

// Targets implements AttackRule.
func (SingleTileRule) Targets(g *Grid, pos Coord) []Coord {
	if !g.Get(pos).Occupied {
		return nil
	}
	return []Coord{pos}
}

// SameColorRule clears every tile on the board sharing the color of the
// tile under the player.
type SameColorRule struct{}

// Name implements AttackRule.
func (SameColorRule) Name() string { return "same_color" }

// Targets implements AttackRule.
func (SameColorRule) Targets(g *Grid, pos Coord) []Coord {
	under := g.Get(pos)
	if !under.Occupied {
		return nil
	}
	var targets []Coord
	g.ForEachCell(func(c Coord, cell *Cell) {
		if cell.Occupied && cell.Tile.Color == under.Tile.Color {
			targets = append(targets, c)
		}
	})
	return targets
}

// RuleByName returns the attack rule registered under name.
func RuleByName(name string) (AttackRule, error) {
	switch name {
	case "", "single":
		return SingleTileRule{}, nil
	case "same_color":
		return SameColorRule{}, nil
	default:
		return nil, fmt.Errorf("unknown attack rule %q", name)
	}
}

// Resolve clears the cells rule selects for an attack at pos and asks the
// scene to drop each removed tile's visual. Returns the number of tiles removed.
func Resolve(g *Grid, pos Coord, rule AttackRule, scene Scene) int {
	removed := 0
	for _, c := range rule.Targets(g, pos) {
		cell := g.Get(c)
		if !cell.Occupied {
			continue
		}
		g.Set(c, Empty())
		scene.RemoveVisual(cell.Tile.Visual)
		removed++
	}
	return removed
}
