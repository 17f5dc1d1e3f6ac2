package core

import (
	"math/rand"
	"strings"
)

// TileColor is the color of a tile on the board.
type TileColor uint8

const (
	ColorRed TileColor = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c TileColor) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color.
func (c TileColor) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	default:
		return '?'
	}
}

// ParseColor converts a string to a TileColor.
func ParseColor(s string) (TileColor, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	default:
		return ColorRed, false
	}
}

// AllColors returns every tile color.
func AllColors() []TileColor {
	return []TileColor{ColorRed, ColorGreen, ColorBlue, ColorYellow}
}

// RandomColor draws a uniformly distributed color from rng.
func RandomColor(rng *rand.Rand) TileColor {
	return TileColor(rng.Intn(int(ColorCount)))
}
