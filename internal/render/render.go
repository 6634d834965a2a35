// Package render formats placements for humans. It consumes finished
// search results and has no influence on the engine itself.
package render

import (
	"strings"

	"github.com/limaJavier/uniquedistancing/internal/grid"
	"github.com/limaJavier/uniquedistancing/internal/search"
)

// Arrangement renders a placement as a picture for 2-D and 3-D grids
// ('*' for occupied cells, '.' for empty) and falls back to a coordinate
// listing for other dimensions.
func Arrangement(g grid.Grid, a search.Placement) string {
	switch g.Dimension {
	case 2:
		return plane(g, a)
	case 3:
		return slices(g, a)
	default:
		return a.String() + "\n"
	}
}

func plane(g grid.Grid, a search.Placement) string {
	var builder strings.Builder
	for y := 0; y < g.Width; y++ {
		for x := 0; x < g.Width; x++ {
			builder.WriteByte(cell(a, grid.Point{x, y}))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

// slices draws one row per y line, laying the z slices side by side with a
// two-space gap.
func slices(g grid.Grid, a search.Placement) string {
	var builder strings.Builder
	for y := 0; y < g.Width; y++ {
		for z := 0; z < g.Width; z++ {
			if z > 0 {
				builder.WriteString("  ")
			}
			for x := 0; x < g.Width; x++ {
				builder.WriteByte(cell(a, grid.Point{x, y, z}))
			}
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

func cell(a search.Placement, p grid.Point) byte {
	if a.Contains(p) {
		return '*'
	}
	return '.'
}
