package grid

import "github.com/zeu5/grid-mdp/core"

// ToGrid lays a state mapping out as a 2D slice in display order, top
// row first. Cells absent from the mapping (obstacles) stay at the zero
// value.
func ToGrid[V any](g *GridMDP, m map[Point]V) [][]V {
	out := make([][]V, g.rows)
	for y := 0; y < g.rows; y++ {
		row := make([]V, g.cols)
		for x := 0; x < g.cols; x++ {
			if v, ok := m[Point{x, g.rows - 1 - y}]; ok {
				row[x] = v
			}
		}
		out[y] = row
	}
	return out
}

// ToArrows renders a policy as direction glyphs: > ^ < v for the four
// headings, "." for the no-action entries at terminals.
func (g *GridMDP) ToArrows(policy map[Point]core.Heading) [][]string {
	glyphs := make(map[Point]string, len(policy))
	for s, a := range policy {
		glyphs[s] = a.Arrow()
	}
	return ToGrid(g, glyphs)
}
