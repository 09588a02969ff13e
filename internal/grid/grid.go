package grid

// Cell is a single grid position. The color is fixed at parse time; the
// beep counter lives on the Grid so cells stay plain values.
type Cell struct {
	X     int
	Y     int
	Color Color
}

// Grid is a rectangular field of cells plus the per-cell and per-color beep
// counters accumulated during an episode. Dimensions never change after
// construction; Reset zeroes the counters without re-parsing.
type Grid struct {
	cells       [][]Cell
	counts      [][]int
	colorCounts map[Color]int
}

func newGrid(cells [][]Cell) *Grid {
	g := &Grid{cells: cells}
	g.Reset()
	return g
}

// Rows reports the number of rows.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Columns reports the number of columns.
func (g *Grid) Columns() int {
	return len(g.cells[0])
}

// At returns the cell at (x, y), or false when the coordinate is outside
// the grid.
func (g *Grid) At(x, y int) (Cell, bool) {
	if x < 0 || x >= g.Columns() || y < 0 || y >= g.Rows() {
		return Cell{}, false
	}
	return g.cells[y][x], true
}

// DoBeep registers a beep at the given cell, incrementing its counter and,
// for non-blank colors, the grid's per-color aggregate.
func (g *Grid) DoBeep(c Cell) {
	g.counts[c.Y][c.X]++
	if c.Color != Blank {
		g.colorCounts[c.Color]++
	}
}

// BeepCount reports how many times the given cell has been beeped at since
// the last Reset.
func (g *Grid) BeepCount(c Cell) int {
	return g.counts[c.Y][c.X]
}

// ColorCounts returns a copy of the cumulative non-blank per-color beep
// counts.
func (g *Grid) ColorCounts() map[Color]int {
	counts := make(map[Color]int, len(g.colorCounts))
	for color, n := range g.colorCounts {
		counts[color] = n
	}
	return counts
}

// Reset zeroes every beep counter. Cell colors are untouched.
func (g *Grid) Reset() {
	g.colorCounts = make(map[Color]int)
	g.counts = make([][]int, g.Rows())
	for i := range g.counts {
		g.counts[i] = make([]int, g.Columns())
	}
}

// Cells iterates over all cells in row-major order.
func (g *Grid) Cells(yield func(Cell) bool) {
	for _, row := range g.cells {
		for _, cell := range row {
			if !yield(cell) {
				return
			}
		}
	}
}
