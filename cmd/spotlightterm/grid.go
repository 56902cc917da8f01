package main

import (
	"github.com/gogpu/spotlight"
)

// grid maps terminal cells onto the overlay canvas.
type grid struct {
	cols, rows   int
	cellW, cellH float64
}

func newGrid(cols, rows int, bg spotlight.ScreenMetrics) grid {
	g := grid{cols: max(cols, 1), rows: max(rows, 1)}
	g.cellW = float64(bg.Width) / float64(g.cols)
	g.cellH = float64(bg.Height) / float64(g.rows)
	return g
}

// center returns the canvas pixel at the middle of a cell.
func (g grid) center(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * g.cellW, (float64(row) + 0.5) * g.cellH
}

// row returns the cell row covering canvas y, clamped to the grid.
func (g grid) row(y int) int {
	if g.cellH <= 0 {
		return 0
	}
	return min(max(int(float64(y)/g.cellH), 0), g.rows-1)
}

// frame reports for every cell whether it lies inside the focus at tick.
// Cells are indexed [row][col].
func (g grid) frame(c *spotlight.Calculator, tick int, step float64) [][]bool {
	lit := make([][]bool, g.rows)
	for row := range lit {
		lit[row] = make([]bool, g.cols)
		for col := range lit[row] {
			x, y := g.center(col, row)
			lit[row][col] = c.Contains(x, y, tick, step)
		}
	}
	return lit
}

// captionRow returns the row the caption is centered on.
func (g grid) captionRow(c *spotlight.Calculator) int {
	if !c.HasFocus() {
		return g.rows / 2
	}
	slot := c.CalcAutoTextPosition()
	return g.row(slot.TopMargin + slot.Height/2)
}
