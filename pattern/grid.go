package pattern

import (
	"image"
	"image/color"
)

// Cell is one bead position. The zero value is an empty cell.
type Cell struct {
	R, G, B uint8
	Filled  bool
}

// RGBA returns the cell colour, fully transparent for empty cells.
func (c Cell) RGBA() color.RGBA {
	if !c.Filled {
		return color.RGBA{}
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Grid is a sampled bead pattern, Rows x Columns cells stored row-major.
// It doubles as an image.Image with one pixel per cell.
type Grid struct {
	Columns int
	Rows    int
	Cells   []Cell
}

var _ image.Image = (*Grid)(nil)

func newGrid(columns, rows int) *Grid {
	return &Grid{
		Columns: columns,
		Rows:    rows,
		Cells:   make([]Cell, columns*rows),
	}
}

// Cell returns the cell at column x, row y. Positions outside the grid read as empty.
func (g *Grid) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.Columns || y >= g.Rows {
		return Cell{}
	}
	return g.Cells[y*g.Columns+x]
}

func (g *Grid) set(x, y int, c Cell) {
	g.Cells[y*g.Columns+x] = c
}

// Filled returns the number of non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for _, c := range g.Cells {
		if c.Filled {
			n++
		}
	}
	return n
}

func (g *Grid) ColorModel() color.Model {
	return color.RGBAModel
}

func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Columns, g.Rows)
}

func (g *Grid) At(x, y int) color.Color {
	return g.Cell(x, y).RGBA()
}
