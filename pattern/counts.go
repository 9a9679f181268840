package pattern

import (
	"cmp"
	"image/color"
	"slices"

	"beadkit/palette"
)

// Count is the number of beads of one colour in a grid.
type Count struct {
	Color color.RGBA
	Beads int
}

// Counts returns the bill of materials for the grid, most used colour first.
// Empty cells are not counted.
func (g *Grid) Counts() []Count {
	tally := make(map[color.RGBA]int)
	for _, c := range g.Cells {
		if c.Filled {
			tally[c.RGBA()]++
		}
	}

	res := make([]Count, 0, len(tally))
	for col, n := range tally {
		res = append(res, Count{Color: col, Beads: n})
	}
	slices.SortFunc(res, func(a, b Count) int {
		if n := cmp.Compare(b.Beads, a.Beads); n != 0 {
			return n
		}
		return cmp.Compare(packRGB(a.Color), packRGB(b.Color))
	})
	return res
}

func packRGB(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Snap returns a copy of the grid with every filled cell replaced by the
// closest colour of pal. Empty cells stay empty.
func (g *Grid) Snap(pal *palette.Palette) *Grid {
	res := newGrid(g.Columns, g.Rows)
	if pal.Len() == 0 {
		copy(res.Cells, g.Cells)
		return res
	}

	memo := make(map[Cell]Cell)
	for i, c := range g.Cells {
		if !c.Filled {
			continue
		}
		snapped, ok := memo[c]
		if !ok {
			_, col := pal.Nearest(c.RGBA())
			nc := color.NRGBAModel.Convert(col).(color.NRGBA)
			snapped = Cell{R: nc.R, G: nc.G, B: nc.B, Filled: true}
			memo[c] = snapped
		}
		res.Cells[i] = snapped
	}
	return res
}
