// Package render draws bead patterns, source previews and weight charts.
package render

import (
	"fmt"
	"image"

	"beadkit/pattern"

	"github.com/gogpu/gg"
)

// Style controls how a pattern grid is drawn.
type Style struct {
	BeadSize  int  // square side of one bead in pixels
	Highlight bool // soft white glint in the upper left of each bead
	Border    bool // faint outline around each bead
}

func DefaultStyle() Style {
	return Style{BeadSize: 20, Highlight: true, Border: true}
}

// Pattern draws every filled cell of grid as a BeadSize square of its colour.
// Empty cells stay transparent.
func Pattern(grid *pattern.Grid, style Style) (image.Image, error) {
	if style.BeadSize <= 0 {
		return nil, fmt.Errorf("invalid bead size: %d", style.BeadSize)
	}

	size := float64(style.BeadSize)
	dc := gg.NewContext(grid.Columns*style.BeadSize, grid.Rows*style.BeadSize)
	defer dc.Close()

	for y := range grid.Rows {
		for x := range grid.Columns {
			cell := grid.Cell(x, y)
			if !cell.Filled {
				continue
			}

			bx, by := float64(x)*size, float64(y)*size
			dc.SetColor(cell.RGBA())
			dc.DrawRectangle(bx, by, size, size)
			if err := dc.Fill(); err != nil {
				return nil, fmt.Errorf("could not fill bead (%d,%d): %w", x, y, err)
			}

			if style.Highlight {
				glint := gg.NewRadialGradientBrush(bx+size*0.3, by+size*0.3, 0, size*0.5).
					AddColorStop(0, gg.RGBA2(1, 1, 1, 0.3)).
					AddColorStop(1, gg.RGBA2(1, 1, 1, 0))
				dc.SetFillBrush(glint)
				dc.DrawRectangle(bx, by, size, size)
				if err := dc.Fill(); err != nil {
					return nil, fmt.Errorf("could not highlight bead (%d,%d): %w", x, y, err)
				}
			}

			if style.Border {
				dc.SetRGBA(0, 0, 0, 0.2)
				dc.SetLineWidth(1)
				dc.DrawRectangle(bx, by, size, size)
				if err := dc.Stroke(); err != nil {
					return nil, fmt.Errorf("could not outline bead (%d,%d): %w", x, y, err)
				}
			}
		}
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("could not flush pattern: %w", err)
	}
	return dc.Image(), nil
}
