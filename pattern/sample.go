// Package pattern turns raster images into bead patterns: one colour per grid
// cell, sampled nearest-neighbour from a scaled and shifted view of the source.
package pattern

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

// ErrInvalidArgument is returned for grid specs that cannot describe a pattern.
var ErrInvalidArgument = errors.New("invalid argument")

// alphaThreshold is the minimum (exclusive) 8-bit alpha of a filled bead.
const alphaThreshold = 128

// Spec describes how the output grid maps onto the source image. The image is
// scaled by Scale, then sampled once per cell, shifted by (OffsetX, OffsetY)
// scaled-image pixels.
type Spec struct {
	Columns int
	Rows    int
	OffsetX int
	OffsetY int
	Scale   float64
}

// DefaultSpec is a 20x20 grid over the unscaled, unshifted image.
func DefaultSpec() Spec {
	return Spec{Columns: 20, Rows: 20, Scale: 1}
}

func (s Spec) Validate() error {
	switch {
	case s.Columns <= 0:
		return fmt.Errorf("%w: columns must be positive, got %d", ErrInvalidArgument, s.Columns)
	case s.Rows <= 0:
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidArgument, s.Rows)
	case math.IsNaN(s.Scale) || math.IsInf(s.Scale, 0) || s.Scale <= 0:
		return fmt.Errorf("%w: scale must be a positive number, got %v", ErrInvalidArgument, s.Scale)
	}
	return nil
}

// Sample maps img onto a Columns x Rows grid. A cell is filled with the colour
// of the pixel under its sample point when that pixel's alpha exceeds 128, and
// left empty otherwise or when the sample point falls outside the scaled image.
// img is only read.
func Sample(img image.Image, spec Spec) (*Grid, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	scaledW := float64(srcW) * spec.Scale
	scaledH := float64(srcH) * spec.Scale

	// x*scaledW/columns rather than x/columns*scaledW keeps the unscaled
	// one-cell-per-pixel case exact.
	grid := newGrid(spec.Columns, spec.Rows)
	for y := range spec.Rows {
		sy := math.Floor(float64(y)*scaledH/float64(spec.Rows) + float64(spec.OffsetY))
		if sy < 0 || sy >= scaledH {
			continue
		}
		py := bounds.Min.Y + sourceIndex(sy, spec.Scale, srcH)

		for x := range spec.Columns {
			sx := math.Floor(float64(x)*scaledW/float64(spec.Columns) + float64(spec.OffsetX))
			if sx < 0 || sx >= scaledW {
				continue
			}
			px := bounds.Min.X + sourceIndex(sx, spec.Scale, srcW)

			c := color.NRGBAModel.Convert(img.At(px, py)).(color.NRGBA)
			if c.A > alphaThreshold {
				grid.set(x, y, Cell{R: c.R, G: c.G, B: c.B, Filled: true})
			}
		}
	}

	return grid, nil
}

// sourceIndex maps a scaled-image coordinate back to a source pixel index,
// clamped to [0, size).
func sourceIndex(scaled, scale float64, size int) int {
	i := int(math.Floor(scaled / scale))
	if i >= size {
		i = size - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
