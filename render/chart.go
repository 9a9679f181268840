package render

import (
	"errors"
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/gg"
)

// ErrNotEnoughPoints is returned when a chart has fewer than two points.
var ErrNotEnoughPoints = errors.New("at least two data points are needed for a trend")

const (
	chartPadding   = 40
	chartGridLines = 4
)

// WeightChart plots values left to right as a line with dots over a light
// grid. The value axis covers the data range padded by 10% on both ends.
func WeightChart(values []float64, width, height int) (image.Image, error) {
	if len(values) < 2 {
		return nil, ErrNotEnoughPoints
	}
	if width <= 2*chartPadding || height <= 2*chartPadding {
		return nil, fmt.Errorf("chart too small: %dx%d", width, height)
	}

	lo, hi := slices.Min(values), slices.Max(values)
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = 1
	}
	lo, hi = lo-pad, hi+pad

	w, h := float64(width), float64(height)
	plotW, plotH := w-2*chartPadding, h-2*chartPadding
	pos := func(i int, v float64) (float64, float64) {
		x := chartPadding + plotW/float64(len(values)-1)*float64(i)
		y := h - chartPadding - (v-lo)/(hi-lo)*plotH
		return x, y
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	// axes
	dc.SetHexColor("#dddddd")
	dc.SetLineWidth(1)
	dc.DrawLine(chartPadding, chartPadding, chartPadding, h-chartPadding)
	dc.DrawLine(chartPadding, h-chartPadding, w-chartPadding, h-chartPadding)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("could not draw axes: %w", err)
	}

	dc.SetHexColor("#f0f0f0")
	dc.SetLineWidth(0.5)
	for i := 0; i <= chartGridLines; i++ {
		y := chartPadding + plotH/chartGridLines*float64(i)
		dc.DrawLine(chartPadding, y, w-chartPadding, y)
	}
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("could not draw grid: %w", err)
	}

	dc.SetHexColor("#667eea")
	dc.SetLineWidth(3)
	for i, v := range values {
		x, y := pos(i, v)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("could not draw trend: %w", err)
	}

	for i, v := range values {
		x, y := pos(i, v)
		dc.DrawCircle(x, y, 4)
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("could not draw point %d: %w", i, err)
		}
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("could not flush chart: %w", err)
	}
	return dc.Image(), nil
}
