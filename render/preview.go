package render

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// DefaultPreviewSize is the longest side of a preview image.
const DefaultPreviewSize = 400

// Preview fits img into a maxSize box, keeping its aspect ratio, and draws
// the columns x rows cell grid over it.
func Preview(img image.Image, columns, rows, maxSize int) (image.Image, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid grid size: %dx%d", columns, rows)
	}
	if maxSize <= 0 {
		maxSize = DefaultPreviewSize
	}

	fitted, err := fit(img, maxSize)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContextForImage(fitted)
	defer dc.Close()

	w, h := float64(dc.Width()), float64(dc.Height())
	cellW, cellH := w/float64(columns), h/float64(rows)

	dc.SetRGBA(1, 0, 0, 0.5)
	dc.SetLineWidth(1)
	for i := 0; i <= columns; i++ {
		x := float64(i) * cellW
		dc.DrawLine(x, 0, x, h)
	}
	for i := 0; i <= rows; i++ {
		y := float64(i) * cellH
		dc.DrawLine(0, y, w, y)
	}
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("could not draw grid: %w", err)
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("could not flush preview: %w", err)
	}
	return dc.Image(), nil
}

// fit scales img so its longest side is maxSize.
func fit(img image.Image, maxSize int) (*image.RGBA, error) {
	srcBounds := img.Bounds()
	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())
	if srcWidth == 0 || srcHeight == 0 {
		return nil, fmt.Errorf("cannot preview empty image")
	}

	ar := srcWidth / srcHeight
	destWidth, destHeight := float64(maxSize), float64(maxSize)
	if ar > 1 {
		destHeight = destWidth / ar
	} else {
		destWidth = destHeight * ar
	}

	destBounds := image.Rect(0, 0, max(1, int(math.Round(destWidth))), max(1, int(math.Round(destHeight))))
	dest := image.NewRGBA(destBounds)
	draw.CatmullRom.Scale(dest, destBounds, img, srcBounds, draw.Over, nil)

	return dest, nil
}
