package okcolor

import (
	"image/color"
	"math"
	"testing"
)

func TestLabReference(t *testing.T) {
	tests := []struct {
		name    string
		in      color.Color
		L, A, B float64
	}{
		{"White", color.White, 1, 0, 0},
		{"Black", color.Black, 0, 0, 0},
		{"Red", color.RGBA{R: 255, A: 255}, 0.62796, 0.22486, 0.12585},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := LabModel.Convert(tt.in).(Lab)
			if math.Abs(lc.L-tt.L) > 1e-3 || math.Abs(lc.A-tt.A) > 1e-3 || math.Abs(lc.B-tt.B) > 1e-3 {
				t.Errorf("Lab = %+v, want L=%v a=%v b=%v", lc, tt.L, tt.A, tt.B)
			}
		})
	}
}

func TestLabRoundTrip(t *testing.T) {
	colors := []color.NRGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 12, G: 200, B: 99, A: 255},
		{R: 250, G: 3, B: 180, A: 255},
	}

	for _, want := range colors {
		lc := LabModel.Convert(want)
		got := color.NRGBAModel.Convert(lc).(color.NRGBA)
		if diff(got.R, want.R) > 1 || diff(got.G, want.G) > 1 || diff(got.B, want.B) > 1 || got.A != want.A {
			t.Errorf("round trip of %v = %v", want, got)
		}
	}
}

func TestDistance(t *testing.T) {
	red := LabModel.Convert(color.RGBA{R: 255, A: 255}).(Lab)
	darkRed := LabModel.Convert(color.RGBA{R: 180, A: 255}).(Lab)
	blue := LabModel.Convert(color.RGBA{B: 255, A: 255}).(Lab)

	if d := red.Distance(red); d != 0 {
		t.Errorf("distance to self = %v", d)
	}
	if red.Distance(darkRed) >= red.Distance(blue) {
		t.Errorf("red is closer to blue than to dark red")
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
