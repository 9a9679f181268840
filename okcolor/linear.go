package okcolor

import (
	"image/color"
	"math"
)

// LinearRGBA is an sRGB colour with the transfer function removed, channels in [0, 1].
type LinearRGBA struct {
	R float64
	G float64
	B float64
	A uint16
}

func linearRGBAConvert(c color.Color) color.Color {
	if _, ok := c.(LinearRGBA); ok {
		return c
	}

	return fromSRGB(color.NRGBA64Model.Convert(c).(color.NRGBA64))
}

// RGBA clamps out-of-gamut channels and returns premultiplied sRGB.
func (lc LinearRGBA) RGBA() (uint32, uint32, uint32, uint32) {
	return toSRGB(lc).RGBA()
}

func toSRGB(lc LinearRGBA) color.NRGBA64 {
	return color.NRGBA64{
		R: uint16(math.Round(fromLinear(clamp01(lc.R)) * 0xFFFF)),
		G: uint16(math.Round(fromLinear(clamp01(lc.G)) * 0xFFFF)),
		B: uint16(math.Round(fromLinear(clamp01(lc.B)) * 0xFFFF)),
		A: lc.A,
	}
}

func fromSRGB(c color.NRGBA64) LinearRGBA {
	return LinearRGBA{
		R: toLinear(float64(c.R) / 0xFFFF),
		G: toLinear(float64(c.G) / 0xFFFF),
		B: toLinear(float64(c.B) / 0xFFFF),
		A: c.A,
	}
}

func toLinear(x float64) float64 {
	if x >= 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return x / 12.92
}

const invGamma float64 = 1.0 / 2.4

func fromLinear(x float64) float64 {
	if x >= 0.0031308 {
		return math.Pow(x, invGamma)*1.055 - 0.055
	}
	return x * 12.92
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
