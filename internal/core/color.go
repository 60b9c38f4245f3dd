package core

import "image/color"

// Predefined colors for game elements.
var (
	ColorNone  = color.NRGBA{}
	ColorBlack = color.NRGBA{A: 0xff}
	ColorWhite = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorGray  = color.NRGBA{R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff}
)

// ToNRGBA converts any color to non-premultiplied 8-bit RGBA.
// A nil color maps to ColorNone.
func ToNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return ColorNone
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
