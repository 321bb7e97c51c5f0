// Package colorutil provides shared color utilities for annotation overlays.
package colorutil

import (
	"image/color"
)

// Common overlay colors used throughout the application.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Blue    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Green   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Orange  = color.RGBA{R: 255, G: 165, B: 0, A: 255}
)

// palette is the cycle of visually distinct polygon outline colors.
var palette = []color.RGBA{
	Green, Cyan, Magenta, Yellow, Blue, Red, Orange, White,
}

// ClassColor returns a stable outline color for a class id. Ids beyond
// the palette wrap around.
func ClassColor(classID int) color.RGBA {
	if classID < 0 {
		return Black
	}
	return palette[classID%len(palette)]
}
