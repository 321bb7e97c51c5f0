// Package render draws annotation overlays onto images for visual
// inspection of prepared tiles.
package render

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/AybarsKansu/image-labeling/internal/annotation"
	"github.com/AybarsKansu/image-labeling/internal/tiling"
	"github.com/AybarsKansu/image-labeling/pkg/colorutil"
)

// Overlay returns a copy of img with the record's polygon outlines
// drawn on top, one color per class. The record's normalized
// coordinates are mapped to the image dimensions.
func Overlay(img image.Image, rec *annotation.LabelRecord) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)

	for _, e := range rec.Entries {
		c := colorutil.ClassColor(e.ClassID)
		poly := e.Polygon()
		for i := range poly {
			j := (i + 1) % len(poly)
			x1, y1 := tiling.Denormalize(poly[i].X, poly[i].Y, b.Dx(), b.Dy())
			x2, y2 := tiling.Denormalize(poly[j].X, poly[j].Y, b.Dx(), b.Dy())
			drawLine(dst, x1, y1, x2, y2, c)
		}
	}
	return dst
}

// drawLine draws a 1 px line by stepping along the longer axis.
func drawLine(dst *image.RGBA, x1, y1, x2, y2 float64, c color.RGBA) {
	steps := int(math.Max(math.Abs(x2-x1), math.Abs(y2-y1)))
	if steps == 0 {
		dst.Set(int(x1), int(y1), c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		dst.Set(int(x1+t*(x2-x1)), int(y1+t*(y2-y1)), c)
	}
}
