package dataset

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/AybarsKansu/image-labeling/internal/annotation"
)

// FlipRecord mirrors a record's polygons horizontally. Coordinates are
// normalized, so the mirror is x -> 1-x; vertex order is kept, which
// flips the winding, and downstream code treats both windings alike.
// The returned record is named <base>_flip<ext>.
func FlipRecord(rec *annotation.LabelRecord) *annotation.LabelRecord {
	base, ext := splitImageName(rec.ImageName)

	out := &annotation.LabelRecord{
		ImageName: base + "_flip" + ext,
		Width:     rec.Width,
		Height:    rec.Height,
		Entries:   make([]annotation.Entry, 0, len(rec.Entries)),
	}
	for _, e := range rec.Entries {
		pts := make([]float64, len(e.Points))
		copy(pts, e.Points)
		for i := 0; i+1 < len(pts); i += 2 {
			pts[i] = 1 - pts[i]
		}
		out.Entries = append(out.Entries, annotation.Entry{ClassID: e.ClassID, Points: pts})
	}
	return out
}

// FlipImage mirrors an image horizontally.
func FlipImage(img image.Image) image.Image {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for x := 0; x < b.Dx(); x++ {
		col := image.Rect(b.Dx()-x-1, 0, b.Dx()-x, b.Dy())
		xdraw.Copy(dst, col.Min, img, image.Rect(b.Min.X+x, b.Min.Y, b.Min.X+x+1, b.Max.Y), xdraw.Src, nil)
	}
	return dst
}
