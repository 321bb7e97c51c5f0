// Package dataset prepares training data: clipping polygon annotations
// against tile boundaries and producing per-tile images and label records.
package dataset

import (
	"fmt"

	"github.com/AybarsKansu/image-labeling/internal/annotation"
	"github.com/AybarsKansu/image-labeling/internal/tiling"
	"github.com/AybarsKansu/image-labeling/pkg/geometry"
)

// MinPolygonArea is the default minimum fragment area in px². Fragments
// below it are noise left over from clipping and are discarded.
const MinPolygonArea = 10.0

// ClipToTile intersects one polygon (absolute image pixels) with a tile
// and returns the surviving fragments as entries in tile-local normalized
// coordinates. A polygon the clipper cannot repair is skipped; the spec
// for a single polygon never fails the tile.
//
// A source polygon that straddles a tile seam can come back as several
// disjoint fragments; each one becomes its own entry carrying the same
// class id.
func ClipToTile(poly geometry.Polygon, classID int, t tiling.Tile, minArea float64) []annotation.Entry {
	parts := geometry.Repair(poly)
	if len(parts) == 0 {
		return nil
	}

	tileRect := t.Rect()
	tw, th := t.Width(), t.Height()

	var out []annotation.Entry
	for _, part := range parts {
		clipped := geometry.ClipToRect(part, tileRect)
		if clipped == nil {
			continue
		}
		for _, frag := range geometry.SplitPinched(clipped) {
			if len(frag) < 3 || frag.Area() < minArea {
				continue
			}

			pts := make([]float64, 0, len(frag)*2)
			for _, v := range frag {
				lx, ly := t.GlobalToLocal(v.X, v.Y)
				nx, ny := tiling.Normalize(lx, ly, tw, th)
				pts = append(pts, nx, ny)
			}

			// Clamping can collapse vertices onto each other; require
			// three distinct vertices after normalization too.
			norm := annotation.FlatToPolygon(pts).Dedupe()
			if len(norm) < 3 {
				continue
			}
			out = append(out, annotation.Entry{
				ClassID: classID,
				Points:  annotation.PolygonToFlat(norm),
			})
		}
	}
	return out
}

// ClipRecord clips every labeled polygon of a full-image record against
// one tile. Entries in the input record are normalized to the record's
// image dimensions; entries in the result are normalized to the tile.
// Degenerate tiles yield nothing. A failing polygon is skipped and the
// rest of the record still processed.
func ClipRecord(rec *annotation.LabelRecord, t tiling.Tile, minArea float64) []annotation.Entry {
	if t.Degenerate() {
		return nil
	}

	var out []annotation.Entry
	for _, e := range rec.Entries {
		abs := make(geometry.Polygon, 0, len(e.Points)/2)
		for i := 0; i+1 < len(e.Points); i += 2 {
			x, y := tiling.Denormalize(e.Points[i], e.Points[i+1], rec.Width, rec.Height)
			abs = append(abs, geometry.Point2D{X: x, Y: y})
		}
		if len(abs) < 3 {
			fmt.Printf("ClipRecord: skipping class %d polygon with %d points\n", e.ClassID, len(abs))
			continue
		}
		out = append(out, ClipToTile(abs, e.ClassID, t, minArea)...)
	}
	return out
}
