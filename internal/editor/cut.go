// Package editor implements interactive annotation edits, currently the
// cut tool that splits a polygon along a drawn line.
package editor

import (
	"fmt"

	"github.com/AybarsKansu/image-labeling/pkg/geometry"
)

const (
	// cutExtension lengthens the drawn line at both ends so a stroke
	// that visually crosses the polygon also crosses it numerically.
	cutExtension = 20.0
	// cutWidth is the half-width of the cutting blade used by the
	// buffered fallback.
	cutWidth = 1.5
)

// Cut splits target along the drawn polyline and returns the resulting
// fragments, dropping any below minArea. The target is repaired first,
// so a self-intersecting polygon is cut lobe by lobe. A straight cutter
// is handled exactly by half-plane clipping; multi-segment cutters, and
// straight cuts the exact path rejects, subtract a thin buffered blade
// instead.
//
// An error is returned only when the target itself is unusable or the
// cut leaves nothing above minArea; a stroke that misses the polygon
// returns the repaired polygon unchanged.
func Cut(target geometry.Polygon, cutter []geometry.Point2D, minArea float64) ([]geometry.Polygon, error) {
	parts := geometry.Repair(target)
	if len(parts) == 0 {
		return nil, fmt.Errorf("cut: target polygon has no usable area")
	}
	if len(cutter) < 2 {
		return nil, fmt.Errorf("cut: cutter needs at least two points")
	}

	line := extendPolyline(cutter, cutExtension)

	var frags []geometry.Polygon
	for _, part := range parts {
		if len(line) == 2 {
			split, err := geometry.SplitByLine(part, line[0], line[1])
			if err == nil {
				frags = append(frags, split...)
				continue
			}
		}
		frags = append(frags, subtractBlade(part, line)...)
	}

	kept := frags[:0]
	for _, f := range frags {
		if len(f) >= 3 && f.Area() >= minArea {
			kept = append(kept, f)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("cut: no fragment of at least %g px² remains", minArea)
	}
	return kept, nil
}

// subtractBlade removes a thin buffered band around each cutter segment
// from the polygon, severing it where the stroke passes through.
func subtractBlade(p geometry.Polygon, line []geometry.Point2D) []geometry.Polygon {
	pieces := []geometry.Polygon{p}
	for i := 0; i+1 < len(line); i++ {
		blade := geometry.SegmentBuffer(line[i], line[i+1], cutWidth)
		var next []geometry.Polygon
		for _, piece := range pieces {
			next = append(next, geometry.SubtractConvex(piece, blade)...)
		}
		pieces = next
	}
	return pieces
}

// extendPolyline pushes the first and last points outward along their
// segments by dist. Zero-length end segments are left alone.
func extendPolyline(line []geometry.Point2D, dist float64) []geometry.Point2D {
	out := make([]geometry.Point2D, len(line))
	copy(out, line)

	first := out[1].Sub(out[0])
	if first.Norm() > 0 {
		out[0] = out[0].Sub(first.Unit().Scale(dist))
	}
	last := out[len(out)-1].Sub(out[len(out)-2])
	if last.Norm() > 0 {
		out[len(out)-1] = out[len(out)-1].Add(last.Unit().Scale(dist))
	}
	return out
}
