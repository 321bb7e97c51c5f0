package geometry

import (
	"fmt"
	"math"
)

// SplitByLine splits a polygon by the infinite line through a and b,
// returning the simple fragments from both sides. The fragments' areas
// must account for the whole input area; when they do not (the clipper
// lost or invented area on a near-degenerate input) an error is returned
// so the caller can fall back to another strategy.
func SplitByLine(p Polygon, a, b Point2D) ([]Polygon, error) {
	if len(p) < 3 {
		return nil, fmt.Errorf("polygon has %d vertices, need at least 3", len(p))
	}
	if a.Distance(b) < 1e-9 {
		return nil, fmt.Errorf("degenerate cut line")
	}

	var frags []Polygon
	if left := ClipToHalfPlane(p, a, b); left != nil {
		frags = append(frags, SplitPinched(left)...)
	}
	if right := ClipToHalfPlane(p, b, a); right != nil {
		frags = append(frags, SplitPinched(right)...)
	}

	var total float64
	for _, f := range frags {
		total += f.Area()
	}
	want := p.Area()
	tol := math.Max(1e-6, want*0.01)
	if math.Abs(total-want) > tol {
		return nil, fmt.Errorf("split lost area: fragments cover %.3f of %.3f", total, want)
	}
	return frags, nil
}

// SegmentBuffer returns the rectangle of all points within width of the
// segment a-b, with flat caps. Returns nil for a degenerate segment.
func SegmentBuffer(a, b Point2D, width float64) Polygon {
	dir := b.Sub(a).Unit()
	if dir == (Point2D{}) || width <= 0 {
		return nil
	}
	n := Point2D{X: -dir.Y, Y: dir.X}.Scale(width)
	// Ring order keeps the interior on the left of each edge.
	return Polygon{a.Sub(n), b.Sub(n), b.Add(n), a.Add(n)}
}

// SubtractConvex removes a convex region from the polygon, returning the
// remaining simple fragments. Works by peeling the part of the polygon
// outside each clip edge in turn; what survives every inside clip is the
// removed overlap.
func SubtractConvex(p Polygon, clip Polygon) []Polygon {
	if len(p) < 3 {
		return nil
	}
	if len(clip) < 3 {
		return []Polygon{p}
	}

	var out []Polygon
	remaining := []Polygon{p}
	for i := range clip {
		a := clip[i]
		b := clip[(i+1)%len(clip)]
		var next []Polygon
		for _, r := range remaining {
			// Outside of edge a->b is the left of the reversed edge.
			if piece := ClipToHalfPlane(r, b, a); piece != nil {
				out = append(out, SplitPinched(piece)...)
			}
			if inside := ClipToHalfPlane(r, a, b); inside != nil {
				next = append(next, inside)
			}
		}
		remaining = next
	}
	return out
}
