package geometry

import "math"

// Polygon is an ordered ring of vertices. The closing edge from the last
// vertex back to the first is implicit; the closing point is not stored.
type Polygon []Point2D

// Clone returns a copy of the polygon.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// SignedArea returns the shoelace area of the polygon. The sign depends
// on winding order; in image coordinates (y down) a clockwise-on-screen
// ring has positive signed area.
func (p Polygon) SignedArea() float64 {
	if len(p) < 3 {
		return 0
	}
	var sum float64
	for i := range p {
		j := (i + 1) % len(p)
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return sum / 2
}

// Area returns the absolute area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// BoundingBox returns the axis-aligned bounding box of the polygon.
func (p Polygon) BoundingBox() Rect {
	return BoundingBox(p)
}

// Dedupe returns the polygon with consecutive duplicate vertices removed,
// including a duplicated closing vertex if present.
func (p Polygon) Dedupe() Polygon {
	const eps = 1e-9
	if len(p) == 0 {
		return nil
	}
	out := make(Polygon, 0, len(p))
	for _, v := range p {
		if len(out) > 0 && v.Distance(out[len(out)-1]) < eps {
			continue
		}
		out = append(out, v)
	}
	// Implicit closing edge: drop an explicit closing vertex.
	for len(out) > 1 && out[0].Distance(out[len(out)-1]) < eps {
		out = out[:len(out)-1]
	}
	return out
}

// IsConvex returns true if the polygon vertices form a convex polygon.
// The polygon is assumed to be simple (non-self-intersecting).
func (p Polygon) IsConvex() bool {
	if len(p) < 3 {
		return false
	}

	n := len(p)
	var sign int

	for i := 0; i < n; i++ {
		cross := crossProduct(p[i], p[(i+1)%n], p[(i+2)%n])
		if cross != 0 {
			currentSign := 1
			if cross < 0 {
				currentSign = -1
			}
			if sign == 0 {
				sign = currentSign
			} else if currentSign != sign {
				return false
			}
		}
	}

	return true
}

// Contains tests if a point is inside the polygon using ray casting.
func (p Polygon) Contains(pt Point2D) bool {
	if len(p) < 3 {
		return false
	}

	inside := false
	n := len(p)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := p[i], p[j]

		// Check if ray from pt going right intersects edge pi-pj
		if ((pi.Y > pt.Y) != (pj.Y > pt.Y)) &&
			(pt.X < (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}

	return inside
}

// Translate returns the polygon shifted by (dx, dy).
func (p Polygon) Translate(dx, dy float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Point2D{X: v.X + dx, Y: v.Y + dy}
	}
	return out
}

// crossProduct computes the cross product of vectors OA and OB.
func crossProduct(o, a, b Point2D) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
