package geometry

import "math"

// ClipToRect computes the intersection of a polygon with an axis-aligned
// rectangle using the Sutherland-Hodgman algorithm. The subject polygon
// may be concave. Returns nil if nothing of the polygon lies inside the
// rectangle.
//
// A concave subject that crosses the rectangle boundary more than twice
// comes back as a single ring pinched along the boundary; callers that
// need separate fragments should run the result through SplitPinched.
func ClipToRect(subject Polygon, r Rect) Polygon {
	return clipToRegion(subject, r.Corners())
}

// ClipToHalfPlane clips the polygon to the half-plane on the left of the
// directed line a->b. The line is infinite; a and b only fix direction.
func ClipToHalfPlane(subject Polygon, a, b Point2D) Polygon {
	if len(subject) < 3 {
		return nil
	}
	out := clipPolygonByEdge(subject, a, b)
	if len(out) < 3 {
		return nil
	}
	return out
}

// clipToRegion clips a polygon against each edge of a convex clip region
// whose interior lies on the left of every directed edge.
func clipToRegion(subject Polygon, clip []Point2D) Polygon {
	if len(subject) < 3 || len(clip) < 3 {
		return nil
	}

	output := make(Polygon, len(subject))
	copy(output, subject)

	for i := 0; i < len(clip); i++ {
		if len(output) == 0 {
			return nil
		}
		edgeStart := clip[i]
		edgeEnd := clip[(i+1)%len(clip)]
		output = clipPolygonByEdge(output, edgeStart, edgeEnd)
	}

	if len(output) < 3 {
		return nil
	}
	return output
}

// clipPolygonByEdge clips a polygon against a single directed edge using
// the Sutherland-Hodgman algorithm. The kept side is the left of the edge.
func clipPolygonByEdge(polygon Polygon, edgeStart, edgeEnd Point2D) Polygon {
	var clipped Polygon

	for i := 0; i < len(polygon); i++ {
		current := polygon[i]
		next := polygon[(i+1)%len(polygon)]

		currentInside := isInsideEdge(current, edgeStart, edgeEnd)
		nextInside := isInsideEdge(next, edgeStart, edgeEnd)

		if currentInside {
			clipped = append(clipped, current)
			if !nextInside {
				// Exiting: add intersection point
				if intersection, ok := lineIntersection(current, next, edgeStart, edgeEnd); ok {
					clipped = append(clipped, intersection)
				}
			}
		} else if nextInside {
			// Entering: add intersection point
			if intersection, ok := lineIntersection(current, next, edgeStart, edgeEnd); ok {
				clipped = append(clipped, intersection)
			}
		}
	}

	return clipped
}

// isInsideEdge checks if a point is on the inside (left side) of the
// directed edge.
func isInsideEdge(p, edgeStart, edgeEnd Point2D) bool {
	return (edgeEnd.X-edgeStart.X)*(p.Y-edgeStart.Y)-
		(edgeEnd.Y-edgeStart.Y)*(p.X-edgeStart.X) >= 0
}

// lineIntersection computes the intersection point of the infinite lines
// through p1-p2 and e1-e2. Returns the point and true unless the lines
// are parallel.
func lineIntersection(p1, p2, e1, e2 Point2D) (Point2D, bool) {
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := e1.X, e1.Y
	x4, y4 := e2.X, e2.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < 1e-10 {
		// Lines are parallel
		return Point2D{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom

	return Point2D{
		X: x1 + t*(x2-x1),
		Y: y1 + t*(y2-y1),
	}, true
}

// segmentsIntersect reports whether the closed segments a1-a2 and b1-b2
// properly intersect or touch. Collinear overlap counts as intersecting.
func segmentsIntersect(a1, a2, b1, b2 Point2D) bool {
	d1 := crossProduct(b1, b2, a1)
	d2 := crossProduct(b1, b2, a2)
	d3 := crossProduct(a1, a2, b1)
	d4 := crossProduct(a1, a2, b2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if d1 == 0 && onSegment(b1, b2, a1) {
		return true
	}
	if d2 == 0 && onSegment(b1, b2, a2) {
		return true
	}
	if d3 == 0 && onSegment(a1, a2, b1) {
		return true
	}
	if d4 == 0 && onSegment(a1, a2, b2) {
		return true
	}
	return false
}

// onSegment reports whether p lies within the bounding box of segment a-b.
// Only valid when p is known to be collinear with a-b.
func onSegment(a, b, p Point2D) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}
