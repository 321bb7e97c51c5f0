package geometry

const (
	// pinchEps is the distance under which two vertices are considered
	// the same point when looking for pinched rings.
	pinchEps = 1e-7

	// maxRepairDepth bounds the untwist recursion for pathological rings.
	maxRepairDepth = 24
)

// IsSimple reports whether the polygon has no self-intersections.
// Adjacent edges (which always share an endpoint) are not counted.
func (p Polygon) IsSimple() bool {
	n := len(p)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a1 := p[i]
		a2 := p[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // closing edge is adjacent to the first
			}
			b1 := p[j]
			b2 := p[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

// Repair resolves self-intersections and degenerate rings, returning the
// polygon as one or more simple rings. A figure-eight ring is untwisted
// at each crossing into its lobes. Rings that collapse to zero area are
// dropped. Returns nil when nothing usable remains.
func Repair(p Polygon) []Polygon {
	p = p.Dedupe()
	if len(p) < 3 {
		return nil
	}
	return repairRing(p, 0)
}

func repairRing(p Polygon, depth int) []Polygon {
	if len(p) < 3 || depth > maxRepairDepth {
		return nil
	}

	n := len(p)
	for i := 0; i < n; i++ {
		a1 := p[i]
		a2 := p[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			b1 := p[j]
			b2 := p[(j+1)%n]
			if !segmentsIntersect(a1, a2, b1, b2) {
				continue
			}

			x, ok := lineIntersection(a1, a2, b1, b2)
			if !ok {
				// Collinear overlap: drop the second edge's start vertex
				// and retry on the shorter ring.
				shrunk := make(Polygon, 0, n-1)
				shrunk = append(shrunk, p[:j]...)
				shrunk = append(shrunk, p[j+1:]...)
				return repairRing(shrunk.Dedupe(), depth+1)
			}

			// Untwist at the crossing: vertices (i+1..j) form one lobe,
			// the rest plus the crossing point form the other.
			lobe := make(Polygon, 0, j-i+1)
			lobe = append(lobe, x)
			lobe = append(lobe, p[i+1:j+1]...)

			rest := make(Polygon, 0, n-(j-i)+1)
			rest = append(rest, p[:i+1]...)
			rest = append(rest, x)
			rest = append(rest, p[j+1:]...)

			out := repairRing(lobe.Dedupe(), depth+1)
			out = append(out, repairRing(rest.Dedupe(), depth+1)...)
			return out
		}
	}

	if p.Area() <= 0 {
		return nil
	}
	return []Polygon{p}
}

// SplitPinched splits a ring that touches itself at repeated vertices
// into separate simple rings. Sutherland-Hodgman clipping of a concave
// subject produces such pinched rings when the subject crosses the clip
// boundary more than twice.
func SplitPinched(p Polygon) []Polygon {
	p = p.Dedupe()
	n := len(p)
	if n < 3 {
		return nil
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p[i].Distance(p[j]) >= pinchEps {
				continue
			}
			inner := p[i:j].Clone()
			outer := make(Polygon, 0, n-(j-i))
			outer = append(outer, p[:i]...)
			outer = append(outer, p[j:]...)
			return append(SplitPinched(inner), SplitPinched(outer)...)
		}
	}

	if p.Area() < pinchEps {
		return nil
	}
	return []Polygon{p}
}
