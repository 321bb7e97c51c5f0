package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClipToRectInside(t *testing.T) {
	subject := Polygon{{2, 2}, {8, 2}, {8, 8}, {2, 8}}
	clipped := ClipToRect(subject, NewRect(0, 0, 10, 10))
	require.NotNil(t, clipped)
	require.InDelta(t, 36.0, clipped.Area(), 1e-9)
}

func TestClipToRectPartial(t *testing.T) {
	subject := Polygon{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}}
	clipped := ClipToRect(subject, NewRect(0, 0, 10, 10))
	require.NotNil(t, clipped)
	require.InDelta(t, 25.0, clipped.Area(), 1e-9)

	// Every surviving vertex lies inside the clip rect.
	for _, v := range clipped {
		require.GreaterOrEqual(t, v.X, 0.0)
		require.GreaterOrEqual(t, v.Y, 0.0)
		require.LessOrEqual(t, v.X, 10.0)
		require.LessOrEqual(t, v.Y, 10.0)
	}
}

func TestClipToRectDisjoint(t *testing.T) {
	subject := Polygon{{20, 20}, {30, 20}, {30, 30}, {20, 30}}
	require.Nil(t, ClipToRect(subject, NewRect(0, 0, 10, 10)))
}

func TestClipConvexSingleFragment(t *testing.T) {
	// A convex subject clipped against a rectangle stays a single
	// simple ring no matter where the rectangle sits.
	subject := Polygon{{10, 0}, {40, 10}, {50, 40}, {20, 50}, {0, 30}}
	require.True(t, subject.IsConvex())

	for _, r := range []Rect{
		NewRect(0, 0, 25, 25),
		NewRect(25, 25, 25, 25),
		NewRect(5, 5, 40, 40),
		NewRect(-10, -10, 100, 100),
	} {
		clipped := ClipToRect(subject, r)
		if clipped == nil {
			continue
		}
		frags := SplitPinched(clipped)
		require.Len(t, frags, 1)
		require.True(t, frags[0].IsSimple())
	}
}

func TestClipConcaveKeepsArea(t *testing.T) {
	// A U shape clipped to a band across its two legs. The clipper may
	// return the legs joined by a degenerate seam along the clip edge,
	// but the enclosed area must still be exactly the two legs.
	u := Polygon{{0, 0}, {30, 0}, {30, 30}, {20, 30}, {20, 10}, {10, 10}, {10, 30}, {0, 30}}
	clipped := ClipToRect(u, NewRect(0, 20, 30, 10))
	require.NotNil(t, clipped)
	require.InDelta(t, 200.0, clipped.Area(), 1e-9)
}

func TestClipToHalfPlane(t *testing.T) {
	square := Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	left := ClipToHalfPlane(square, Point2D{5, -5}, Point2D{5, 15})
	require.NotNil(t, left)
	require.InDelta(t, 50.0, left.Area(), 1e-9)

	right := ClipToHalfPlane(square, Point2D{5, 15}, Point2D{5, -5})
	require.NotNil(t, right)
	require.InDelta(t, 50.0, right.Area(), 1e-9)

	// A line that misses the polygon keeps or discards it whole.
	all := ClipToHalfPlane(square, Point2D{20, -20}, Point2D{20, 20})
	require.InDelta(t, 100.0, all.Area(), 1e-9)
	require.Nil(t, ClipToHalfPlane(square, Point2D{20, 20}, Point2D{20, -20}))
}
