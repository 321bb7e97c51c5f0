package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitByLineSquare(t *testing.T) {
	square := Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	frags, err := SplitByLine(square, Point2D{5, -5}, Point2D{5, 15})
	require.NoError(t, err)
	require.Len(t, frags, 2)
	for _, f := range frags {
		require.InDelta(t, 50.0, f.Area(), 1e-9)
		require.True(t, f.IsSimple())
	}
}

func TestSplitByLineDiagonal(t *testing.T) {
	square := Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	frags, err := SplitByLine(square, Point2D{0, 0}, Point2D{10, 10})
	require.NoError(t, err)
	require.Len(t, frags, 2)

	var total float64
	for _, f := range frags {
		total += f.Area()
	}
	require.InDelta(t, 100.0, total, 1e-6)
}

func TestSplitByLineMiss(t *testing.T) {
	square := Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	frags, err := SplitByLine(square, Point2D{50, 0}, Point2D{50, 10})
	require.NoError(t, err)
	require.Len(t, frags, 1)
	require.InDelta(t, 100.0, frags[0].Area(), 1e-9)
}

func TestSplitByLineDegenerate(t *testing.T) {
	square := Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	_, err := SplitByLine(square, Point2D{5, 5}, Point2D{5, 5})
	require.Error(t, err)

	_, err = SplitByLine(Polygon{{0, 0}, {1, 1}}, Point2D{0, 0}, Point2D{1, 0})
	require.Error(t, err)
}

func TestSplitByLineConcave(t *testing.T) {
	// Cutting a U shape across both legs gives three fragments: the two
	// leg tops on one side and the joined base on the other.
	u := Polygon{{0, 0}, {30, 0}, {30, 30}, {20, 30}, {20, 10}, {10, 10}, {10, 30}, {0, 30}}
	frags, err := SplitByLine(u, Point2D{-5, 20}, Point2D{35, 20})
	require.NoError(t, err)

	var total float64
	for _, f := range frags {
		total += f.Area()
	}
	require.InDelta(t, u.Area(), total, 1e-6)
	require.GreaterOrEqual(t, len(frags), 2)
}

func TestSegmentBuffer(t *testing.T) {
	buf := SegmentBuffer(Point2D{0, 0}, Point2D{10, 0}, 2)
	require.Len(t, buf, 4)
	require.InDelta(t, 40.0, buf.Area(), 1e-9)
	require.True(t, buf.IsConvex())

	require.Nil(t, SegmentBuffer(Point2D{3, 3}, Point2D{3, 3}, 2))
	require.Nil(t, SegmentBuffer(Point2D{0, 0}, Point2D{10, 0}, 0))
}

func TestSubtractConvex(t *testing.T) {
	square := Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	blade := SegmentBuffer(Point2D{5, -5}, Point2D{5, 15}, 1.5)

	pieces := SubtractConvex(square, blade)
	require.Len(t, pieces, 2)

	var total float64
	for _, p := range pieces {
		require.True(t, p.IsSimple())
		total += p.Area()
	}
	// The blade removes a 3 px wide band across the square.
	require.InDelta(t, 70.0, total, 1e-6)
}

func TestSubtractConvexDisjoint(t *testing.T) {
	square := Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	far := Polygon{{50, 50}, {60, 50}, {60, 60}, {50, 60}}
	pieces := SubtractConvex(square, far)

	var total float64
	for _, p := range pieces {
		total += p.Area()
	}
	require.InDelta(t, 100.0, total, 1e-6)
}
