package merge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AybarsKansu/image-labeling/internal/annotation"
	"github.com/AybarsKansu/image-labeling/pkg/geometry"
)

func det(r geometry.Rect, classID int, conf float64, tile int) annotation.Detection {
	return annotation.NewDetection(classID, geometry.Polygon(r.Corners()), conf, tile)
}

func TestMergeSuppressesOverlap(t *testing.T) {
	// Two boxes with 40% overlap from adjacent tiles; at threshold 0.3
	// only the higher-scoring one survives.
	dets := []annotation.Detection{
		det(geometry.NewRect(10, 10, 50, 50), 0, 0.9, 0),
		det(geometry.NewRect(40, 10, 80, 50), 0, 0.8, 1),
	}

	out := Merge(dets, Options{MinOverlap: 0.3})
	require.Len(t, out, 1)
	require.Equal(t, 0.9, out[0].Confidence)
}

func TestMergeKeepsDistantBoxes(t *testing.T) {
	dets := []annotation.Detection{
		det(geometry.NewRect(0, 0, 20, 20), 0, 0.9, 0),
		det(geometry.NewRect(100, 100, 20, 20), 0, 0.8, 1),
	}
	out := Merge(dets, DefaultOptions())
	require.Len(t, out, 2)
}

func TestMergeRespectsClass(t *testing.T) {
	a := det(geometry.NewRect(10, 10, 50, 50), 0, 0.9, 0)
	b := det(geometry.NewRect(12, 12, 50, 50), 1, 0.8, 1)

	out := Merge([]annotation.Detection{a, b}, Options{MinOverlap: 0.3})
	require.Len(t, out, 2)

	out = Merge([]annotation.Detection{a, b}, Options{MinOverlap: 0.3, ClassAgnostic: true})
	require.Len(t, out, 1)
	require.Equal(t, 0, out[0].ClassID)
}

func TestMergeIdempotent(t *testing.T) {
	dets := []annotation.Detection{
		det(geometry.NewRect(10, 10, 50, 50), 0, 0.9, 0),
		det(geometry.NewRect(40, 10, 80, 50), 0, 0.8, 1),
		det(geometry.NewRect(200, 200, 30, 30), 1, 0.7, 2),
	}

	once := Merge(dets, DefaultOptions())
	twice := Merge(once, DefaultOptions())
	require.Equal(t, once, twice)
}

func TestMergeOrdersByConfidence(t *testing.T) {
	dets := []annotation.Detection{
		det(geometry.NewRect(0, 0, 10, 10), 0, 0.2, 0),
		det(geometry.NewRect(50, 0, 10, 10), 0, 0.9, 0),
		det(geometry.NewRect(100, 0, 10, 10), 0, 0.5, 0),
	}
	out := Merge(dets, DefaultOptions())
	require.Len(t, out, 3)
	require.Equal(t, 0.9, out[0].Confidence)
	require.Equal(t, 0.5, out[1].Confidence)
	require.Equal(t, 0.2, out[2].Confidence)
}

func TestMergeMaxDetections(t *testing.T) {
	dets := []annotation.Detection{
		det(geometry.NewRect(0, 0, 10, 10), 0, 0.2, 0),
		det(geometry.NewRect(50, 0, 10, 10), 0, 0.9, 0),
		det(geometry.NewRect(100, 0, 10, 10), 0, 0.5, 0),
	}
	out := Merge(dets, Options{MinOverlap: 0.35, MaxDetections: 2})
	require.Len(t, out, 2)
	require.Equal(t, 0.9, out[0].Confidence)
	require.Equal(t, 0.5, out[1].Confidence)
}

func TestDedupeKeepsFirst(t *testing.T) {
	// Without confidence, input order decides the survivor.
	dets := []annotation.Detection{
		det(geometry.NewRect(10, 10, 50, 50), 0, 0, 0),
		det(geometry.NewRect(12, 12, 50, 50), 0, 0, 1),
	}
	out := Dedupe(dets, Options{MinOverlap: 0.3})
	require.Len(t, out, 1)
	require.Equal(t, dets[0].ID, out[0].ID)
}

func TestMergeEmpty(t *testing.T) {
	require.Empty(t, Merge(nil, DefaultOptions()))
}
