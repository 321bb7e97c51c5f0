package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AybarsKansu/image-labeling/internal/annotation"
	"github.com/AybarsKansu/image-labeling/internal/tiling"
	"github.com/AybarsKansu/image-labeling/pkg/geometry"
)

func TestClipToTileRoundTrip(t *testing.T) {
	// A polygon entirely inside one tile survives clipping unchanged
	// once mapped back to global pixels.
	tile := tiling.Tile{Index: 0, X1: 100, Y1: 100, X2: 200, Y2: 200}
	poly := geometry.Polygon{{X: 110, Y: 110}, {X: 160, Y: 120}, {X: 150, Y: 170}}

	entries := ClipToTile(poly, 7, tile, MinPolygonArea)
	require.Len(t, entries, 1)
	require.Equal(t, 7, entries[0].ClassID)

	back := make(geometry.Polygon, 0, 3)
	for i := 0; i+1 < len(entries[0].Points); i += 2 {
		px, py := tiling.Denormalize(entries[0].Points[i], entries[0].Points[i+1], tile.Width(), tile.Height())
		gx, gy := tile.LocalToGlobal(px, py)
		back = append(back, geometry.Point2D{X: gx, Y: gy})
	}
	require.Len(t, back, len(poly))
	for i := range poly {
		require.InDelta(t, poly[i].X, back[i].X, 1e-6)
		require.InDelta(t, poly[i].Y, back[i].Y, 1e-6)
	}
}

func TestClipToTileSpanning(t *testing.T) {
	tile := tiling.Tile{Index: 0, X1: 0, Y1: 0, X2: 100, Y2: 100}
	poly := geometry.Polygon{{X: 60, Y: 60}, {X: 140, Y: 60}, {X: 140, Y: 140}, {X: 60, Y: 140}}

	entries := ClipToTile(poly, 0, tile, MinPolygonArea)
	require.Len(t, entries, 1)

	clipped := entries[0].Polygon()
	for _, v := range clipped {
		require.GreaterOrEqual(t, v.X, 0.0)
		require.LessOrEqual(t, v.X, 1.0)
		require.GreaterOrEqual(t, v.Y, 0.0)
		require.LessOrEqual(t, v.Y, 1.0)
	}
	// Normalized area times the tile area is the clipped pixel area.
	require.InDelta(t, 1600.0, clipped.Area()*100*100, 1e-6)
}

func TestClipToTileDropsTiny(t *testing.T) {
	tile := tiling.Tile{Index: 0, X1: 0, Y1: 0, X2: 100, Y2: 100}
	tiny := geometry.Polygon{{X: 10, Y: 10}, {X: 13, Y: 10}, {X: 13, Y: 12}} // 3 px²
	require.Empty(t, ClipToTile(tiny, 0, tile, MinPolygonArea))

	// The same polygon survives with the threshold disabled.
	require.Len(t, ClipToTile(tiny, 0, tile, 0), 1)
}

func TestClipToTileDisjoint(t *testing.T) {
	tile := tiling.Tile{Index: 0, X1: 0, Y1: 0, X2: 100, Y2: 100}
	far := geometry.Polygon{{X: 500, Y: 500}, {X: 600, Y: 500}, {X: 600, Y: 600}}
	require.Empty(t, ClipToTile(far, 0, tile, MinPolygonArea))
}

func TestAreaConservation(t *testing.T) {
	// With zero overlap the tile interiors partition the image, so the
	// clipped fragment areas across all tiles sum to the polygon's area.
	tiles := tiling.Plan(100, 100, 50, 0)
	require.Len(t, tiles, 4)

	poly := geometry.Polygon{{X: 10, Y: 10}, {X: 90, Y: 20}, {X: 40, Y: 80}}
	var total float64
	for _, tile := range tiles {
		for _, e := range ClipToTile(poly, 0, tile, 0) {
			total += e.Polygon().Area() * float64(tile.Width()) * float64(tile.Height())
		}
	}
	require.InDelta(t, poly.Area(), total, 1e-6)
}

func TestClipRecord(t *testing.T) {
	rec := &annotation.LabelRecord{
		ImageName: "board.png",
		Width:     200,
		Height:    200,
		Entries: []annotation.Entry{
			{ClassID: 1, Points: []float64{0.05, 0.05, 0.25, 0.05, 0.25, 0.25, 0.05, 0.25}},
			{ClassID: 2, Points: []float64{0.8, 0.8, 0.9, 0.8, 0.9, 0.9}},
			{ClassID: 3, Points: []float64{0.1, 0.1}}, // too few points, skipped
		},
	}

	topLeft := tiling.Tile{Index: 0, X1: 0, Y1: 0, X2: 100, Y2: 100}
	entries := ClipRecord(rec, topLeft, MinPolygonArea)
	require.Len(t, entries, 1)
	require.Equal(t, 1, entries[0].ClassID)

	degenerate := tiling.Tile{Index: 1, X1: 0, Y1: 0, X2: 5, Y2: 100}
	require.Nil(t, ClipRecord(rec, degenerate, MinPolygonArea))
}
