package tiling

import (
	"github.com/AybarsKansu/image-labeling/pkg/geometry"
)

// LocalToGlobal maps tile-local pixel coordinates into image coordinates.
func (t Tile) LocalToGlobal(x, y float64) (float64, float64) {
	return x + float64(t.X1), y + float64(t.Y1)
}

// GlobalToLocal maps image coordinates into tile-local pixel coordinates.
func (t Tile) GlobalToLocal(x, y float64) (float64, float64) {
	return x - float64(t.X1), y - float64(t.Y1)
}

// TranslateToGlobal shifts a tile-local polygon into image coordinates.
func (t Tile) TranslateToGlobal(p geometry.Polygon) geometry.Polygon {
	return p.Translate(float64(t.X1), float64(t.Y1))
}

// Normalize maps pixel coordinates into [0,1] relative to a w x h region.
// Clamping happens after the division so that border points land exactly
// on 0 or 1 instead of drifting outside the range.
func Normalize(x, y float64, w, h int) (float64, float64) {
	return clamp01(x / float64(w)), clamp01(y / float64(h))
}

// Denormalize maps normalized [0,1] coordinates back to pixels in a
// w x h region, clamped to the region.
func Denormalize(nx, ny float64, w, h int) (float64, float64) {
	return clamp(nx*float64(w), 0, float64(w)), clamp(ny*float64(h), 0, float64(h))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
