// Package tiling partitions images into overlapping tiles and maps
// coordinates between tile-local, global-pixel, and normalized space.
package tiling

import (
	"github.com/AybarsKansu/image-labeling/pkg/geometry"
)

// MinSide is the minimum tile side length in pixels. Tiles thinner than
// this carry too little context to be worth labeling or detecting on.
const MinSide = 10

// Tile is one rectangular sub-region of an image, in absolute pixel
// coordinates. Tiles are produced in stable row-major order and Index
// matches the position in the planned list.
type Tile struct {
	Index int
	X1    int
	Y1    int
	X2    int
	Y2    int
}

// Width returns the tile width in pixels.
func (t Tile) Width() int { return t.X2 - t.X1 }

// Height returns the tile height in pixels.
func (t Tile) Height() int { return t.Y2 - t.Y1 }

// Degenerate reports whether either tile dimension is below MinSide.
func (t Tile) Degenerate() bool {
	return t.Width() < MinSide || t.Height() < MinSide
}

// Rect returns the tile as a geometry rectangle.
func (t Tile) Rect() geometry.Rect {
	return geometry.RectFromCorners(float64(t.X1), float64(t.Y1), float64(t.X2), float64(t.Y2))
}

// Plan computes the tile rectangles covering an imgW x imgH image with
// square tiles of tileSize pixels and the given overlap ratio in [0,1).
//
// When the whole image fits in one tile, that single tile is the image
// itself. Otherwise every tile is exactly tileSize x tileSize: tiles that
// would run past the right or bottom edge are pulled back inside, which
// increases overlap near the edges instead of producing undersized tiles.
// Identical inputs always produce an identical ordered list.
func Plan(imgW, imgH, tileSize int, overlap float64) []Tile {
	if imgW <= 0 || imgH <= 0 || tileSize <= 0 {
		return nil
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= 1 {
		overlap = 0.99
	}

	if imgW <= tileSize && imgH <= tileSize {
		return []Tile{{Index: 0, X1: 0, Y1: 0, X2: imgW, Y2: imgH}}
	}

	stride := int(float64(tileSize) * (1 - overlap))
	if stride < 1 {
		stride = 1 // a zero stride would never advance
	}

	var tiles []Tile
	for y := 0; ; y += stride {
		y2 := min(y+tileSize, imgH)
		y1 := max(0, y2-tileSize)

		for x := 0; ; x += stride {
			x2 := min(x+tileSize, imgW)
			x1 := max(0, x2-tileSize)

			tiles = append(tiles, Tile{Index: len(tiles), X1: x1, Y1: y1, X2: x2, Y2: y2})
			if x2 >= imgW {
				break
			}
		}
		if y2 >= imgH {
			break
		}
	}
	return tiles
}
