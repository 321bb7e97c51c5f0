// Package detect runs a detector backend over large images tile by tile
// and merges the per-tile results into one global detection set.
package detect

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/AybarsKansu/image-labeling/internal/annotation"
	"github.com/AybarsKansu/image-labeling/internal/dataset"
	"github.com/AybarsKansu/image-labeling/internal/merge"
	"github.com/AybarsKansu/image-labeling/internal/tiling"
)

// Detector is a detection backend. Detect is handed one image region
// (a tile, or the whole image when no tiling is needed) and returns
// detections in that region's local pixel coordinates.
type Detector interface {
	Detect(ctx context.Context, region image.Image) ([]annotation.RawDetection, error)
}

// Options controls tiled detection.
type Options struct {
	TileSize int
	Overlap  float64
	Workers  int // concurrent tiles; 0 means runtime.NumCPU()
	Merge    merge.Options
}

// DefaultOptions returns the tiled detection defaults.
func DefaultOptions() Options {
	return Options{
		TileSize: 640,
		Overlap:  0.2,
		Merge:    merge.DefaultOptions(),
	}
}

// RunTiled plans tiles over img, runs the detector on every tile
// concurrently, translates each tile's detections into global image
// coordinates, and merges duplicates from tile overlap. A detector
// failure on one tile is reported and that tile skipped; cancellation
// of ctx stops scheduling new tiles and returns the context error.
func RunTiled(ctx context.Context, det Detector, img image.Image, opts Options) ([]annotation.Detection, error) {
	b := img.Bounds()
	tiles := tiling.Plan(b.Dx(), b.Dy(), opts.TileSize, opts.Overlap)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(tiles) {
		workers = len(tiles)
	}

	fmt.Printf("[Detect] %dx%d image, %d tiles, %d workers\n", b.Dx(), b.Dy(), len(tiles), workers)

	jobs := make(chan tiling.Tile)
	results := make(chan []annotation.Detection, len(tiles))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				results <- detectTile(ctx, det, img, t)
			}
		}()
	}

	// Feed tiles until done or cancelled. Tiles already handed to a
	// worker run to completion; cancellation is checked per tile.
feed:
	for _, t := range tiles {
		if t.Degenerate() {
			continue
		}
		select {
		case jobs <- t:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var all []annotation.Detection
	for dets := range results {
		all = append(all, dets...)
	}
	merged := merge.Merge(all, opts.Merge)
	fmt.Printf("[Detect] %d raw detections, %d after merge\n", len(all), len(merged))
	return merged, nil
}

// detectTile runs the detector on one tile and lifts its detections to
// global coordinates.
func detectTile(ctx context.Context, det Detector, img image.Image, t tiling.Tile) []annotation.Detection {
	if ctx.Err() != nil {
		return nil
	}

	region := dataset.CropTile(img, t, 0)
	raws, err := det.Detect(ctx, region)
	if err != nil {
		fmt.Printf("[Detect] tile %d (%d,%d): %v, skipping\n", t.Index, t.X1, t.Y1, err)
		return nil
	}

	out := make([]annotation.Detection, 0, len(raws))
	for _, r := range raws {
		poly := t.TranslateToGlobal(r.Shape.ToPolygon())
		out = append(out, annotation.NewDetection(r.ClassID, poly, r.Confidence, t.Index))
	}
	return out
}
