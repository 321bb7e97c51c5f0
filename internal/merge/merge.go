// Package merge collapses duplicate detections produced where tiles
// overlap, using greedy non-maximum suppression over a spatial index.
package merge

import (
	"sort"

	flatbush "github.com/bmharper/flatbush-go"

	"github.com/AybarsKansu/image-labeling/internal/annotation"
)

// Options controls duplicate suppression.
type Options struct {
	// MinOverlap is the bounding-box overlap at or above which two
	// detections are considered the same object. Overlap is measured
	// as intersection over the smaller box: a detection clipped at a
	// tile edge is a piece of the full object, so plain IoU against
	// the complete detection would read deceptively low.
	MinOverlap float64
	// MaxDetections caps the result, keeping the most confident.
	// Zero means no cap.
	MaxDetections int
	// ClassAgnostic suppresses across class boundaries too.
	ClassAgnostic bool
}

// DefaultOptions returns the merge defaults.
func DefaultOptions() Options {
	return Options{MinOverlap: 0.35}
}

// Merge suppresses duplicates among detections in global image
// coordinates. The most confident detection of every overlapping group
// survives unchanged; nothing is averaged or unioned, so every returned
// detection is one the detector actually produced. Survivors come back
// in descending confidence order. Merging is idempotent: running it on
// its own output returns the same set.
func Merge(dets []annotation.Detection, opts Options) []annotation.Detection {
	order := make([]int, len(dets))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return dets[order[a]].Confidence > dets[order[b]].Confidence
	})
	return suppress(dets, order, opts)
}

// Dedupe is Merge without the confidence ordering: input order decides
// which of two duplicates survives. Used when combining label records,
// which carry no confidence.
func Dedupe(dets []annotation.Detection, opts Options) []annotation.Detection {
	order := make([]int, len(dets))
	for i := range order {
		order[i] = i
	}
	return suppress(dets, order, opts)
}

// suppress walks detections in the given priority order, consuming every
// lower-priority detection that overlaps a survivor.
func suppress(dets []annotation.Detection, order []int, opts Options) []annotation.Detection {
	fb := flatbush.NewFlatbush64()
	fb.Reserve(len(dets))
	for _, d := range dets {
		b := d.BoundingBox()
		fb.Add(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
	}
	fb.Finish()

	consumed := make([]bool, len(dets))
	out := make([]annotation.Detection, 0, len(dets))
	nearby := []int{}
	for _, i := range order {
		if consumed[i] {
			continue
		}
		consumed[i] = true
		out = append(out, dets[i])
		if opts.MaxDetections > 0 && len(out) >= opts.MaxDetections {
			break
		}

		b := dets[i].BoundingBox()
		nearby = fb.SearchFast(b.X, b.Y, b.X+b.Width, b.Y+b.Height, nearby)
		for _, j := range nearby {
			if consumed[j] {
				continue
			}
			if !opts.ClassAgnostic && dets[i].ClassID != dets[j].ClassID {
				continue
			}
			if b.OverlapRatio(dets[j].BoundingBox()) >= opts.MinOverlap {
				consumed[j] = true
			}
		}
	}
	return out
}
