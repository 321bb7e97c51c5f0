// Package evaluate compares a detection set against ground truth labels
// and summarizes detector quality.
package evaluate

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/AybarsKansu/image-labeling/internal/annotation"
)

// DefaultIoUThreshold is the minimum bounding-box overlap for a
// prediction to count as a hit on a ground truth object.
const DefaultIoUThreshold = 0.5

// Match pairs one prediction with one ground truth object.
type Match struct {
	Pred  int
	Truth int
	IoU   float64
}

// Result is the outcome of comparing predictions against ground truth.
// Misclassified matches overlap a truth object well enough but carry
// the wrong class; they are counted separately from clean hits.
type Result struct {
	Matches        []Match
	Misclassified  []Match
	FalsePositives []int
	FalseNegatives []int
}

// Compare greedily matches predictions to ground truth objects by
// descending IoU. Each prediction and each truth object is used at most
// once; leftover predictions are false positives and leftover truth
// objects false negatives.
func Compare(preds, truths []annotation.Detection, iouThreshold float64) Result {
	type pair struct {
		p, t int
		iou  float64
	}
	var pairs []pair
	for p, pred := range preds {
		pb := pred.BoundingBox()
		for t, truth := range truths {
			if iou := pb.IoU(truth.BoundingBox()); iou >= iouThreshold {
				pairs = append(pairs, pair{p, t, iou})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].iou > pairs[j].iou })

	var res Result
	usedPred := make([]bool, len(preds))
	usedTruth := make([]bool, len(truths))
	for _, pr := range pairs {
		if usedPred[pr.p] || usedTruth[pr.t] {
			continue
		}
		usedPred[pr.p] = true
		usedTruth[pr.t] = true
		m := Match{Pred: pr.p, Truth: pr.t, IoU: pr.iou}
		if preds[pr.p].ClassID == truths[pr.t].ClassID {
			res.Matches = append(res.Matches, m)
		} else {
			res.Misclassified = append(res.Misclassified, m)
		}
	}
	for p := range preds {
		if !usedPred[p] {
			res.FalsePositives = append(res.FalsePositives, p)
		}
	}
	for t := range truths {
		if !usedTruth[t] {
			res.FalseNegatives = append(res.FalseNegatives, t)
		}
	}
	return res
}

// Summary condenses a comparison into the usual detector metrics.
type Summary struct {
	TruePositives  int
	Misclassified  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	MeanIoU        float64
	StdIoU         float64
}

// Summarize computes precision, recall, and IoU statistics from a
// comparison result. Misclassified matches count against precision and
// recall; they localized something but labeled it wrongly.
func Summarize(r Result) Summary {
	s := Summary{
		TruePositives:  len(r.Matches),
		Misclassified:  len(r.Misclassified),
		FalsePositives: len(r.FalsePositives),
		FalseNegatives: len(r.FalseNegatives),
	}

	tp := float64(s.TruePositives)
	predTotal := tp + float64(s.Misclassified+s.FalsePositives)
	truthTotal := tp + float64(s.Misclassified+s.FalseNegatives)
	if predTotal > 0 {
		s.Precision = tp / predTotal
	}
	if truthTotal > 0 {
		s.Recall = tp / truthTotal
	}
	if s.Precision+s.Recall > 0 {
		s.F1 = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
	}

	ious := make([]float64, 0, len(r.Matches))
	for _, m := range r.Matches {
		ious = append(ious, m.IoU)
	}
	if len(ious) > 0 {
		s.MeanIoU = stat.Mean(ious, nil)
		s.StdIoU = stat.StdDev(ious, nil)
		if math.IsNaN(s.StdIoU) {
			s.StdIoU = 0
		}
	}
	return s
}
