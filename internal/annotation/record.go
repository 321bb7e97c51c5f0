// Package annotation defines the label and detection data model shared by
// the tiling, clipping, and merging engines.
package annotation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AybarsKansu/image-labeling/pkg/geometry"
)

// Entry is a single labeled polygon inside a record: a class id and a
// flat coordinate list [x1, y1, x2, y2, ...]. Whether the coordinates
// are normalized or absolute depends on the record that holds it.
type Entry struct {
	ClassID int       `json:"class_id"`
	Points  []float64 `json:"points"`
}

// Polygon converts the entry's flat coordinate list to a polygon.
func (e Entry) Polygon() geometry.Polygon {
	return FlatToPolygon(e.Points)
}

// LabelRecord is the per-image label record consumed and produced at the
// clipping and merging boundary: image identity, pixel dimensions, and an
// ordered list of labeled polygons in normalized [0,1] coordinates.
type LabelRecord struct {
	ImageName string  `json:"image"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Entries   []Entry `json:"entries"`
}

// LoadRecord loads a label record from a JSON file.
func LoadRecord(path string) (*LabelRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rec LabelRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse label record %s: %w", path, err)
	}
	return &rec, nil
}

// Save writes the record to a JSON file.
func (r *LabelRecord) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FlatToPolygon converts a flat [x1, y1, x2, y2, ...] list to a polygon.
// A trailing unpaired value is ignored.
func FlatToPolygon(coords []float64) geometry.Polygon {
	n := len(coords) / 2
	poly := make(geometry.Polygon, 0, n)
	for i := 0; i+1 < len(coords); i += 2 {
		poly = append(poly, geometry.Point2D{X: coords[i], Y: coords[i+1]})
	}
	return poly
}

// PolygonToFlat converts a polygon to a flat coordinate list.
func PolygonToFlat(p geometry.Polygon) []float64 {
	flat := make([]float64, 0, len(p)*2)
	for _, v := range p {
		flat = append(flat, v.X, v.Y)
	}
	return flat
}
