package annotation

import (
	"github.com/google/uuid"

	"github.com/AybarsKansu/image-labeling/pkg/geometry"
)

// RawDetection is a single detector output in the pixel space of the
// region the detector was run on (tile-local when tiling).
type RawDetection struct {
	Shape      Shape
	ClassID    int
	Confidence float64
}

// Detection is a finished detection in global image pixel space.
// Confidence is zero for polygons derived from training labels rather
// than a detector.
type Detection struct {
	ID         string
	ClassID    int
	Polygon    geometry.Polygon
	Confidence float64
	SourceTile int // -1 when not produced by tiled detection
}

// NewDetection builds a Detection with a fresh identifier.
func NewDetection(classID int, poly geometry.Polygon, confidence float64, sourceTile int) Detection {
	return Detection{
		ID:         uuid.NewString(),
		ClassID:    classID,
		Polygon:    poly,
		Confidence: confidence,
		SourceTile: sourceTile,
	}
}

// BoundingBox returns the detection's axis-aligned bounding box.
func (d Detection) BoundingBox() geometry.Rect {
	return d.Polygon.BoundingBox()
}
