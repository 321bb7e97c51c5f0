package annotation

import (
	"github.com/AybarsKansu/image-labeling/pkg/geometry"
)

// ShapeKind discriminates the geometry a detector can return.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapePolygon
	ShapeOrientedBox
	ShapeKeypoints
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapePolygon:
		return "polygon"
	case ShapeOrientedBox:
		return "oriented-box"
	case ShapeKeypoints:
		return "keypoints"
	default:
		return "unknown"
	}
}

// Shape is a tagged variant over the geometries a detector backend can
// produce. Exactly one representation is meaningful per kind: Box for
// ShapeBox, Points for everything else (polygon ring, the four corners
// of an oriented box, or a keypoint set).
type Shape struct {
	Kind   ShapeKind
	Box    geometry.Rect
	Points geometry.Polygon
}

// BoxShape wraps an axis-aligned box.
func BoxShape(r geometry.Rect) Shape {
	return Shape{Kind: ShapeBox, Box: r}
}

// PolygonShape wraps a polygon ring.
func PolygonShape(p geometry.Polygon) Shape {
	return Shape{Kind: ShapePolygon, Points: p}
}

// OrientedBoxShape wraps the four corners of an oriented box.
func OrientedBoxShape(corners geometry.Polygon) Shape {
	return Shape{Kind: ShapeOrientedBox, Points: corners}
}

// KeypointsShape wraps a keypoint set.
func KeypointsShape(points geometry.Polygon) Shape {
	return Shape{Kind: ShapeKeypoints, Points: points}
}

// ToPolygon converts any shape to a polygon ring. Boxes and keypoint
// sets become their (bounding) rectangle's corners; polygons and
// oriented boxes pass through as rings.
func (s Shape) ToPolygon() geometry.Polygon {
	switch s.Kind {
	case ShapeBox:
		return geometry.Polygon(s.Box.Corners())
	case ShapeKeypoints:
		return geometry.Polygon(geometry.BoundingBox(s.Points).Corners())
	default:
		return s.Points
	}
}
