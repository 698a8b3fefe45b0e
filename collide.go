// Overlap, containment and clipping for oriented rectangles and simple
// polygons in screen space (Y grows downward).
//
// All functions are pure and safe for concurrent use. Degenerate input, such
// as a rectangle with zero width, is reported as an error by the functions in
// this package. The internal package panics instead.
package collide

import "github.com/osuushi/collide/internal"

type Vec2 = internal.Vec2
type Point = internal.Point
type Line = internal.Line
type Rectangle = internal.Rectangle
type Quad = internal.Quad
type Polygon = internal.Polygon
type Result[T any] = internal.Result[T]

// Do the two rectangles overlap? Touching counts.
func RectanglesOverlap(r0, r1 Rectangle) (overlapping bool, err error) {
	defer recoverInto(&err)
	return internal.RectanglesOverlap(r0, r1), nil
}

// The part of target that lies inside clipper. The polygon is empty when they
// don't overlap.
func ClipRectangle(target, clipper Rectangle) (result Polygon, err error) {
	defer recoverInto(&err)
	return internal.ClipRectangle(target, clipper), nil
}

// Is the rectangle wholly inside the polygon? The polygon may wind either way.
func RectangleWithinPolygon(r Rectangle, poly Polygon) (within bool, err error) {
	defer recoverInto(&err)
	return internal.RectangleWithinPolygon(r, clockwise(poly)), nil
}

func RectangleIntersectsPolygon(r Rectangle, poly Polygon) (intersects bool, err error) {
	defer recoverInto(&err)
	return internal.RectangleIntersectsPolygon(r, poly), nil
}

func Area(poly Polygon) float64 {
	return poly.Area()
}

func Centroid(poly Polygon) (centroid Point, err error) {
	defer recoverInto(&err)
	return poly.Centroid(), nil
}

func ContainsPoint(poly Polygon, p Point) bool {
	return poly.ContainsPoint(p)
}

// Where two segments cross, if they do.
func IntersectSegments(a, b Line) Result[Point] {
	return internal.IntersectSegments(a, b)
}

func clockwise(poly Polygon) Polygon {
	if !poly.IsClockwise() {
		return poly.Reverse()
	}
	return poly
}

func recoverInto(err *error) {
	recoveredErr := internal.HandleGeometryPanicRecover(recover())
	if recoveredErr != nil {
		*err = recoveredErr
	}
}
