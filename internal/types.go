package internal

// All geometry here lives in screen space: X grows to the right and Y grows
// downward. Polygons wind clockwise on screen, which is counterclockwise in
// the Cartesian plane.

type Vec2 struct {
	X float64
	Y float64
}

// Points and vectors are the same thing. The alias only documents intent.
type Point = Vec2

// An oriented segment from Start to End. Depending on context it is also the
// infinite line through both points.
type Line struct {
	Start Point
	End   Point
}

// X and Y refer to the center of the rectangle. Angle is in degrees.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Angle  float64
}

// A rectangle materialized as four vertices: top left, top right, bottom
// right, bottom left.
type Quad [4]Point

// A polygon whose vertex count is only known at runtime. Clipping produces
// these.
type Polygon struct {
	Points []Point
}
