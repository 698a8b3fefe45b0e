package internal

// Rotate an axis-aligned rectangle about its center. The corners are moved to
// the origin, rotated, and moved back. The result is ordered top left, top
// right, bottom right, bottom left, which winds clockwise on screen.
func RotateRectangle(centerX, centerY, width, height, angle float64) Quad {
	center := Point{centerX, centerY}
	halfWidth := width / 2
	halfHeight := height / 2

	topLeft := Point{centerX - halfWidth, centerY - halfHeight}
	topRight := Point{centerX + halfWidth, centerY - halfHeight}
	bottomLeft := Point{centerX - halfWidth, centerY + halfHeight}
	bottomRight := Point{centerX + halfWidth, centerY + halfHeight}

	rotate := func(corner Point) Point {
		return corner.Sub(center).Rotate(angle).Add(center)
	}

	return Quad{
		rotate(topLeft),
		rotate(topRight),
		rotate(bottomRight),
		rotate(bottomLeft),
	}
}

func (r Rectangle) Quad() Quad {
	return RotateRectangle(r.X, r.Y, r.Width, r.Height, r.Angle)
}

func (r Rectangle) Center() Point {
	return Point{r.X, r.Y}
}

// The rectangle's local X and Y axes, as unit vectors.
func (r Rectangle) Axes() [2]Vec2 {
	return [2]Vec2{
		Vec2{1, 0}.Rotate(r.Angle),
		Vec2{0, 1}.Rotate(r.Angle),
	}
}

// The shadow of the rectangle on axis, as a segment along the axis. The axis
// must not be the zero vector.
func ProjectRectangleOntoAxis(r Rectangle, axis Vec2) Line {
	quad := r.Quad()
	topLeft := quad[0].Project(axis)
	topRight := quad[1].Project(axis)
	bottomRight := quad[2].Project(axis)
	bottomLeft := quad[3].Project(axis)
	return longestSpan(topLeft, topRight, bottomLeft, bottomRight)
}

// The edges of the quad, each running from a vertex to the next.
func (q Quad) Lines() [4]Line {
	var lines [4]Line
	for i := range q {
		lines[i] = Line{q[i], q[(i+1)%len(q)]}
	}
	return lines
}

func (q Quad) ToPolygon() Polygon {
	points := make([]Point, len(q))
	copy(points, q[:])
	return Polygon{Points: points}
}
