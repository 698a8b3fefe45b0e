package internal

import "math"

// Shoelace sum: twice the signed area. Positive for polygons that wind
// clockwise on screen.
func (poly Polygon) doubleSignedArea() float64 {
	var sum float64
	n := len(poly.Points)
	for i, vertex := range poly.Points {
		next := poly.Points[(i+1)%n]
		sum += vertex.X*next.Y - next.X*vertex.Y
	}
	return sum
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.doubleSignedArea()) / 2
}

// Does the polygon wind clockwise on screen (Y down)? Rectangle quads do.
func (poly Polygon) IsClockwise() bool {
	return poly.doubleSignedArea() > 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// The edges of the polygon, each running from a vertex to the next, wrapping
// around at the end.
func (poly Polygon) Lines() []Line {
	lines := make([]Line, len(poly.Points))
	for i, vertex := range poly.Points {
		lines[i] = Line{vertex, poly.Points[(i+1)%len(poly.Points)]}
	}
	return lines
}

// Area-weighted centroid. Clipping does not guarantee a winding direction, so
// the first three vertices decide whether to walk forward or backward. A
// polygon with zero area has no weighted centroid; the mean of its vertices is
// returned instead.
func (poly Polygon) Centroid() Point {
	n := len(poly.Points)
	if n < 3 {
		fatalf("centroid needs at least 3 vertices, got %d", n)
	}

	step := 1
	start := 0
	if Det3x3(poly.Points[0], poly.Points[1], poly.Points[2]) < 0 {
		step = -1
		start = n - 1
	}

	var area, x, y float64
	for k, i := 0, start; k < n; k, i = k+1, i+step {
		current := poly.Points[i]
		next := poly.Points[CircularIndex(i+step, n)]
		cross := current.X*next.Y - next.X*current.Y
		area += cross
		x += (current.X + next.X) * cross
		y += (current.Y + next.Y) * cross
	}
	area /= 2

	if Equal(area, 0) {
		var sum Vec2
		for _, vertex := range poly.Points {
			sum = sum.Add(vertex)
		}
		return sum.Div(float64(n))
	}

	return roundVec2(Point{x / (6 * area), y / (6 * area)})
}

// Even-odd ray crossing test. A horizontal ray from the point crosses an edge
// when the edge straddles the point's Y and meets the ray to the right of it.
func (poly Polygon) ContainsPoint(p Point) bool {
	inside := false
	n := len(poly.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly.Points[i], poly.Points[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}

// Is the rectangle entirely inside the polygon? The polygon must wind
// clockwise on screen. A rectangle edge that crosses a boundary edge with an
// endpoint outside of it pokes out of the polygon. If nothing pokes out, the
// rectangle is either wholly inside or wholly outside, and any one of its
// vertices tells which.
func RectangleWithinPolygon(r Rectangle, poly Polygon) bool {
	quad := r.Quad()
	rectLines := quad.Lines()
	for _, boundary := range poly.Lines() {
		for _, edge := range rectLines {
			if !SegmentsIntersect(boundary, edge) {
				continue
			}
			if SignedDistanceToInfiniteLine(edge.Start, boundary) > 0 ||
				SignedDistanceToInfiniteLine(edge.End, boundary) > 0 {
				return false
			}
		}
	}
	return poly.ContainsPoint(quad[0])
}

// Does the rectangle touch the polygon? Any edge crossing settles it.
// Otherwise the rectangle is checked for lying wholly inside the polygon.
func RectangleIntersectsPolygon(r Rectangle, poly Polygon) bool {
	quad := r.Quad()
	rectLines := quad.Lines()
	for _, boundary := range poly.Lines() {
		for _, edge := range rectLines {
			if SegmentsIntersect(boundary, edge) {
				return true
			}
		}
	}
	return poly.ContainsPoint(quad[0])
}
