package internal

import "math"

// Vector arithmetic rounds every result to VectorDecPlaces. Rectangles are
// rotated, projected and clipped in long chains, and without rounding the
// accumulated float noise shows up as spurious intersections and slivers.

func (p Vec2) Add(q Vec2) Vec2 {
	return roundVec2(Vec2{p.X + q.X, p.Y + q.Y})
}

func (p Vec2) Sub(q Vec2) Vec2 {
	return roundVec2(Vec2{p.X - q.X, p.Y - q.Y})
}

func (p Vec2) Scale(a float64) Vec2 {
	return roundVec2(Vec2{p.X * a, p.Y * a})
}

func (p Vec2) Div(a float64) Vec2 {
	return roundVec2(Vec2{p.X / a, p.Y / a})
}

func (p Vec2) Translate(dx, dy float64) Vec2 {
	return p.Add(Vec2{dx, dy})
}

// Tolerance based equality
func (p Vec2) Equals(q Vec2) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func roundVec2(p Vec2) Vec2 {
	return Vec2{Round(p.X, VectorDecPlaces), Round(p.Y, VectorDecPlaces)}
}

func Dot(p, q Vec2) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross is NOT the usual 2D cross product. It reproduces the formula the rest
// of the engine was tuned against: p.X*p.Y - p.Y*q.X. Intersection code does
// not use it; see Dot(r, Perp(s)) in line.go for the real thing.
func Cross(p, q Vec2) float64 {
	return p.X*p.Y - p.Y*q.X
}

// Determinant of the 3x3 matrix with rows (x, y, 1). This is twice the signed
// area of the triangle v0, v1, v2.
func Det3x3(v0, v1, v2 Vec2) float64 {
	return (v1.X*v2.Y + v0.X*v1.Y + v0.Y*v2.X) -
		(v0.Y*v1.X + v1.Y*v2.X + v0.X*v2.Y)
}

func Distance(start, end Point) float64 {
	return math.Sqrt(Pow(end.X-start.X, 2) + Pow(end.Y-start.Y, 2))
}

func (p Vec2) Magnitude() float64 {
	return Distance(Vec2{}, p)
}

// Angle of the vector in degrees, in [0, 360), measured in the Cartesian
// plane. Axis-aligned vectors are handled up front so we never divide by a
// zero X.
func (p Vec2) Angle() float64 {
	switch {
	case Equal(p.X, 0) && Equal(p.Y, 0):
		return 0
	case Equal(p.X, 0):
		if p.Y > 0 {
			return 90
		}
		return 270
	case Equal(p.Y, 0):
		if p.X > 0 {
			return 0
		}
		return 180
	}

	delta := RadiansToDegrees(math.Atan(p.Y / p.X))
	switch {
	case p.X < 0:
		// Quadrants II and III
		return 180 + delta
	case p.Y < 0:
		// Quadrant IV
		return 360 + delta
	default:
		return delta
	}
}

// Rotate by angle degrees using the Cartesian rotation matrix. Since Y grows
// downward on screen, a positive angle turns the vector clockwise there.
func (p Vec2) Rotate(angle float64) Vec2 {
	radians := DegreesToRadians(angle)
	sin, cos := math.Sincos(radians)
	return roundVec2(Vec2{
		p.X*cos - p.Y*sin,
		p.X*sin + p.Y*cos,
	})
}

// Projection of p onto q. q must not be the zero vector.
func (p Vec2) Project(q Vec2) Vec2 {
	magnitude := q.Magnitude()
	if Equal(magnitude, 0) {
		fatalf("cannot project %v onto zero-length axis %v", p, q)
	}
	return q.Scale(Dot(p, q) / Pow(magnitude, 2))
}

// The perpendicular on the outward side of a clockwise (screen space) edge.
// Rotating by -90 turns the vector counterclockwise on screen.
func (p Vec2) Perp() Vec2 {
	return p.Rotate(-90)
}

func (p Vec2) Unit() Vec2 {
	magnitude := p.Magnitude()
	if Equal(magnitude, 0) {
		fatalf("zero-length vector %v has no unit vector", p)
	}
	return p.Div(magnitude)
}

// The vector with the smallest magnitude. Ties go to the earliest vector.
func MinByMagnitude(vectors ...Vec2) Vec2 {
	if len(vectors) == 0 {
		fatalf("MinByMagnitude of no vectors")
	}
	smallest := vectors[0]
	for _, vec := range vectors[1:] {
		if Less(vec.Magnitude(), smallest.Magnitude()) {
			smallest = vec
		}
	}
	return smallest
}

// The vector with the largest magnitude. Ties go to the earliest vector.
func MaxByMagnitude(vectors ...Vec2) Vec2 {
	if len(vectors) == 0 {
		fatalf("MaxByMagnitude of no vectors")
	}
	largest := vectors[0]
	for _, vec := range vectors[1:] {
		if Greater(vec.Magnitude(), largest.Magnitude()) {
			largest = vec
		}
	}
	return largest
}
