package internal

import "math"

// The line as a free vector from Start to End.
func (l Line) Vector() Vec2 {
	return l.End.Sub(l.Start)
}

func (l Line) Length() float64 {
	return Distance(l.Start, l.End)
}

func (l Line) Direction() Vec2 {
	return l.Vector().Unit()
}

// Normal on the outside of the line, given clockwise (screen space) winding.
func (l Line) Normal() Vec2 {
	return l.Direction().Perp()
}

// Signed distance from point to the infinite line through l. Points on the
// normal's side are positive, which for a clockwise polygon edge means
// outside the polygon.
func SignedDistanceToInfiniteLine(point Point, l Line) float64 {
	return Round(Dot(l.Normal(), point.Sub(l.End)), DistanceDecPlaces)
}

// The longest line. Ties go to the earliest line.
func LongestOf(lines ...Line) Line {
	if len(lines) == 0 {
		fatalf("LongestOf no lines")
	}
	longest := lines[0]
	for _, line := range lines[1:] {
		if Greater(line.Length(), longest.Length()) {
			longest = line
		}
	}
	return longest
}

// Longest of the six segments connecting any two of four collinear points.
// Two intervals on the same axis are merged this way, both when finding a
// rectangle's shadow and when finding the span of two shadows.
func longestSpan(a, b, c, d Point) Line {
	return LongestOf(
		Line{a, b},
		Line{a, c},
		Line{a, d},
		Line{b, c},
		Line{b, d},
		Line{c, d},
	)
}

// Where the infinite lines through a and b meet. Parallel lines fail, and so
// do coincident lines, which meet everywhere.
func IntersectInfiniteLines(a, b Line) Result[Point] {
	r := a.Vector()
	s := b.Vector()

	// Dotting with the perpendicular is the 2D cross product r x s
	denominator := Dot(r, s.Perp())
	if Equal(denominator, 0) {
		return Fail[Point]()
	}

	t := Dot(b.Start.Sub(a.Start), s.Perp()) / denominator
	return Success(a.Start.Add(r.Scale(t)))
}

// The intersection of a segment with the infinite line through infLine.
// The solved point is always collinear with the segment, so checking the
// segment's bounding box is enough to know it lies on the segment.
func IntersectSegmentWithInfiniteLine(segment, infLine Line) Result[Point] {
	result := IntersectInfiniteLines(segment, infLine)
	if !result.Ok() || !segment.boundsContain(result.Value) {
		return Fail[Point]()
	}
	return result
}

func IntersectSegments(a, b Line) Result[Point] {
	result := IntersectInfiniteLines(a, b)
	if !result.Ok() || !a.boundsContain(result.Value) || !b.boundsContain(result.Value) {
		return Fail[Point]()
	}
	return result
}

func SegmentsIntersect(a, b Line) bool {
	return IntersectSegments(a, b).Ok()
}

// Inclusive bounding box test, with tolerance on both axes.
func (l Line) boundsContain(p Point) bool {
	minX, maxX := math.Min(l.Start.X, l.End.X), math.Max(l.Start.X, l.End.X)
	minY, maxY := math.Min(l.Start.Y, l.End.Y), math.Max(l.Start.Y, l.End.Y)
	return GreaterOrEqual(p.X, minX) && LessOrEqual(p.X, maxX) &&
		GreaterOrEqual(p.Y, minY) && LessOrEqual(p.Y, maxY)
}
