package internal

// Separating axis test for two oriented rectangles. Rectangles overlap iff
// their shadows overlap on every candidate axis. Touching counts as overlap.

// Do the shadows of the rectangles on axis overlap? The two shadows are merged
// into the longest segment spanning their endpoints. If that span is no longer
// than both shadows laid end to end, they overlap.
func RectanglesOverlapOnAxis(r0, r1 Rectangle, axis Vec2) bool {
	shadow0 := ProjectRectangleOntoAxis(r0, axis)
	shadow1 := ProjectRectangleOntoAxis(r1, axis)
	span := longestSpan(shadow0.Start, shadow0.End, shadow1.Start, shadow1.End)
	return LessOrEqual(span.Length(), shadow0.Length()+shadow1.Length())
}

// All four axes are always tested.
func RectanglesOverlap(r0, r1 Rectangle) bool {
	axes0 := r0.Axes()
	axes1 := r1.Axes()
	overlapping := true
	for _, axis := range []Vec2{axes0[0], axes0[1], axes1[0], axes1[1]} {
		overlapping = RectanglesOverlapOnAxis(r0, r1, axis) && overlapping
	}
	return overlapping
}
