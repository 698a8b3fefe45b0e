package internal

// Sutherland-Hodgman clipping of one rectangle by another. The target is
// clipped against each edge of the clipper in turn, and the output of one edge
// is the input of the next. Points with a signed distance <= 0 from a clip
// edge are inside it.
//
// The result is empty when the rectangles do not overlap. It carries no
// guarantee about winding direction.
func ClipRectangle(target, clipper Rectangle) Polygon {
	output := target.Quad().ToPolygon()
	for _, clipEdge := range clipper.Quad().Lines() {
		output = clipByEdge(output, clipEdge)
		if len(output.Points) == 0 {
			break
		}
	}
	return output
}

func clipByEdge(input Polygon, clipEdge Line) Polygon {
	var output Polygon
	n := len(input.Points)
	for i, start := range input.Points {
		end := input.Points[(i+1)%n]
		startInside := SignedDistanceToInfiniteLine(start, clipEdge) <= 0
		endInside := SignedDistanceToInfiniteLine(end, clipEdge) <= 0

		if startInside {
			output.appendVertex(start)
			if !endInside {
				// Leaving: add the crossing
				output.appendCrossing(Line{start, end}, clipEdge)
			}
		} else if endInside {
			// Entering: add the crossing. The end is added on the next step.
			output.appendCrossing(Line{start, end}, clipEdge)
		}
	}
	return output
}

func (poly *Polygon) appendCrossing(edge, clipEdge Line) {
	if crossing, ok := IntersectSegmentWithInfiniteLine(edge, clipEdge).Get(); ok {
		poly.appendVertex(crossing)
	}
}

// Append a vertex unless it repeats the previous one. An edge entering the
// clip region exactly at its end point would otherwise emit that point twice.
func (poly *Polygon) appendVertex(p Point) {
	if last := len(poly.Points) - 1; last >= 0 && poly.Points[last].Equals(p) {
		return
	}
	poly.Points = append(poly.Points, p)
}
