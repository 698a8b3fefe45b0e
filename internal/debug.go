package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

func (p Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (l Line) String() string {
	return fmt.Sprintf("%s→%s", l.Start, l.End)
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly.Points))
	for i, p := range poly.Points {
		parts[i] = p.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}

// Colorized polygon for terminal output. Empty polygons are cyan, polygons with
// no area are red.
func (poly Polygon) DbgString() string {
	s := poly.String()
	switch {
	case len(poly.Points) == 0:
		return aurora.Cyan(s).String()
	case len(poly.Points) < 3 || Equal(poly.Area(), 0):
		return aurora.Red(s).String()
	default:
		return aurora.Green(s).String()
	}
}

func (r Result[T]) String() string {
	if !r.Ok() {
		return "fail"
	}
	return fmt.Sprintf("ok %v", r.Value)
}

func (r Result[T]) DbgString() string {
	if !r.Ok() {
		return aurora.Red(r.String()).String()
	}
	return aurora.Green(r.String()).String()
}
