package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into polygons and rectangles. This is not
// a full (or even correct) svg parser. It reads the one <polygon> in the
// document as a screen-clockwise Polygon, and every <rect> with an id as a
// Rectangle. Rotations must be about the rect's center. If anything goes
// wrong, it exits.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixtureRoot(name string) *svgparser.Element {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return rootEl
}

func LoadFixture(name string) Polygon {
	rootEl := loadFixtureRoot(name)

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		points = append(points, Point{
			X: parseFixtureFloat(pointStrings[0]),
			Y: parseFixtureFloat(pointStrings[1]),
		})
	}
	result := Polygon{Points: points}

	// Ensure that the polygon is clockwise on screen
	if !result.IsClockwise() {
		result = result.Reverse()
	}
	return result
}

func LoadRectangleFixtures(name string) map[string]Rectangle {
	rootEl := loadFixtureRoot(name)

	rects := make(map[string]Rectangle)
	for _, rectEl := range rootEl.FindAll("rect") {
		id := rectEl.Attributes["id"]
		if id == "" {
			continue
		}
		width := parseFixtureFloat(rectEl.Attributes["width"])
		height := parseFixtureFloat(rectEl.Attributes["height"])
		rect := Rectangle{
			X:      parseFixtureFloat(rectEl.Attributes["x"]) + width/2,
			Y:      parseFixtureFloat(rectEl.Attributes["y"]) + height/2,
			Width:  width,
			Height: height,
		}

		// SVG rotates clockwise on screen for positive angles, same as we do
		if transform := rectEl.Attributes["transform"]; transform != "" {
			args := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(transform, "rotate("), ")"))
			if len(args) != 3 {
				log.Fatalf("Unsupported transform %q on rect %q", transform, id)
			}
			cx, cy := parseFixtureFloat(args[1]), parseFixtureFloat(args[2])
			if !Equal(cx, rect.X) || !Equal(cy, rect.Y) {
				log.Fatalf("Rect %q must rotate about its center", id)
			}
			rect.Angle = parseFixtureFloat(args[0])
		}
		rects[id] = rect
	}
	return rects
}

func parseFixtureFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid number %q: %v", s, err)
	}
	return f
}

// Some ad hoc fixtures

func Square(centerX, centerY, size float64) Polygon {
	return RotateRectangle(centerX, centerY, size, size, 0).ToPolygon()
}

// A regular polygon, wound clockwise on screen
func RegularPolygon(centerX, centerY, radius float64, n int) Polygon {
	var points []Point
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		})
	}
	return Polygon{points}
}

// A five pointed star. It is concave, which exercises the crossing count.
func SimpleStar(centerX, centerY float64) Polygon {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: centerX + radius*math.Cos(angle), Y: centerY + radius*math.Sin(angle)})
	}
	return Polygon{points}
}
