// Package scene reads the shapes of a collision scene from YAML.
//
//	rectangles:
//	  - name: crate
//	    x: 10
//	    y: 20
//	    width: 8
//	    height: 4
//	    angle: 30
//	polygons:
//	  - name: room
//	    points: [[0, 0], [100, 0], [100, 60], [0, 60]]
//
// Shapes without a name get a readable random one. Polygons are rewound to
// be clockwise on screen, which the containment checks expect.
package scene

import (
	"io"
	"os"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/collide/internal"
)

type Rectangle struct {
	Name string
	internal.Rectangle
}

type Polygon struct {
	Name string
	internal.Polygon
}

type Scene struct {
	Rectangles []Rectangle
	Polygons   []Polygon
}

type rectangleDoc struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Angle  float64 `yaml:"angle"`
}

type polygonDoc struct {
	Name   string      `yaml:"name"`
	Points [][]float64 `yaml:"points"`
}

type sceneDoc struct {
	Rectangles []rectangleDoc `yaml:"rectangles"`
	Polygons   []polygonDoc   `yaml:"polygons"`
}

func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open scene")
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load scene %q", path)
	}
	return s, nil
}

func Decode(r io.Reader) (*Scene, error) {
	var doc sceneDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode scene")
	}

	s := &Scene{}
	names := make(map[string]struct{})
	claim := func(name string) (string, error) {
		if name == "" {
			name = uniqueName(names)
		}
		if _, ok := names[name]; ok {
			return "", errors.Errorf("duplicate shape name %q", name)
		}
		names[name] = struct{}{}
		return name, nil
	}

	for i, rd := range doc.Rectangles {
		name, err := claim(rd.Name)
		if err != nil {
			return nil, err
		}
		if rd.Width <= 0 || rd.Height <= 0 {
			return nil, errors.Errorf("rectangle %d (%s) must have a positive size", i, name)
		}
		s.Rectangles = append(s.Rectangles, Rectangle{
			Name: name,
			Rectangle: internal.Rectangle{
				X:      rd.X,
				Y:      rd.Y,
				Width:  rd.Width,
				Height: rd.Height,
				Angle:  rd.Angle,
			},
		})
	}

	for i, pd := range doc.Polygons {
		name, err := claim(pd.Name)
		if err != nil {
			return nil, err
		}
		if len(pd.Points) < 3 {
			return nil, errors.Errorf("polygon %d (%s) needs at least 3 points, got %d", i, name, len(pd.Points))
		}
		poly := internal.Polygon{Points: make([]internal.Point, len(pd.Points))}
		for j, p := range pd.Points {
			if len(p) != 2 {
				return nil, errors.Errorf("polygon %d (%s) point %d must be [x, y]", i, name, j)
			}
			poly.Points[j] = internal.Point{X: p[0], Y: p[1]}
		}
		if !poly.IsClockwise() {
			poly = poly.Reverse()
		}
		s.Polygons = append(s.Polygons, Polygon{Name: name, Polygon: poly})
	}
	return s, nil
}

func uniqueName(taken map[string]struct{}) string {
	for {
		name := petname.Generate(2, "-")
		if _, ok := taken[name]; !ok {
			return name
		}
	}
}

func (s *Scene) Rectangle(name string) (internal.Rectangle, bool) {
	for _, r := range s.Rectangles {
		if r.Name == name {
			return r.Rectangle, true
		}
	}
	return internal.Rectangle{}, false
}

func (s *Scene) Polygon(name string) (internal.Polygon, bool) {
	for _, p := range s.Polygons {
		if p.Name == name {
			return p.Polygon, true
		}
	}
	return internal.Polygon{}, false
}
