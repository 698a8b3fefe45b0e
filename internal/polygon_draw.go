package internal

import (
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the shapes so edges on the bounds stay visible
const drawPadding = 20

// Fill colors, cycled through by polygon index
var drawPalette = [][3]float64{
	{0.3, 0.2, 1},
	{1, 1, 0},
	{0, 0.8, 0.4},
	{1, 0.3, 0.3},
}

// Draw the polygons into a new image framed to their bounds. Geometry is in
// screen space already, so unlike a Cartesian plot, there is no flip.
func Render(scale float64, polygons ...Polygon) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polygons {
		for _, p := range poly.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) { // Nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i, poly := range polygons {
		if len(poly.Points) == 0 {
			continue
		}
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		color := drawPalette[i%len(drawPalette)]
		c.SetRGBA(color[0], color[1], color[2], 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}
	return c
}

// Render to a PNG file.
func RenderToFile(path string, scale float64, polygons ...Polygon) error {
	return Render(scale, polygons...).SavePNG(path)
}

// Helper to draw and print polygons in the terminal (iTerm only) for debugging.
func dbgDraw(scale float64, polygons ...Polygon) {
	path := filepath.Join(os.TempDir(), "collide.png")
	if err := RenderToFile(path, scale, polygons...); err != nil {
		return
	}
	imgcat.CatFile(path, os.Stdout)
}
