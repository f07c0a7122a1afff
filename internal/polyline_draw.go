package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the shapes so outward offsets stay visible
const drawPadding = 20

// Render a set of polylines to a PNG. The first polyline is drawn dim and the
// rest bright, which matches how the CLI uses this: input first, offsets
// after. The y axis is flipped so the origin is at the bottom left, as on
// graph paper.
func RenderPNG(polylines []Polyline, scale float64, path string) error {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, pl := range polylines {
		for i := 0; i < pl.Len(); i++ {
			p := pl.Vertex(i)
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2 / scale)
	for i, pl := range polylines {
		if pl.Len() == 0 {
			continue
		}
		first := pl.Vertex(0)
		c.MoveTo(first.X, first.Y)
		for j := 1; j < pl.Len(); j++ {
			p := pl.Vertex(j)
			c.LineTo(p.X, p.Y)
		}
		if pl.Closed() {
			c.ClosePath()
		}
		if i == 0 {
			c.SetRGB(0, 0.5, 0)
		} else {
			c.SetRGB(0, 1, 1)
		}
		c.Stroke()
	}

	return c.SavePNG(path)
}

// Helper to draw and print polylines in the terminal (iTerm only) for
// debugging.
func dbgDraw(polylines []Polyline, scale float64) {
	if err := RenderPNG(polylines, scale, "/tmp/offset_debug.png"); err != nil {
		return
	}
	imgcat.CatFile("/tmp/offset_debug.png", os.Stdout)
}
