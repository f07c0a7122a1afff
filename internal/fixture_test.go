package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs vertex runs. This is not a
// full (or even correct) svg parser. It parses the SVG, finds whatever the
// first polygon or polyline is, and converts that into points. If anything
// goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.
// Polygon fixtures are normalized to counterclockwise winding.

//go:embed fixtures
var fixtures embed.FS

// Returns the vertex run and whether the fixture was a polygon (closed) or a
// polyline (open).
func LoadFixture(name string) ([]Point, bool) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	closed := true
	elements := rootEl.FindAll("polygon")
	if len(elements) == 0 {
		closed = false
		elements = rootEl.FindAll("polyline")
	}
	if len(elements) == 0 {
		log.Fatalf("No polygons or polylines found in fixture %q", name)
	}
	if len(elements) > 1 {
		log.Fatalf("More than one shape found in fixture %q", name)
	}

	pointString := elements[0].Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{x, y})
	}

	// Normalize polygons to CCW so tests can assume consistent winding
	if closed && shoelace(points) < 0 {
		points = reversePoints(points)
	}
	return points, closed
}

func shoelace(points []Point) float64 {
	sum := 0.0
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func reversePoints(points []Point) []Point {
	result := make([]Point, 0, len(points))
	for i := len(points) - 1; i >= 0; i-- {
		result = append(result, points[i])
	}
	return result
}
