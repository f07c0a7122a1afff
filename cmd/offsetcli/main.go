package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/offset"
	"github.com/osuushi/offset/dbg"
	"github.com/osuushi/offset/internal"
)

// Demo of offsetting by reading polylines from stdin and rendering the input
// together with its offset to a PNG. Input should be newline separated points
// in the form "x y", with each polyline separated by an extra newline.
//
// Closed polylines should be simple. Nothing about that is validated; garbage
// in, garbage out.

var (
	distance = kingpin.Flag("distance", "Signed offset distance. Positive offsets a loop outward.").
			Required().Float64()
	closed = kingpin.Flag("closed", "Treat each input polyline as a closed loop.").Bool()
	uturn  = kingpin.Flag("uturn", "U-turn joint policy.").
		Default("chamfer").Enum("fail", "chamfer", "skip", "threshold")
	parallel = kingpin.Flag("parallel", "Near-parallel joint policy.").
			Default("skip").Enum("fail", "skip", "proportional", "project")
	minSegment = kingpin.Flag("min-segment", "Minimum segment length kept after filtering.").
			Default("0.001").Float64()
	snap = kingpin.Flag("snap", "Vertex snap tolerance.").
		Default("0.0001").Float64()
	scale = kingpin.Flag("scale", "Pixels per input unit in the rendering.").
		Default("10").Float64()
	out = kingpin.Flag("out", "Output PNG path.").Default("offset.png").String()
)

func main() {
	kingpin.Parse()

	opts := offset.DefaultOptions()
	opts.UTurn = parseUTurn(*uturn)
	opts.Parallel = parseParallel(*parallel)
	opts.MinSegmentLength = *minSegment
	opts.SnapTolerance = *snap

	pointRuns := readPointRuns(os.Stdin)
	if len(pointRuns) == 0 {
		fmt.Fprintln(os.Stderr, aurora.Red("no input polylines"))
		os.Exit(1)
	}
	fmt.Printf("Read %d polylines\n", len(pointRuns))

	var rendered []offset.Polyline
	failures := 0
	for i, points := range pointRuns {
		name := dbg.Name(&pointRuns[i])
		pl, err := offset.Build(points, opts.MinSegmentLength, opts.SnapTolerance, *closed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", aurora.Red("build failed"), name, err)
			failures++
			continue
		}
		result, err := offset.Offset(pl, *distance, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", aurora.Red("offset failed"), name, err)
			failures++
			continue
		}
		fmt.Printf("%s %s: %d -> %d vertices\n", aurora.Green("offset"), name, pl.Len(), result.Len())
		rendered = append(rendered, pl, result)
	}

	if len(rendered) > 0 {
		if err := internal.RenderPNG(rendered, *scale, *out); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", aurora.Red("render failed"), err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *out)
	}
	if failures > 0 {
		os.Exit(1)
	}
}

func parseUTurn(s string) offset.UTurnBehavior {
	switch s {
	case "fail":
		return offset.UTurnFail
	case "chamfer":
		return offset.UTurnChamfer
	case "skip":
		return offset.UTurnSkip
	case "threshold":
		return offset.UTurnThreshold
	}
	// Unreachable: kingpin's Enum already rejected anything else.
	panic("unknown uturn policy: " + s)
}

func parseParallel(s string) offset.ParallelHandling {
	switch s {
	case "fail":
		return offset.ParallelFail
	case "skip":
		return offset.ParallelSkip
	case "proportional":
		return offset.ParallelProportional
	case "project":
		return offset.ParallelProject
	}
	panic("unknown parallel policy: " + s)
}

func readPointRuns(in *os.File) [][]offset.Point {
	runs := [][]offset.Point{}
	scanner := bufio.NewScanner(in)
	points := []offset.Point{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// An empty line ends the current polyline, if we collected any points
		if line == "" {
			if len(points) > 0 {
				runs = append(runs, points)
				points = []offset.Point{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", aurora.Red("bad input line"), err)
			os.Exit(1)
		}
		points = append(points, point)
	}

	// Handle trailing polyline if any
	if len(points) > 0 {
		runs = append(runs, points)
	}
	return runs
}

func parsePoint(line string) (offset.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return offset.Point{}, fmt.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return offset.Point{}, fmt.Errorf("invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return offset.Point{}, fmt.Errorf("invalid y value %q: %v", parts[1], err)
	}
	return offset.Point{X: x, Y: y}, nil
}
