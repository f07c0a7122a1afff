package internal

// The polyline model. A Polyline is an ordered run of vertices, open or
// closed; a closed polyline with at least three distinct vertices is a loop.
// Construction is the only place vertices enter the system, and it scrubs the
// input: consecutive near-duplicates are snapped together, hairline segments
// are absorbed, and redundant collinear vertices are dropped. Everything
// downstream gets to assume none of those exist.

type Segment struct {
	Start, End Point
}

func (s Segment) Vec() Vector {
	return s.Start.To(s.End)
}

func (s Segment) LengthSq() float64 {
	return s.Vec().LengthSq()
}

// A segment too short to carry a direction.
func (s Segment) Degenerate() bool {
	return NegligibleLengthSq(s.LengthSq())
}

// The unit direction from Start to End. Fails on a degenerate segment, which
// construction filtering should have made impossible.
func (s Segment) Direction() UnitVector {
	return s.Vec().Normalize()
}

type Polyline struct {
	points []Point
	closed bool
}

// Scrub a vertex run into a Polyline. snapTolerance merges consecutive
// near-duplicate vertices; minSegmentLength is the shortest edge that
// survives, with shorter edges absorbed into their neighbors. Both must be
// positive. snapTolerance < minSegmentLength is the sane configuration but is
// not enforced.
func Build(points []Point, minSegmentLength, snapTolerance float64, closed bool) Polyline {
	checkFinite("Build", minSegmentLength, snapTolerance)
	if minSegmentLength <= 0 || snapTolerance <= 0 {
		fatalf("Build: tolerances must be positive, got minSegmentLength=%v snapTolerance=%v",
			minSegmentLength, snapTolerance)
	}
	for _, p := range points {
		checkFinite("Build", p.X, p.Y)
	}

	scrubbed := snapVertices(points, snapTolerance, closed)
	scrubbed = absorbShortSegments(scrubbed, minSegmentLength, closed)
	scrubbed = dropCollinearVertices(scrubbed, closed)
	return Polyline{scrubbed, closed}
}

// Build a closed Polyline and require it to still be a loop afterward.
func BuildLoop(points []Point, minSegmentLength, snapTolerance float64) Polyline {
	loop := Build(points, minSegmentLength, snapTolerance, true)
	if len(loop.points) < 3 {
		throwf(ErrDegenerateResult, "BuildLoop: %d vertices survive filtering, need 3", len(loop.points))
	}
	return loop
}

// Merge runs of vertices that sit within snapTolerance of each other. For a
// closed run, the wrap-around pair (last, first) merges too.
func snapVertices(points []Point, snapTolerance float64, closed bool) []Point {
	if len(points) == 0 {
		return nil
	}
	snapSq := snapTolerance * snapTolerance
	result := make([]Point, 0, len(points))
	result = append(result, points[0])
	for _, p := range points[1:] {
		if DistanceSq(result[len(result)-1], p) < snapSq {
			continue
		}
		result = append(result, p)
	}
	// An explicitly repeated closing vertex is the same wrap-around duplicate.
	if closed && len(result) > 1 && DistanceSq(result[len(result)-1], result[0]) < snapSq {
		result = result[:len(result)-1]
	}
	return result
}

// Remove edges shorter than minSegmentLength by merging their endpoints. The
// endpoints of an open run are anchored: a short edge at either end collapses
// onto the end vertex, so the run's extent never shrinks. Interior short edges
// collapse to their midpoint, which keeps the shape drift within half the
// minimum segment length.
func absorbShortSegments(points []Point, minSegmentLength float64, closed bool) []Point {
	minSq := minSegmentLength * minSegmentLength
	for {
		if len(points) < 2 {
			return points
		}
		i, n := shortestEdge(points, closed)
		if i < 0 || n >= minSq {
			return points
		}
		j := CircularIndex(i+1, len(points))
		var merged Point
		switch {
		case !closed && i == 0:
			merged = points[0]
		case !closed && j == len(points)-1:
			merged = points[j]
		default:
			merged = Midpoint(points[i], points[j])
		}
		// Replace the pair with the merged vertex.
		if j == 0 { // wrap-around edge of a closed run
			points = append([]Point{merged}, points[1:i]...)
		} else {
			points = append(points[:i], append([]Point{merged}, points[j+1:]...)...)
		}
	}
}

// Index and squared length of the shortest edge, or (-1, 0) when there are no
// edges.
func shortestEdge(points []Point, closed bool) (int, float64) {
	edgeCount := len(points) - 1
	if closed {
		edgeCount = len(points)
	}
	if edgeCount < 1 {
		return -1, 0
	}
	best := -1
	bestSq := 0.0
	for i := 0; i < edgeCount; i++ {
		d := DistanceSq(points[i], points[CircularIndex(i+1, len(points))])
		if best < 0 || d < bestSq {
			best = i
			bestSq = d
		}
	}
	return best, bestSq
}

// Drop interior vertices whose incoming and outgoing edges are collinear and
// same-direction. Such a vertex contributes nothing to the shape; three
// collinear points are the same polyline as two.
func dropCollinearVertices(points []Point, closed bool) []Point {
	if len(points) < 3 {
		return points
	}
	result := make([]Point, 0, len(points))
	for i, p := range points {
		if !closed && (i == 0 || i == len(points)-1) {
			result = append(result, p)
			continue
		}
		in := points[CircularIndex(i-1, len(points))].To(p)
		out := p.To(points[CircularIndex(i+1, len(points))])
		// Unit directions, so the cross product is the sine of the turn.
		sin := in.Normalize().Cross(out.Normalize())
		if NegligibleLength(sin) && in.Dot(out) > 0 {
			continue
		}
		result = append(result, p)
	}
	return result
}

func (pl Polyline) Len() int {
	return len(pl.points)
}

func (pl Polyline) Closed() bool {
	return pl.closed
}

// Whether this closed polyline qualifies as a loop.
func (pl Polyline) IsLoop() bool {
	return pl.closed && len(pl.points) >= 3
}

func (pl Polyline) Vertex(i int) Point {
	return pl.points[CircularIndex(i, len(pl.points))]
}

// A defensive copy of the vertex slice, so callers can't reach the internal
// storage.
func (pl Polyline) Points() []Point {
	result := make([]Point, len(pl.points))
	copy(result, pl.points)
	return result
}

func (pl Polyline) SegmentCount() int {
	if len(pl.points) < 2 {
		return 0
	}
	if pl.closed {
		return len(pl.points)
	}
	return len(pl.points) - 1
}

// Lazy iteration over the polyline's edges. Each call returns a fresh
// iterator, so iteration is restartable.
func (pl Polyline) Segments() *SegmentIterator {
	return &SegmentIterator{pl: pl}
}

type SegmentIterator struct {
	pl Polyline
	i  int
}

func (it *SegmentIterator) Next() (Segment, bool) {
	if it.i >= it.pl.SegmentCount() {
		return Segment{}, false
	}
	seg := Segment{
		it.pl.points[it.i],
		it.pl.points[CircularIndex(it.i+1, len(it.pl.points))],
	}
	it.i++
	return seg, true
}

// The signed angle at vertex i between the incoming and outgoing edge
// directions, in [-π, π]. Positive turns counterclockwise. For an open
// polyline, only interior vertices have a turn.
func (pl Polyline) TurnAngle(i int) float64 {
	if !pl.closed && (i <= 0 || i >= len(pl.points)-1) {
		fatalf("TurnAngle: vertex %d of an open polyline has no turn", i)
	}
	p := pl.Vertex(i)
	in := pl.Vertex(i - 1).To(p).Normalize()
	out := p.To(pl.Vertex(i + 1)).Normalize()
	return SignedAngle(in, out)
}

// Shoelace area. Positive for counterclockwise winding. Only meaningful on a
// loop.
func (pl Polyline) SignedArea() float64 {
	if !pl.IsLoop() {
		fatalf("SignedArea: requires a loop, got %d vertices, closed=%v", len(pl.points), pl.closed)
	}
	sum := 0.0
	for i, p := range pl.points {
		q := pl.Vertex(i + 1)
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func (pl Polyline) IsClockwise() bool {
	return pl.SignedArea() < 0
}

// Often we want to treat an array as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
