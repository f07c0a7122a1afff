package internal

// The offset engine. Each edge is translated sideways along its own normal,
// and the interesting work is deciding what happens at each joint, where the
// two translated edges no longer meet. Well-behaved joints get the
// intersection of the two offset lines; everything else is dispatched through
// the caller's degenerate-joint policies.

// What to do at a joint whose edges nearly reverse direction. At such a joint
// the offset lines are close to parallel, so there is no usable intersection
// and somebody has to decide what the corner becomes.
type UTurnBehavior int

const (
	// Refuse the offset with a degenerate joint failure.
	UTurnFail UTurnBehavior = iota
	// Bridge the two offset edge endpoints with a straight chamfer segment.
	UTurnChamfer
	// Drop the joint vertex and connect the surviving edges directly.
	UTurnSkip
	// Resolve as a normal intersection joint while the turn is shallower than
	// Options.UTurnThresholdCos, chamfer once it is sharper.
	UTurnThreshold
)

func (b UTurnBehavior) String() string {
	switch b {
	case UTurnFail:
		return "fail"
	case UTurnChamfer:
		return "chamfer"
	case UTurnSkip:
		return "skip"
	case UTurnThreshold:
		return "threshold"
	}
	fatalf("unknown UTurnBehavior %d", int(b))
	return ""
}

// What to do at a joint whose adjacent edges are nearly parallel without
// reversing. The offset lines run side by side, so their intersection is
// numerically meaningless even when it exists.
type ParallelHandling int

const (
	// Refuse the offset with a degenerate joint failure.
	ParallelFail ParallelHandling = iota
	// Drop the joint vertex.
	ParallelSkip
	// Place the joint at a blend of the two offset endpoints, weighted by the
	// adjacent edge lengths.
	ParallelProportional
	// Project the incoming offset endpoint onto the outgoing offset line.
	ParallelProject
)

func (h ParallelHandling) String() string {
	switch h {
	case ParallelFail:
		return "fail"
	case ParallelSkip:
		return "skip"
	case ParallelProportional:
		return "proportional"
	case ParallelProject:
		return "project"
	}
	fatalf("unknown ParallelHandling %d", int(h))
	return ""
}

type Options struct {
	UTurn    UTurnBehavior
	Parallel ParallelHandling

	// Cosine of the turn angle at which UTurnThreshold switches from a normal
	// intersection joint to a chamfer. Only consulted for UTurnThreshold.
	UTurnThresholdCos float64

	// Construction filtering applied to the result (and to zero-distance
	// passthrough).
	MinSegmentLength float64
	SnapTolerance    float64
}

func DefaultOptions() Options {
	return Options{
		UTurn:             UTurnChamfer,
		Parallel:          ParallelSkip,
		UTurnThresholdCos: -0.984807753012208, // cos(170°)
		MinSegmentLength:  1e-3,
		SnapTolerance:     1e-4,
	}
}

// An edge together with its translated copy.
type offsetEdge struct {
	dir UnitVector
	off Segment
}

// Offset a polyline sideways by the signed distance. For a loop, positive
// distance offsets outward regardless of winding. For an open polyline,
// positive distance offsets toward the clockwise perpendicular of the
// direction of travel.
//
// The input must have at least one segment. The result is re-run through
// construction filtering, so joints that produce near-duplicate vertices
// collapse back out.
func OffsetPolyline(pl Polyline, distance float64, opts Options) Polyline {
	checkFinite("OffsetPolyline", distance)
	if opts.MinSegmentLength <= 0 || opts.SnapTolerance <= 0 {
		fatalf("OffsetPolyline: tolerances must be positive, got minSegmentLength=%v snapTolerance=%v",
			opts.MinSegmentLength, opts.SnapTolerance)
	}
	if pl.SegmentCount() == 0 {
		fatalf("OffsetPolyline: polyline with %d vertices has nothing to offset", pl.Len())
	}

	// Zero offset is a passthrough, but still a filtered one, so that
	// offsetting by zero and rebuilding are the same operation.
	if NegligibleLength(distance) {
		return rebuild(pl.points, pl.closed, opts)
	}

	// Normalize so that positive distance always moves outward on a loop. The
	// clockwise perpendicular points outward for counterclockwise winding and
	// inward for clockwise winding.
	d := distance
	if pl.IsLoop() && pl.IsClockwise() {
		d = -d
	}

	edges := make([]offsetEdge, 0, pl.SegmentCount())
	iter := pl.Segments()
	for seg, ok := iter.Next(); ok; seg, ok = iter.Next() {
		dir := seg.Direction()
		normal := dir.PerpCW().Scale(d)
		edges = append(edges, offsetEdge{
			dir: dir,
			off: Segment{seg.Start.Add(normal), seg.End.Add(normal)},
		})
	}

	var vertices []Point
	if pl.closed {
		for i := range edges {
			prev := edges[CircularIndex(i-1, len(edges))]
			vertices = append(vertices, resolveJoint(prev, edges[i], opts)...)
		}
	} else {
		vertices = append(vertices, edges[0].off.Start)
		for i := 1; i < len(edges); i++ {
			vertices = append(vertices, resolveJoint(edges[i-1], edges[i], opts)...)
		}
		vertices = append(vertices, edges[len(edges)-1].off.End)
	}

	return rebuild(vertices, pl.closed, opts)
}

func rebuild(points []Point, closed bool, opts Options) Polyline {
	if closed {
		return BuildLoop(points, opts.MinSegmentLength, opts.SnapTolerance)
	}
	return Build(points, opts.MinSegmentLength, opts.SnapTolerance, false)
}

// Resolve the joint between two consecutive offset edges into zero, one, or
// two vertices of the result.
func resolveJoint(prev, next offsetEdge, opts Options) []Point {
	cos := prev.dir.Dot(next.dir)
	cross := prev.dir.Cross(next.dir)

	// Collinear, same direction: the two offset endpoints coincide up to
	// rounding, so the joint is trivially the shared endpoint.
	if NegligibleLength(cross) && cos > 0 {
		return []Point{prev.off.End}
	}

	// Near-reversal.
	if cos <= CosUTurn {
		switch opts.UTurn {
		case UTurnFail:
			throwf(ErrDegenerateJoint, "u-turn joint at (%v, %v), cos=%v",
				prev.off.End.X, prev.off.End.Y, cos)
		case UTurnChamfer:
			return chamfer(prev, next)
		case UTurnSkip:
			return nil
		case UTurnThreshold:
			if cos <= opts.UTurnThresholdCos {
				return chamfer(prev, next)
			}
			return intersectJoint(prev, next, opts)
		default:
			fatalf("unhandled UTurnBehavior %d", int(opts.UTurn))
		}
	}

	// Near-parallel without reversing. The intersection exists but sits far
	// away and amplifies every rounding error, so it goes straight to the
	// parallel policy.
	if NearParallelCosine(cos, CosNearCollinear) {
		return parallelJoint(prev, next, opts)
	}

	return intersectJoint(prev, next, opts)
}

// The straight connecting segment between the two offset endpoints. Two
// vertices where a normal joint has one.
func chamfer(prev, next offsetEdge) []Point {
	return []Point{prev.off.End, next.off.Start}
}

func intersectJoint(prev, next offsetEdge, opts Options) []Point {
	result := IntersectLines(prev.off.Start, prev.dir, next.off.Start, next.dir)
	switch r := result.(type) {
	case IntersectionPoint:
		return []Point{r.P}
	case IntersectionParallel, IntersectionCoincident:
		return parallelJoint(prev, next, opts)
	case IntersectionNone:
		throwf(ErrDegenerateJoint, "no intersection for joint at (%v, %v)",
			prev.off.End.X, prev.off.End.Y)
	default:
		fatalf("unhandled intersection variant %T", result)
	}
	return nil
}

func parallelJoint(prev, next offsetEdge, opts Options) []Point {
	switch opts.Parallel {
	case ParallelFail:
		throwf(ErrDegenerateJoint, "near-parallel joint at (%v, %v)",
			prev.off.End.X, prev.off.End.Y)
	case ParallelSkip:
		return nil
	case ParallelProportional:
		lenA := prev.off.Vec().Length()
		lenB := next.off.Vec().Length()
		// Total length can't be negligible: construction filtering never
		// emits two degenerate edges.
		return []Point{Lerp(prev.off.End, next.off.Start, lenB/(lenA+lenB))}
	case ParallelProject:
		return []Point{ProjectOntoLine(prev.off.End, next.off.Start, next.dir)}
	default:
		fatalf("unhandled ParallelHandling %d", int(opts.Parallel))
	}
	return nil
}
