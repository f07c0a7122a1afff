package internal

import "math"

// Line intersection as a closed tagged variant. The outcome of intersecting
// two lines is genuinely four-way, and encoding the degenerate outcomes as
// sentinel points or NaN coordinates is how geometry bugs are born, so each
// outcome is its own type behind a sealed interface. Consumers type-switch
// over the variants and treat an unknown one as fatal, which makes a newly
// added variant loud everywhere it matters.

type IntersectionResult interface {
	// This is a dummy method that ensures only the types enumerated here can
	// be an IntersectionResult. It is unused, but it is a hint to the type
	// system that prevents a foreign type from sneaking into the variant set.
	intersectionResultTypeHint()
}

// The lines cross at a single point.
type IntersectionPoint struct {
	P Point
}

// The lines are parallel and distinct.
type IntersectionParallel struct{}

// The lines are parallel and lie on top of each other.
type IntersectionCoincident struct{}

// No intersection could be computed. Unreachable for two well-formed
// non-parallel 2D lines; it only arises from numerically degenerate input.
type IntersectionNone struct{}

// IntersectionResult types enumerated here with type hint
func (IntersectionPoint) intersectionResultTypeHint()      {}
func (IntersectionParallel) intersectionResultTypeHint()   {}
func (IntersectionCoincident) intersectionResultTypeHint() {}
func (IntersectionNone) intersectionResultTypeHint()       {}

// Intersect the infinite lines through p1 along d1 and through p2 along d2.
func IntersectLines(p1 Point, d1 UnitVector, p2 Point, d2 UnitVector) IntersectionResult {
	cross := d1.Cross(d2)
	if NegligibleLength(cross) {
		// Parallel directions. Coincident iff p2 sits on line 1.
		if NegligibleLength(p1.To(p2).Cross(d1.Vec())) {
			return IntersectionCoincident{}
		}
		return IntersectionParallel{}
	}
	t := p1.To(p2).Cross(d2.Vec()) / cross
	p := p1.Add(d1.Scale(t))
	if !finitePoint(p) {
		return IntersectionNone{}
	}
	return IntersectionPoint{p}
}

// A query rather than a failure, unlike checkFinite: the caller decides what a
// non-finite intersection means.
func finitePoint(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
