package offset

import "github.com/osuushi/offset/internal"

// Pass-throughs for the geometric building blocks, for advanced callers that
// want the tolerance kernel or value-type helpers directly. Unlike Build and
// Offset, these don't convert failures: invalid inputs (non-finite
// coordinates, negligible divisors) panic with a GeometryError, which is the
// contract the internal layer lives by.

func Distance(p, q Point) float64            { return internal.Distance(p, q) }
func DistanceSq(p, q Point) float64          { return internal.DistanceSq(p, q) }
func EqualPoints(p, q Point, tol float64) bool { return internal.EqualPoints(p, q, tol) }
func Midpoint(p, q Point) Point              { return internal.Midpoint(p, q) }
func Lerp(p, q Point, t float64) Point       { return internal.Lerp(p, q, t) }
func SignedAngle(a, b UnitVector) float64    { return internal.SignedAngle(a, b) }

func ProjectOntoLine(p Point, origin Point, dir UnitVector) Point {
	return internal.ProjectOntoLine(p, origin, dir)
}

// Intersect the infinite lines through p1 along d1 and through p2 along d2.
// Consumers should type-switch over the Intersection* variants.
func IntersectLines(p1 Point, d1 UnitVector, p2 Point, d2 UnitVector) IntersectionResult {
	return internal.IntersectLines(p1, d1, p2, d2)
}

// The tolerance kernel. All of the package's float classification routes
// through these; callers composing their own geometry on top of the value
// types should do the same rather than inventing epsilons.
func NegligibleLength(x float64) bool  { return internal.NegligibleLength(x) }
func NegligibleLengthSq(x float64) bool { return internal.NegligibleLengthSq(x) }
func NearParallelCosine(cos, thresholdCos float64) bool {
	return internal.NearParallelCosine(cos, thresholdCos)
}
