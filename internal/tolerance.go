package internal

import "math"

// Every float comparison in this package routes through the predicates below.
// If we don't account for imprecision, nearly-parallel joints and hairline
// segments produce offset vertices that fly off to absurd distances, so the
// thresholds here are load-bearing for everything downstream.
//
// The specific values are our own choices, not universal constants. They are
// tuned for inputs in roughly unit-to-thousands scale (typical drawing
// coordinates); callers working at wildly different scales should pre-scale
// their input rather than expect these to adapt.

const (
	// Lengths below this are treated as zero.
	LengthTolerance = 1e-6

	// Squared-length counterpart, so degeneracy checks can skip the sqrt.
	LengthSqTolerance = 1e-12
)

// Precomputed cosines for the angle thresholds the offset engine cares about.
// Kept as constants so joint classification never calls into math trig.
const (
	// cos(5°). Two directions with a dot product above this are close enough
	// to collinear that intersecting their offset lines is numerically useless.
	CosNearCollinear = 0.9961946980917455

	// cos(175°). A turn sharper than this is a U-turn.
	CosUTurn = -0.9961946980917455

	// cos(45°) and cos(90°), available for callers building their own
	// classification thresholds.
	Cos45 = 0.7071067811865476
	Cos90 = 0.0
)

// Is a length close enough to zero to call degenerate?
func NegligibleLength(x float64) bool {
	return math.Abs(x) < LengthTolerance
}

// Same check for squared lengths. Use this whenever the caller already has a
// squared magnitude, to avoid the sqrt.
func NegligibleLengthSq(x float64) bool {
	return math.Abs(x) < LengthSqTolerance
}

// Are two directions near-parallel, given the cosine of the angle between them
// and a threshold expressed as a cosine? Near-parallel covers both the near-0°
// and near-180° cases, which is what you want when deciding whether two lines
// have a usable intersection.
func NearParallelCosine(cos, thresholdCos float64) bool {
	return math.Abs(cos) >= thresholdCos
}

// Tolerance based equality at the default length tolerance. Exact float
// equality is never what you want on coordinates.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < LengthTolerance
}

// Equality at a caller-supplied tolerance.
func EqualTol(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}
