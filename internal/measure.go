package internal

import "math"

// Derived measurements over the value types. These live apart from the core
// structs so the types themselves stay minimal: constructor, arithmetic, and
// nothing else.

func DistanceSq(p, q Point) float64 {
	return p.To(q).LengthSq()
}

func Distance(p, q Point) float64 {
	return math.Sqrt(DistanceSq(p, q))
}

func DistanceSq3(p, q Point3) float64 {
	return p.To(q).LengthSq()
}

// Tolerance-parameterized point equality. This is the only equality the
// package offers on points.
func EqualPoints(p, q Point, tol float64) bool {
	return DistanceSq(p, q) < tol*tol
}

func Midpoint(p, q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Linear interpolation from p to q. t outside [0, 1] extrapolates.
func Lerp(p, q Point, t float64) Point {
	return p.Add(p.To(q).Scale(t))
}

// The projection of p onto the infinite line through origin with direction
// dir.
func ProjectOntoLine(p Point, origin Point, dir UnitVector) Point {
	t := origin.To(p).Dot(dir.Vec())
	return origin.Add(dir.Scale(t))
}

// Signed angle from direction a to direction b, in [-π, π]. Positive is
// counterclockwise.
func SignedAngle(a, b UnitVector) float64 {
	return math.Atan2(a.Cross(b), a.Dot(b))
}
