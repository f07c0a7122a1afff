package internal

import "math"

type Vector struct {
	X, Y float64
}

func NewVector(x, y float64) Vector {
	checkFinite("NewVector", x, y)
	return Vector{x, y}
}

func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y}
}

func (v Vector) Scale(s float64) Vector {
	checkFinite("Vector.Scale", s)
	return Vector{v.X * s, v.Y * s}
}

// Scalar division. Dividing by a negligible value is an unconditional failure;
// there is no sensible recovery, and letting the infinity propagate would just
// move the explosion somewhere harder to diagnose.
func (v Vector) Div(s float64) Vector {
	if NegligibleLength(s) {
		throwf(ErrDivideByZero, "Vector.Div: divisor %v on (%v, %v)", s, v.X, v.Y)
	}
	return Vector{v.X / s, v.Y / s}
}

func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// The 2D cross product (z component of the 3D cross). Positive when w is
// counterclockwise of v.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Prefer LengthSq wherever a squared comparison will do. Most degeneracy and
// distance checks never need the sqrt.
func (v Vector) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Counterclockwise rotation by angle radians.
func (v Vector) Rotate(angle float64) Vector {
	checkFinite("Vector.Rotate", angle)
	sin, cos := math.Sincos(angle)
	return Vector{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Normalize to a UnitVector. Fails when the vector is too short to carry a
// direction; a caller that can tolerate that case must check LengthSq first.
func (v Vector) Normalize() UnitVector {
	lengthSq := v.LengthSq()
	if NegligibleLengthSq(lengthSq) {
		throwf(ErrTooSmall, "Vector.Normalize: (%v, %v)", v.X, v.Y)
	}
	length := math.Sqrt(lengthSq)
	return UnitVector{v.X / length, v.Y / length}
}

// A direction. The unexported fields are the whole point: the only ways to
// obtain one are Vector.Normalize and the transforms below, all of which
// maintain ‖v‖ = 1, so consumers never re-normalize defensively. The
// unchecked unitVector constructor exists for operations that preserve unit
// length exactly and must stay package-private.
type UnitVector struct {
	x, y float64
}

// Unchecked constructor. Callers must guarantee x*x + y*y == 1 up to float
// rounding. Never export this.
func unitVector(x, y float64) UnitVector {
	return UnitVector{x, y}
}

func (u UnitVector) X() float64 { return u.x }
func (u UnitVector) Y() float64 { return u.y }

func (u UnitVector) Vec() Vector {
	return Vector{u.x, u.y}
}

func (u UnitVector) Neg() UnitVector {
	return unitVector(-u.x, -u.y)
}

// Counterclockwise perpendicular.
func (u UnitVector) Perp() UnitVector {
	return unitVector(-u.y, u.x)
}

// Clockwise perpendicular. For a counterclockwise loop this is the outward
// side of an edge.
func (u UnitVector) PerpCW() UnitVector {
	return unitVector(u.y, -u.x)
}

func (u UnitVector) Dot(w UnitVector) float64 {
	return u.x*w.x + u.y*w.y
}

func (u UnitVector) Cross(w UnitVector) float64 {
	return u.x*w.y - u.y*w.x
}

func (u UnitVector) Scale(s float64) Vector {
	return u.Vec().Scale(s)
}

// Rotation preserves length exactly (up to rounding), so the result skips the
// normalization check.
func (u UnitVector) Rotate(angle float64) UnitVector {
	checkFinite("UnitVector.Rotate", angle)
	sin, cos := math.Sincos(angle)
	return unitVector(u.x*cos-u.y*sin, u.x*sin+u.y*cos)
}
