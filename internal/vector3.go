package internal

import "math"

// The 3D layer mirrors the 2D one. The offset engine itself is strictly
// planar; these types exist for host adapters that live in 3D and project
// into the offset plane and back.

type Vector3 struct {
	X, Y, Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	checkFinite("NewVector3", x, y, z)
	return Vector3{x, y, z}
}

func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	checkFinite("Vector3.Scale", s)
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Div(s float64) Vector3 {
	if NegligibleLength(s) {
		throwf(ErrDivideByZero, "Vector3.Div: divisor %v on (%v, %v, %v)", s, v.X, v.Y, v.Z)
	}
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

func (v Vector3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

func (v Vector3) Normalize() UnitVector3 {
	lengthSq := v.LengthSq()
	if NegligibleLengthSq(lengthSq) {
		throwf(ErrTooSmall, "Vector3.Normalize: (%v, %v, %v)", v.X, v.Y, v.Z)
	}
	length := math.Sqrt(lengthSq)
	return UnitVector3{v.X / length, v.Y / length, v.Z / length}
}

type UnitVector3 struct {
	x, y, z float64
}

func unitVector3(x, y, z float64) UnitVector3 {
	return UnitVector3{x, y, z}
}

func (u UnitVector3) X() float64 { return u.x }
func (u UnitVector3) Y() float64 { return u.y }
func (u UnitVector3) Z() float64 { return u.z }

func (u UnitVector3) Vec() Vector3 {
	return Vector3{u.x, u.y, u.z}
}

func (u UnitVector3) Neg() UnitVector3 {
	return unitVector3(-u.x, -u.y, -u.z)
}

func (u UnitVector3) Dot(w UnitVector3) float64 {
	return u.x*w.x + u.y*w.y + u.z*w.z
}

func (u UnitVector3) Scale(s float64) Vector3 {
	return u.Vec().Scale(s)
}

// Rotate around an axis by angle radians, via quaternion. Length is preserved
// by the rotation, so the result skips the normalization check.
func (u UnitVector3) Rotate(axis UnitVector3, angle float64) UnitVector3 {
	q := NewQuaternion(axis, angle)
	r := q.RotateVec(u.Vec())
	return unitVector3(r.X, r.Y, r.Z)
}

func (u UnitVector3) RotateByQuaternion(q Quaternion) UnitVector3 {
	r := q.RotateVec(u.Vec())
	return unitVector3(r.X, r.Y, r.Z)
}

// A unit quaternion representing a 3D rotation. Like UnitVector, the fields
// are unexported so the unit-norm invariant can only be established by the
// constructor and preserved by Mul.
type Quaternion struct {
	w, x, y, z float64
}

// The rotation of angle radians around axis.
func NewQuaternion(axis UnitVector3, angle float64) Quaternion {
	checkFinite("NewQuaternion", angle)
	sin, cos := math.Sincos(angle / 2)
	return Quaternion{cos, axis.x * sin, axis.y * sin, axis.z * sin}
}

// Hamilton product. Applying the result is equivalent to applying r first,
// then q.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		q.w*r.w - q.x*r.x - q.y*r.y - q.z*r.z,
		q.w*r.x + q.x*r.w + q.y*r.z - q.z*r.y,
		q.w*r.y - q.x*r.z + q.y*r.w + q.z*r.x,
		q.w*r.z + q.x*r.y - q.y*r.x + q.z*r.w,
	}
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.w, -q.x, -q.y, -q.z}
}

// Rotate a vector: q v q*.
func (q Quaternion) RotateVec(v Vector3) Vector3 {
	// Expanded form of the sandwich product, avoiding two full quaternion
	// multiplications.
	t := Vector3{q.x, q.y, q.z}.Cross(v).Scale(2)
	return v.Add(t.Scale(q.w)).Add(Vector3{q.x, q.y, q.z}.Cross(t))
}
