package internal

// Points and vectors are plain value structs. Copying is the only way they
// move around, so nothing here ever mutates in place; every operation returns
// a fresh value. Note that unlike most geometry libraries, there is no
// Equal method or == convention for points: float equality is a bug factory,
// so equality only exists as the tolerance-parameterized EqualPoints.

type Point struct {
	X, Y float64
}

type Point3 struct {
	X, Y, Z float64
}

// Construct a point, screening for NaN and infinity in checked builds.
func NewPoint(x, y float64) Point {
	checkFinite("NewPoint", x, y)
	return Point{x, y}
}

func NewPoint3(x, y, z float64) Point3 {
	checkFinite("NewPoint3", x, y, z)
	return Point3{x, y, z}
}

// The displacement from p to q.
func (p Point) To(q Point) Vector {
	return Vector{q.X - p.X, q.Y - p.Y}
}

func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

func (p Point) Sub(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y}
}

func (p Point3) To(q Point3) Vector3 {
	return Vector3{q.X - p.X, q.Y - p.Y, q.Z - p.Z}
}

func (p Point3) Add(v Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

func (p Point3) Sub(v Vector3) Point3 {
	return Point3{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}
