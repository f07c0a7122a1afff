package offset

// The conversion surface for host applications. A host adapter translates its
// native curve representation into a Polyline on the way in and back out on
// the way out; this pair is the entire contract. Host object identity,
// layers, document state, and so on stay on the host side.

// Convert host coordinate pairs into a filtered Polyline. minSegmentLength
// and snapTolerance are the host's two tuning knobs; see Build for their
// meaning.
func ToCore(hostPoints [][2]float64, closed bool, minSegmentLength, snapTolerance float64) (Polyline, error) {
	points := make([]Point, len(hostPoints))
	for i, hp := range hostPoints {
		points[i] = Point{X: hp[0], Y: hp[1]}
	}
	return Build(points, minSegmentLength, snapTolerance, closed)
}

// Convert a Polyline back into host coordinate pairs.
func FromCore(pl Polyline) [][2]float64 {
	result := make([][2]float64, pl.Len())
	for i := 0; i < pl.Len(); i++ {
		p := pl.Vertex(i)
		result[i] = [2]float64{p.X, p.Y}
	}
	return result
}

// Planar embedding helpers for hosts that live in 3D: project host points
// lying in the z = c plane into the core and lift results back out. A full 3D
// adapter (arbitrary plane, quaternion frame) belongs to the host, built on
// the Point3/UnitVector3/Quaternion types.
func ToCorePlanar(hostPoints []Point3, closed bool, minSegmentLength, snapTolerance float64) (Polyline, error) {
	points := make([]Point, len(hostPoints))
	for i, hp := range hostPoints {
		points[i] = Point{X: hp.X, Y: hp.Y}
	}
	return Build(points, minSegmentLength, snapTolerance, closed)
}

func FromCorePlanar(pl Polyline, z float64) []Point3 {
	result := make([]Point3, pl.Len())
	for i := 0; i < pl.Len(); i++ {
		p := pl.Vertex(i)
		result[i] = Point3{X: p.X, Y: p.Y, Z: z}
	}
	return result
}
