package internal

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	v := Vector{3, 4}
	w := Vector{1, -2}

	assert.Equal(t, Vector{4, 2}, v.Add(w))
	assert.Equal(t, Vector{2, 6}, v.Sub(w))
	assert.Equal(t, Vector{6, 8}, v.Scale(2))
	assert.Equal(t, Vector{1.5, 2}, v.Div(2))
	assert.Equal(t, Vector{-3, -4}, v.Neg())
	assert.Equal(t, -5.0, v.Dot(w))
	assert.Equal(t, -10.0, v.Cross(w))
	assert.Equal(t, 25.0, v.LengthSq())
	assert.Equal(t, 5.0, v.Length())
}

func TestVectorDivByNegligible(t *testing.T) {
	err := captureError(func() {
		Vector{1, 1}.Div(1e-9)
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivideByZero))
}

func TestVectorRotate(t *testing.T) {
	v := Vector{1, 0}.Rotate(math.Pi / 2)
	assert.InDelta(t, 0, v.X, 1e-15)
	assert.InDelta(t, 1, v.Y, 1e-15)

	// Rotation preserves length
	w := Vector{3, 4}
	for i := 0; i < 14; i++ {
		w = w.Rotate(math.Pi / 7)
	}
	assert.InDelta(t, 5, w.Length(), 1e-12)
	// 14 rotations by π/7 is a full turn
	assert.InDelta(t, 3, w.X, 1e-12)
	assert.InDelta(t, 4, w.Y, 1e-12)
}

func TestNormalize(t *testing.T) {
	u := Vector{3, 4}.Normalize()
	assert.InDelta(t, 0.6, u.X(), 1e-15)
	assert.InDelta(t, 0.8, u.Y(), 1e-15)
	assert.InDelta(t, 1, u.Vec().LengthSq(), 1e-15)

	t.Run("negligible input fails", func(t *testing.T) {
		err := captureError(func() {
			Vector{1e-8, -1e-8}.Normalize()
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTooSmall))
	})
}

func TestUnitVectorInvariantUnderRotation(t *testing.T) {
	// A long chain of rotations must not drift the norm
	u := Vector{1, 2}.Normalize()
	for i := 0; i < 1000; i++ {
		u = u.Rotate(0.13)
	}
	assert.InDelta(t, 1, u.Vec().LengthSq(), 1e-9)
}

func TestUnitVectorPerp(t *testing.T) {
	u := Vector{1, 0}.Normalize()

	left := u.Perp()
	assert.InDelta(t, 0, left.X(), 1e-15)
	assert.InDelta(t, 1, left.Y(), 1e-15)

	right := u.PerpCW()
	assert.InDelta(t, 0, right.X(), 1e-15)
	assert.InDelta(t, -1, right.Y(), 1e-15)

	// Both perpendiculars are at 90° to the original
	assert.InDelta(t, 0, u.Dot(left), 1e-15)
	assert.InDelta(t, 0, u.Dot(right), 1e-15)
}

func TestPointVectorRoundTrip(t *testing.T) {
	p := Point{1, 2}
	q := Point{4, 6}
	v := p.To(q)
	assert.Equal(t, Vector{3, 4}, v)
	assert.Equal(t, q, p.Add(v))
	assert.Equal(t, p, q.Sub(v))
}

func TestMeasures(t *testing.T) {
	assert.Equal(t, 25.0, DistanceSq(Point{0, 0}, Point{3, 4}))
	assert.Equal(t, 5.0, Distance(Point{0, 0}, Point{3, 4}))
	assert.Equal(t, Point{2, 3}, Midpoint(Point{1, 2}, Point{3, 4}))
	assert.Equal(t, Point{2, 0}, Lerp(Point{0, 0}, Point{10, 0}, 0.2))

	assert.True(t, EqualPoints(Point{0, 0}, Point{0.005, 0}, 0.01))
	assert.False(t, EqualPoints(Point{0, 0}, Point{0.02, 0}, 0.01))
}

func TestProjectOntoLine(t *testing.T) {
	dir := Vector{1, 0}.Normalize()
	proj := ProjectOntoLine(Point{3, 7}, Point{0, 2}, dir)
	assert.InDelta(t, 3, proj.X, 1e-15)
	assert.InDelta(t, 2, proj.Y, 1e-15)
}

func TestSignedAngle(t *testing.T) {
	east := Vector{1, 0}.Normalize()
	north := Vector{0, 1}.Normalize()
	west := Vector{-1, 0}.Normalize()

	assert.InDelta(t, math.Pi/2, SignedAngle(east, north), 1e-15)
	assert.InDelta(t, -math.Pi/2, SignedAngle(north, east), 1e-15)
	// A full reversal is ±π
	assert.InDelta(t, math.Pi, math.Abs(SignedAngle(east, west)), 1e-15)
	assert.InDelta(t, 0, SignedAngle(east, east), 1e-15)
}

func TestCheckedProfileRejectsNonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := captureError(func() {
			NewPoint(bad, 0)
		})
		require.Error(t, err, "value %v", bad)
		assert.True(t, errors.Is(err, ErrNonFinite))
	}
}
