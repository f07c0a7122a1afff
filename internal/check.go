//go:build !fastgeom
// +build !fastgeom

package internal

import "math"

// Checked build profile: every constructed coordinate is screened for NaN and
// infinity at the point of entry. Tests must run in this profile. Builds that
// have validated their inputs elsewhere can compile the checks out with
// -tags fastgeom.

func checkFinite(op string, values ...float64) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			throwf(ErrNonFinite, "%s: coordinate %v", op, v)
		}
	}
}
