package internal

import "github.com/pkg/errors"

// Threading errors up through every arithmetic helper and joint resolution step
// would add a ton of complexity to the code. Instead, we use panics, and the
// public API recovers to convert to an error.

type GeometryError error

// Failure classes. Callers can test against these with errors.Is after the
// public API has recovered the panic.
var (
	// A vector was too short to normalize or otherwise carry a direction.
	ErrTooSmall = errors.New("magnitude below tolerance")

	// Division by a negligible scalar.
	ErrDivideByZero = errors.New("division by negligible value")

	// A coordinate was NaN or infinite.
	ErrNonFinite = errors.New("non-finite coordinate")

	// A joint could not be resolved under the configured policy.
	ErrDegenerateJoint = errors.New("degenerate joint")

	// An offset result collapsed below the minimum vertex count.
	ErrDegenerateResult = errors.New("degenerate result")
)

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError(errors.Errorf(format, args...)))
}

// Panic with a GeometryError wrapping one of the failure classes above, so the
// class survives the trip through recover and remains testable with errors.Is.
func throwf(class error, format string, args ...interface{}) {
	panic(GeometryError(errors.Wrapf(class, format, args...)))
}

func HandleOffsetPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
