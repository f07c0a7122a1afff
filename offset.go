// A tolerance-robust polyline and loop offset package.
//
// This package constructs a parallel copy of a polyline or closed loop at a
// signed distance, with explicit, caller-selected policies for the degenerate
// joints that make naive offsetting blow up: sharp reversals, near-parallel
// adjacent edges, and hairline segments. All geometric entities are immutable
// values; offsetting never mutates its input.
package offset

import "github.com/osuushi/offset/internal"

// The geometric value types. See the internal package for their operations;
// they are usable directly by advanced callers.
type Point = internal.Point
type Point3 = internal.Point3
type Vector = internal.Vector
type Vector3 = internal.Vector3
type UnitVector = internal.UnitVector
type UnitVector3 = internal.UnitVector3
type Quaternion = internal.Quaternion
type Segment = internal.Segment
type Polyline = internal.Polyline
type SegmentIterator = internal.SegmentIterator
type IntersectionResult = internal.IntersectionResult
type IntersectionPoint = internal.IntersectionPoint
type IntersectionParallel = internal.IntersectionParallel
type IntersectionCoincident = internal.IntersectionCoincident
type IntersectionNone = internal.IntersectionNone
type Options = internal.Options
type UTurnBehavior = internal.UTurnBehavior
type ParallelHandling = internal.ParallelHandling

const (
	UTurnFail      = internal.UTurnFail
	UTurnChamfer   = internal.UTurnChamfer
	UTurnSkip      = internal.UTurnSkip
	UTurnThreshold = internal.UTurnThreshold

	ParallelFail         = internal.ParallelFail
	ParallelSkip         = internal.ParallelSkip
	ParallelProportional = internal.ParallelProportional
	ParallelProject      = internal.ParallelProject
)

// Failure classes, testable with errors.Is on any error returned here.
var (
	ErrTooSmall         = internal.ErrTooSmall
	ErrDivideByZero     = internal.ErrDivideByZero
	ErrNonFinite        = internal.ErrNonFinite
	ErrDegenerateJoint  = internal.ErrDegenerateJoint
	ErrDegenerateResult = internal.ErrDegenerateResult
)

func DefaultOptions() Options {
	return internal.DefaultOptions()
}

// Scrub a vertex run into a Polyline: consecutive vertices within
// snapTolerance merge, edges shorter than minSegmentLength are absorbed into
// their neighbors, and redundant collinear vertices are dropped.
// snapTolerance < minSegmentLength is the recommended configuration, but it is
// not enforced.
func Build(points []Point, minSegmentLength, snapTolerance float64, closed bool) (result Polyline, err error) {
	defer func() {
		if recoveredErr := internal.HandleOffsetPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return internal.Build(points, minSegmentLength, snapTolerance, closed), nil
}

// Build a closed Polyline and require at least 3 vertices to survive
// filtering.
func BuildLoop(points []Point, minSegmentLength, snapTolerance float64) (result Polyline, err error) {
	defer func() {
		if recoveredErr := internal.HandleOffsetPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return internal.BuildLoop(points, minSegmentLength, snapTolerance), nil
}

// Offset a polyline or loop sideways by the signed distance. For a loop,
// positive distance offsets outward regardless of winding; for an open
// polyline, positive distance offsets toward the clockwise perpendicular of
// the direction of travel. Degenerate joints resolve per the policies in
// opts; only the Fail policies produce errors.
//
// Offsetting by a negligible distance returns the filtered input unchanged.
func Offset(pl Polyline, distance float64, opts Options) (result Polyline, err error) {
	defer func() {
		if recoveredErr := internal.HandleOffsetPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return internal.OffsetPolyline(pl, distance, opts), nil
}

// Convenience entry point for hosts that only configure the two joint
// policies and take the defaults for everything else.
func OffsetWithPolicies(pl Polyline, distance float64, uturn UTurnBehavior, parallel ParallelHandling) (Polyline, error) {
	opts := DefaultOptions()
	opts.UTurn = uturn
	opts.Parallel = parallel
	return Offset(pl, distance, opts)
}
