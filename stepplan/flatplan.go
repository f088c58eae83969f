package stepplan

import (
	"errors"
	"fmt"

	"github.com/viam-labs/footstepplanner/scalar"
)

// ErrInvalidStepCount is returned when a flat parameter vector's length is
// not a multiple of 3 (each Step occupies forward/left/turn).
var ErrInvalidStepCount = errors.New("flat step-plan length is not a multiple of 3")

// FlatPlan is a flat vector of 3*N scalars interpreted as N consecutive
// Steps: [forward_0, left_0, turn_0, forward_1, left_1, turn_1, ...].
type FlatPlan[T scalar.Number[T]] []T

// NewFlatPlan validates flat's length before wrapping it.
func NewFlatPlan[T scalar.Number[T]](flat []T) (FlatPlan[T], error) {
	if len(flat)%3 != 0 {
		return nil, fmt.Errorf("len=%d: %w", len(flat), ErrInvalidStepCount)
	}
	return FlatPlan[T](flat), nil
}

// NumSteps returns N, the number of Steps this flat plan encodes.
func (f FlatPlan[T]) NumSteps() int {
	return len(f) / 3
}

// Step extracts the k-th Step from the flat vector.
func (f FlatPlan[T]) Step(k int) Step[T] {
	return Step[T]{Forward: f[3*k], Left: f[3*k+1], Turn: f[3*k+2]}
}

// RollOut integrates initialPose forward through every step encoded in
// flat, starting on initialFoot and alternating support foot each step.
// This is a strict left-to-right fold: the order of evaluation is exactly
// the order of iteration, so support-foot flips are deterministic and
// dual-part bookkeeping lines up with the flat vector's index when T is
// scalar.Dual.
func RollOut[T scalar.Number[T]](flat FlatPlan[T], initialPose Pose[T], initialFoot Side) []PlannedStep[T] {
	n := flat.NumSteps()
	planned := make([]PlannedStep[T], 0, n)

	pose := initialPose
	foot := initialFoot
	for k := 0; k < n; k++ {
		step := flat.Step(k)
		pose = pose.Apply(step)
		planned = append(planned, PlannedStep[T]{PoseAfter: pose, Step: step, SupportFoot: foot})
		foot = foot.Opposite()
	}
	return planned
}
