// Package solver drives the L-BFGS optimizer over the step-plan rollout's
// composite loss, producing a fixed-horizon sequence of planned footsteps
// from a reference path, an initial pose, and an initial support foot.
package solver

import (
	"errors"
	"fmt"

	"github.com/viam-labs/footstepplanner/scalar"
	"github.com/viam-labs/footstepplanner/spatialmath"
	"github.com/viam-labs/footstepplanner/stepplan"
	"github.com/viam-labs/footstepplanner/stepplan/lossfield"
)

// ErrEmptyPath is returned when Config.Path has no segments.
var ErrEmptyPath = errors.New("path has no segments")

// ErrNoBestParameter is an internal invariant violation: the solver
// reported success but produced no best parameter vector.
var ErrNoBestParameter = errors.New("solver reported success with no best parameter")

// Horizon is N, the fixed number of steps planned per call (spec §4.10).
const Horizon = 15

// HistoryDepth is the L-BFGS history depth (spec §4.10).
const HistoryDepth = 10

// Config is every tunable the solver needs for one plan_steps call. It is
// passed by value into PlanSteps; nothing here is held as package-level
// mutable state (spec §5, §9).
type Config struct {
	Path                  spatialmath.Path
	InitialPose           stepplan.Pose[scalar.Real]
	InitialSupportFoot    stepplan.Side
	PathProgressSmoothness float64
	PathProgressReward    float64
	PathDistancePenalty   float64
	StepSizePenalty       float64
	WalkVolumeCoefficients lossfield.WalkVolumeCoefficients
}

// DefaultConfig builds a Config from the tuning surface's compile-time
// constants (spec §6) given just the three values every caller supplies:
// the path, the initial pose, and the initial support foot.
func DefaultConfig(path spatialmath.Path, initialPose stepplan.Pose[scalar.Real], initialFoot stepplan.Side) (Config, error) {
	coeffs, err := lossfield.FromExtentsAndExponents(lossfield.WalkVolumeExtents{
		Forward: 0.045, Backward: 0.04,
		Outward: 0.1, Inward: 0.01,
		OutwardRotation: 1.0, InwardRotation: 1.0,
	}, 1.5, 2.0)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Path:                   path,
		InitialPose:            initialPose,
		InitialSupportFoot:     initialFoot,
		PathProgressSmoothness: 1.0,
		PathProgressReward:     5.0,
		PathDistancePenalty:    50.0,
		StepSizePenalty:        1.0,
		WalkVolumeCoefficients: coeffs,
	}, nil
}

func (c Config) validate() error {
	if len(c.Path.Segments) == 0 {
		return fmt.Errorf("%w", ErrEmptyPath)
	}
	return nil
}

func (c Config) compositeLoss() lossfield.CompositeLoss {
	return lossfield.CompositeLoss{
		Distance:       lossfield.PathDistanceField{Path: c.Path},
		Progress:       lossfield.PathProgressField{Path: c.Path, Smoothness: c.PathProgressSmoothness},
		StepSize:       lossfield.StepSizeField{Coefficients: c.WalkVolumeCoefficients},
		DistanceWeight: c.PathDistancePenalty,
		ProgressWeight: c.PathProgressReward,
		StepSizeWeight: c.StepSizePenalty,
	}
}
