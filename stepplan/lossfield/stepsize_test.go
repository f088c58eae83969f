package lossfield_test

import (
	"math/rand"
	"testing"

	"go.viam.com/test"

	"github.com/viam-labs/footstepplanner/stepplan"
	"github.com/viam-labs/footstepplanner/stepplan/lossfield"
)

func defaultExtents() lossfield.WalkVolumeExtents {
	return lossfield.WalkVolumeExtents{
		Forward: 0.045, Backward: 0.04,
		Outward: 0.1, Inward: 0.01,
		OutwardRotation: 1.0, InwardRotation: 1.0,
	}
}

func TestFromExtentsAndExponentsRejectsZeroExtent(t *testing.T) {
	e := defaultExtents()
	e.Inward = 0
	_, err := lossfield.FromExtentsAndExponents(e, 1.5, 2.0)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestWalkVolumeAsymmetryLeftFoot(t *testing.T) {
	coeffs, err := lossfield.FromExtentsAndExponents(defaultExtents(), 1.5, 2.0)
	test.That(t, err, test.ShouldBeNil)
	field := lossfield.StepSizeField{Coefficients: coeffs}

	eps := 0.005
	inwardLoss := field.Loss(0, eps, 0, stepplan.Left)
	outwardLoss := field.Loss(0, -eps, 0, stepplan.Left)
	test.That(t, inwardLoss > outwardLoss, test.ShouldBeTrue)
}

func TestWalkVolumeAsymmetryReversesOnRightFoot(t *testing.T) {
	coeffs, err := lossfield.FromExtentsAndExponents(defaultExtents(), 1.5, 2.0)
	test.That(t, err, test.ShouldBeNil)
	field := lossfield.StepSizeField{Coefficients: coeffs}

	eps := 0.005
	inwardLoss := field.Loss(0, -eps, 0, stepplan.Right)
	outwardLoss := field.Loss(0, eps, 0, stepplan.Right)
	test.That(t, inwardLoss > outwardLoss, test.ShouldBeTrue)
}

// TestStepGradMatchesFiniteDifference validates the hand-derived partials
// against a finite-difference oracle (spec §8 invariant 4; the true
// dual-number agreement for the rollout's pose/position components is
// covered end to end in stepplan's own gradient test and in scalar's own
// dual-vs-finite-difference test).
func TestStepGradMatchesFiniteDifference(t *testing.T) {
	coeffs, err := lossfield.FromExtentsAndExponents(defaultExtents(), 1.5, 2.0)
	test.That(t, err, test.ShouldBeNil)
	field := lossfield.StepSizeField{Coefficients: coeffs}

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		forward := (rng.Float64()*2 - 1) * 0.04
		left := (rng.Float64()*2 - 1) * 0.08
		turn := (rng.Float64()*2 - 1) * 0.9
		side := stepplan.Left
		if trial%2 == 0 {
			side = stepplan.Right
		}

		dForward, dLeft, dTurn := field.StepGrad(forward, left, turn, side)

		h := 1e-6
		fdForward := (field.Loss(forward+h, left, turn, side) - field.Loss(forward-h, left, turn, side)) / (2 * h)
		fdLeft := (field.Loss(forward, left+h, turn, side) - field.Loss(forward, left-h, turn, side)) / (2 * h)
		fdTurn := (field.Loss(forward, left, turn+h, side) - field.Loss(forward, left, turn-h, side)) / (2 * h)

		test.That(t, dForward, test.ShouldAlmostEqual, fdForward, 1e-3)
		test.That(t, dLeft, test.ShouldAlmostEqual, fdLeft, 1e-3)
		test.That(t, dTurn, test.ShouldAlmostEqual, fdTurn, 1e-3)
	}
}
