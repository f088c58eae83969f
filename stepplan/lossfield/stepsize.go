package lossfield

import (
	"errors"
	"fmt"
	"math"

	"github.com/viam-labs/footstepplanner/stepplan"
)

// ErrZeroWalkVolumeExtent is returned when a walk-volume extent is
// non-positive: its reciprocal coefficient would be infinite or undefined.
var ErrZeroWalkVolumeExtent = errors.New("walk-volume extent must be positive")

// WalkVolumeExtents are the six named kinematic limits (meters for the
// translation axes, radians for rotation) a single step may not exceed,
// before any superellipsoidal blending.
type WalkVolumeExtents struct {
	Forward, Backward        float64
	Outward, Inward          float64
	OutwardRotation          float64
	InwardRotation           float64
}

// WalkVolumeCoefficients are the reciprocals of WalkVolumeExtents, plus the
// translation and rotation superellipsoid exponents. The zero value is
// never valid; construct with FromExtentsAndExponents.
type WalkVolumeCoefficients struct {
	forwardCost, backwardCost         float64
	outwardCost, inwardCost           float64
	outwardRotationCost               float64
	inwardRotationCost                float64

	TranslationExponent float64
	RotationExponent    float64
}

// FromExtentsAndExponents is the sole constructor: it rejects any
// non-positive extent rather than silently producing an infinite
// coefficient (spec §7's configuration-violation handling).
func FromExtentsAndExponents(e WalkVolumeExtents, translationExponent, rotationExponent float64) (WalkVolumeCoefficients, error) {
	for name, v := range map[string]float64{
		"forward": e.Forward, "backward": e.Backward,
		"outward": e.Outward, "inward": e.Inward,
		"outward_rotation": e.OutwardRotation, "inward_rotation": e.InwardRotation,
	} {
		if v <= 0 {
			return WalkVolumeCoefficients{}, fmt.Errorf("%s extent %v: %w", name, v, ErrZeroWalkVolumeExtent)
		}
	}
	return WalkVolumeCoefficients{
		forwardCost:          1 / e.Forward,
		backwardCost:         1 / e.Backward,
		outwardCost:          1 / e.Outward,
		inwardCost:           1 / e.Inward,
		outwardRotationCost:  1 / e.OutwardRotation,
		inwardRotationCost:   1 / e.InwardRotation,
		TranslationExponent:  translationExponent,
		RotationExponent:     rotationExponent,
	}, nil
}

// forwardCoefficient picks forward_cost for forward >= 0, backward_cost
// otherwise, independent of support foot.
func (c WalkVolumeCoefficients) forwardCoefficient(forward float64) float64 {
	if forward >= 0 {
		return c.forwardCost
	}
	return c.backwardCost
}

// lateralCoefficient picks inward/outward cost by sign and support foot:
// for the left foot +left is inward, for the right foot +left is outward.
func (c WalkVolumeCoefficients) lateralCoefficient(left float64, side stepplan.Side) float64 {
	isInward := (left >= 0) == (side == stepplan.Left)
	if isInward {
		return c.inwardCost
	}
	return c.outwardCost
}

// rotationCoefficient picks outward/inward rotation cost by sign and
// support foot: for the left foot +turn is outward rotation, for the right
// foot +turn is inward rotation.
func (c WalkVolumeCoefficients) rotationCoefficient(turn float64, side stepplan.Side) float64 {
	isOutward := (turn >= 0) == (side == stepplan.Left)
	if isOutward {
		return c.outwardRotationCost
	}
	return c.inwardRotationCost
}

// StepSizeField is the walk-volume penalty: loss = V^6, where V is an
// asymmetric, foot-dependent superellipsoidal norm of the step.
type StepSizeField struct {
	Coefficients WalkVolumeCoefficients
}

// walkVolume returns V, the superellipsoid norm of (forward, left, turn),
// along with the normalized components and T = (|nf|^t+|nl|^t)^((r-t)/t)
// used by the hand-derived partials.
func (f StepSizeField) walkVolume(forward, left, turn float64, side stepplan.Side) (v, nf, nl, nt, translationSum, tFactor float64) {
	c := f.Coefficients
	t := c.TranslationExponent
	r := c.RotationExponent

	nf = forward * c.forwardCoefficient(forward)
	nl = left * c.lateralCoefficient(left, side)
	nt = turn * c.rotationCoefficient(turn, side)

	translationSum = math.Pow(math.Abs(nf), t) + math.Pow(math.Abs(nl), t)
	tFactor = math.Pow(translationSum, (r-t)/t)
	v = math.Pow(translationSum, r/t) + math.Pow(math.Abs(nt), r)
	return v, nf, nl, nt, translationSum, tFactor
}

// Loss is V^6 for step (forward, left, turn) planted on side.
func (f StepSizeField) Loss(forward, left, turn float64, side stepplan.Side) float64 {
	v, _, _, _, _, _ := f.walkVolume(forward, left, turn, side)
	return math.Pow(v, 6)
}

// StepGrad is the partial derivatives of Loss with respect to forward,
// left, and turn, exactly the closed form derived by hand:
//
//	dV/dforward = r * c_f^2 * forward * T * |nf|^t / nf^2   (0 if forward==0)
//	dV/dleft    = r * c_l^2 * left    * T * |nl|^t / nl^2   (0 if left==0)
//	dV/dturn    = r * c_t^2 * turn    *     |nt|^r / nt^2   (0 if turn==0)
//
// and grad = 6*V^5 * dV/dstep. Per the design note on numeric degeneracy
// (§9(b)), no epsilon threshold guards the division by nf^2/nl^2/nt^2 for
// very small but nonzero components; this mirrors the source exactly.
func (f StepSizeField) StepGrad(forward, left, turn float64, side stepplan.Side) (dForward, dLeft, dTurn float64) {
	c := f.Coefficients
	t := c.TranslationExponent
	r := c.RotationExponent

	v, nf, nl, nt, _, tFactor := f.walkVolume(forward, left, turn, side)
	outer := 6 * math.Pow(v, 5)

	if forward != 0 {
		cf := c.forwardCoefficient(forward)
		dForward = outer * r * cf * cf * forward * tFactor * math.Pow(math.Abs(nf), t) / (nf * nf)
	}
	if left != 0 {
		cl := c.lateralCoefficient(left, side)
		dLeft = outer * r * cl * cl * left * tFactor * math.Pow(math.Abs(nl), t) / (nl * nl)
	}
	if turn != 0 {
		ct := c.rotationCoefficient(turn, side)
		dTurn = outer * r * ct * ct * turn * math.Pow(math.Abs(nt), r) / (nt * nt)
	}
	return dForward, dLeft, dTurn
}
