// Package stepplan holds the pose/step data model and the rollout that
// integrates a flat step-plan parameter vector into a sequence of planned
// steps. Every type here is generic over scalar.Number so the same rollout
// runs once over plain reals (for the cost) and once over dual numbers (for
// the gradient) — see scalar.Number.
package stepplan

import "github.com/viam-labs/footstepplanner/scalar"

// Point2 is a ground-plane point or vector whose components carry a
// scalar.Number. Unlike spatialmath.Vec (always plain float64), Point2 is
// parameterized so it can carry dual numbers through the rollout.
type Point2[T scalar.Number[T]] struct {
	X, Y T
}

func (p Point2[T]) Add(o Point2[T]) Point2[T] {
	return Point2[T]{X: p.X.Add(o.X), Y: p.Y.Add(o.Y)}
}

// Pose is a 2D position plus orientation, both carrying T.
type Pose[T scalar.Number[T]] struct {
	Position    Point2[T]
	Orientation T
}

// Apply advances a pose by a step expressed in the pose's own local frame:
// position' = position + R(orientation)*(forward, left), orientation' =
// orientation + turn.
func (p Pose[T]) Apply(s Step[T]) Pose[T] {
	cos := p.Orientation.Cos()
	sin := p.Orientation.Sin()

	worldX := cos.Mul(s.Forward).Sub(sin.Mul(s.Left))
	worldY := sin.Mul(s.Forward).Add(cos.Mul(s.Left))

	return Pose[T]{
		Position:    Point2[T]{X: p.Position.X.Add(worldX), Y: p.Position.Y.Add(worldY)},
		Orientation: p.Orientation.Add(s.Turn),
	}
}

// Step is a displacement in the supporting foot's local frame: forward,
// lateral (left-positive), and yaw.
type Step[T scalar.Number[T]] struct {
	Forward, Left, Turn T
}

// Mirrored returns the opposite-handedness version of the step: forward is
// unchanged, left and turn are negated. Carried from the original planner's
// Step type even though the rollout here never calls it directly (see
// SPEC_FULL.md supplement C.2).
func (s Step[T]) Mirrored() Step[T] {
	return Step[T]{Forward: s.Forward, Left: s.Left.Neg(), Turn: s.Turn.Neg()}
}

// Side is which foot is planted.
type Side int

const (
	Left Side = iota
	Right
)

// Opposite flips the side.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// PlannedStep is the pose reached after executing Step with SupportFoot
// planted.
type PlannedStep[T scalar.Number[T]] struct {
	PoseAfter   Pose[T]
	Step        Step[T]
	SupportFoot Side
}
