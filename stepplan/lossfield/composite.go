package lossfield

import (
	"github.com/viam-labs/footstepplanner/scalar"
	"github.com/viam-labs/footstepplanner/spatialmath"
	"github.com/viam-labs/footstepplanner/stepplan"
)

// CompositeLoss combines the three fields with their configured weights
// into the per-step scalar cost the rollout sums over its horizon.
type CompositeLoss struct {
	Distance      PathDistanceField
	Progress      PathProgressField
	StepSize      StepSizeField
	DistanceWeight float64 // alpha = path_distance_penalty
	ProgressWeight float64 // beta = path_progress_reward
	StepSizeWeight float64 // gamma = step_size_penalty
}

// StepLoss is L_k = alpha*distance(pose) + beta*progress(pose) +
// gamma*step_size(step, support_foot), evaluated at the plain-real value
// of a (possibly dual) planned step.
func (c CompositeLoss) StepLoss(ps stepplan.PlannedStep[scalar.Dual]) float64 {
	p := toVec(ps.PoseAfter.Position)
	forward, left, turn := ps.Step.Forward.Value(), ps.Step.Left.Value(), ps.Step.Turn.Value()

	return c.DistanceWeight*c.Distance.Loss(p) +
		c.ProgressWeight*c.Progress.Loss(p) +
		c.StepSizeWeight*c.StepSize.Loss(forward, left, turn, ps.SupportFoot)
}

// StepLossReal is the same scalar cost evaluated directly over a plain
// real planned step, used for the solver's plain-real cost pass.
func (c CompositeLoss) StepLossReal(ps stepplan.PlannedStep[scalar.Real]) float64 {
	p := spatialmath.Vec{X: float64(ps.PoseAfter.Position.X), Y: float64(ps.PoseAfter.Position.Y)}
	forward, left, turn := float64(ps.Step.Forward), float64(ps.Step.Left), float64(ps.Step.Turn)

	return c.DistanceWeight*c.Distance.Loss(p) +
		c.ProgressWeight*c.Progress.Loss(p) +
		c.StepSizeWeight*c.StepSize.Loss(forward, left, turn, ps.SupportFoot)
}

// StepGradient is the analytic gradient of StepLoss with respect to the
// step's pose position and step components, in the shape the dual-number
// bridge needs to combine with the rollout's Jacobian.
func (c CompositeLoss) StepGradient(ps stepplan.PlannedStep[scalar.Dual]) stepplan.PlannedStepGradient {
	p := toVec(ps.PoseAfter.Position)
	forward, left, turn := ps.Step.Forward.Value(), ps.Step.Left.Value(), ps.Step.Turn.Value()

	distGrad := c.Distance.Grad(p)
	progGrad := c.Progress.Grad(p)
	dForward, dLeft, dTurn := c.StepSize.StepGrad(forward, left, turn, ps.SupportFoot)

	return stepplan.PlannedStepGradient{
		PositionX: c.DistanceWeight*distGrad.X + c.ProgressWeight*progGrad.X,
		PositionY: c.DistanceWeight*distGrad.Y + c.ProgressWeight*progGrad.Y,
		Forward:   c.StepSizeWeight * dForward,
		Left:      c.StepSizeWeight * dLeft,
		Turn:      c.StepSizeWeight * dTurn,
	}
}

func toVec(p stepplan.Point2[scalar.Dual]) spatialmath.Vec {
	return spatialmath.Vec{X: p.X.Value(), Y: p.Y.Value()}
}
