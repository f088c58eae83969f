package stepplan

import "github.com/viam-labs/footstepplanner/scalar"

// WrapDual lifts a plain real flat parameter vector into a dual flat
// vector where theta[i] carries the i-th standard basis vector of the
// 3N-dimensional derivative space — rolling it out with RollOut[scalar.Dual]
// produces, at every planned step, the Jacobian of that step's pose and
// step components with respect to the whole flat vector, carried inline in
// each Dual's derivative slice.
func WrapDual(theta []float64) FlatPlan[scalar.Dual] {
	n := len(theta)
	flat := make(FlatPlan[scalar.Dual], n)
	for i, v := range theta {
		flat[i] = scalar.NewVariable(v, i, n)
	}
	return flat
}

// WrapDualPose lifts a plain Pose[scalar.Real] into a Pose[scalar.Dual]
// whose components carry no derivative contribution (numVars zero
// derivative slots) — the initial pose is a constant with respect to the
// flat step-plan parameters.
func WrapDualPose(p Pose[scalar.Real], numVars int) Pose[scalar.Dual] {
	return Pose[scalar.Dual]{
		Position: Point2[scalar.Dual]{
			X: scalar.NewConstant(p.Position.X.Value(), numVars),
			Y: scalar.NewConstant(p.Position.Y.Value(), numVars),
		},
		Orientation: scalar.NewConstant(p.Orientation.Value(), numVars),
	}
}

// PlannedStepGradient is the analytic gradient of one step's scalar loss
// with respect to its pose position and its step components — the "left
// side" of the scaled-gradient product described in the spec's dual-number
// bridge design note.
type PlannedStepGradient struct {
	PositionX, PositionY float64
	Forward, Left, Turn  float64
}

// AccumulateGradient adds the contribution of one planned step's analytic
// loss gradient g, scaled through the step's dual Jacobian (carried in ps's
// dual components), into grad — a pre-sized 3N-length accumulator. This is
// the "scaled-gradient product" from the dual-number bridge design note:
// grad[i] += g.PositionX * d(PositionX)/d(theta_i) + ... for every
// differentiated component.
func AccumulateGradient(grad []float64, g PlannedStepGradient, ps PlannedStep[scalar.Dual]) {
	axpy(grad, g.PositionX, ps.PoseAfter.Position.X.D)
	axpy(grad, g.PositionY, ps.PoseAfter.Position.Y.D)
	axpy(grad, g.Forward, ps.Step.Forward.D)
	axpy(grad, g.Left, ps.Step.Left.D)
	axpy(grad, g.Turn, ps.Step.Turn.D)
}

func axpy(dst []float64, alpha float64, x []float64) {
	for i, xi := range x {
		dst[i] += alpha * xi
	}
}
