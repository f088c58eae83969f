package solver

import (
	"fmt"

	"gonum.org/v1/gonum/optimize"

	"github.com/viam-labs/footstepplanner/logging"
	"github.com/viam-labs/footstepplanner/scalar"
	"github.com/viam-labs/footstepplanner/stepplan"
)

// buildProblem adapts the rolled-out composite loss into the cost/gradient
// pair gonum's optimizer needs: Func runs the rollout once in plain reals
// (spec §4.10's "cost(theta)"), Grad runs it once more over duals (spec
// §4.10's "gradient(theta)") and combines each step's analytic loss
// gradient with the rollout's dual Jacobian via the scaled-gradient product
// (spec §4.9).
func buildProblem(cfg Config) optimize.Problem {
	composite := cfg.compositeLoss()

	cost := func(theta []float64) float64 {
		flat, err := stepplan.NewFlatPlan(toReals(theta))
		if err != nil {
			panic(err) // Horizon is fixed by this package; theta's length never varies.
		}
		planned := stepplan.RollOut(flat, cfg.InitialPose, cfg.InitialSupportFoot)

		total := 0.0
		for _, ps := range planned {
			total += composite.StepLossReal(ps)
		}
		return total
	}

	grad := func(g, theta []float64) {
		n := len(theta)
		dualFlat := stepplan.WrapDual(theta)
		dualInitial := stepplan.WrapDualPose(cfg.InitialPose, n)
		planned := stepplan.RollOut(dualFlat, dualInitial, cfg.InitialSupportFoot)

		for i := range g {
			g[i] = 0
		}
		for _, ps := range planned {
			stepGrad := composite.StepGradient(ps)
			stepplan.AccumulateGradient(g, stepGrad, ps)
		}
	}

	return optimize.Problem{Func: cost, Grad: grad}
}

func toReals(theta []float64) []scalar.Real {
	out := make([]scalar.Real, len(theta))
	for i, v := range theta {
		out[i] = scalar.Real(v)
	}
	return out
}

// PlanSteps runs the L-BFGS solver from the zero initial guess and re-rolls
// the best parameter found into a sequence of Horizon PlannedSteps, in
// plain reals. On solver failure it logs the single diagnostic line spec
// §7 requires and returns the wrapped error.
func PlanSteps(logger logging.Logger, cfg Config) ([]stepplan.PlannedStep[scalar.Real], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	problem := buildProblem(cfg)
	initial := make([]float64, 3*Horizon)

	method := &optimize.LBFGS{Store: HistoryDepth, Linesearcher: &optimize.MoreThuente{}}
	result, err := optimize.Minimize(problem, initial, nil, method)
	if err != nil {
		logger.Errorw("step planner solve failed", "error", err)
		return nil, fmt.Errorf("step planner solve failed: %w", err)
	}
	if result == nil || result.X == nil {
		logger.Errorw("step planner solve reported success with no best parameter")
		return nil, ErrNoBestParameter
	}

	flat, ferr := stepplan.NewFlatPlan(toReals(result.X))
	if ferr != nil {
		return nil, ferr
	}
	return stepplan.RollOut(flat, cfg.InitialPose, cfg.InitialSupportFoot), nil
}
