// Package lossfield implements the three differentiable scalar loss fields
// the step planner combines into one rollout cost: path distance, path
// progress, and the walk-volume step-size penalty. Every field exposes the
// same shape, loss(x) and grad(x), evaluated in plain float64 — the
// dual-number bridge in package stepplan supplies the Jacobian that turns
// these analytic gradients into a gradient over the flat step-plan
// parameters.
package lossfield

// Smoothmin caps x at max with a piecewise-quadratic C1 blend of width h
// starting h below max, rather than a hard clamp:
//
//	x + h/2                   if x < max - h
//	max - (max - x)^2/(2h)    if max - h <= x < max
//	max                       otherwise
func Smoothmin(x, max, h float64) float64 {
	switch {
	case x < max-h:
		return x + h/2
	case x < max:
		d := max - x
		return max - d*d/(2*h)
	default:
		return max
	}
}

// SmoothminDerivative is d/dx of Smoothmin in the same three regions:
// 1, (max-x)/h, 0.
func SmoothminDerivative(x, max, h float64) float64 {
	switch {
	case x < max-h:
		return 1
	case x < max:
		return (max - x) / h
	default:
		return 0
	}
}
