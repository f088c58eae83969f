// Package scalar provides the numeric trait that lets the step planner's
// pose rollout run identically over plain reals and over forward-mode dual
// numbers. Everything downstream of a rollout (the loss fields, the solver)
// only ever sees plain float64 values; Dual exists solely so that one pass
// over planned_steps can also produce the Jacobian of the rollout with
// respect to the flat step-plan parameters.
package scalar

import "math"

// Number is implemented by every type the rollout can be instantiated over.
// Real is the plain-float64 instantiation; Dual carries a derivative vector
// alongside its value for forward-mode automatic differentiation.
type Number[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	// Scale multiplies by a plain constant, e.g. a Direction sign.
	Scale(factor float64) T
	Abs() T
	Sqrt() T
	Sin() T
	Cos() T
	// Atan2 returns atan2(self, x), propagating derivatives of both operands.
	Atan2(x T) T
	// Value returns the real part, discarding any derivative information.
	Value() float64
}

// Real is the plain float64 instantiation of Number.
type Real float64

func (r Real) Add(o Real) Real        { return r + o }
func (r Real) Sub(o Real) Real        { return r - o }
func (r Real) Mul(o Real) Real        { return r * o }
func (r Real) Div(o Real) Real        { return r / o }
func (r Real) Neg() Real              { return -r }
func (r Real) Scale(factor float64) Real { return Real(float64(r) * factor) }
func (r Real) Abs() Real              { return Real(math.Abs(float64(r))) }
func (r Real) Sqrt() Real             { return Real(math.Sqrt(float64(r))) }
func (r Real) Sin() Real              { return Real(math.Sin(float64(r))) }
func (r Real) Cos() Real              { return Real(math.Cos(float64(r))) }
func (r Real) Atan2(x Real) Real      { return Real(math.Atan2(float64(r), float64(x))) }
func (r Real) Value() float64         { return float64(r) }

// Dual is a forward-mode dual number: a value paired with its gradient with
// respect to a fixed set of basis variables (the flat 3N step-plan
// parameters). The derivative vector's length is the same for every Dual
// flowing through one solver call; it is sized once by NewConstant/NewVariable
// and carried through arithmetic by the chain rule.
type Dual struct {
	V float64
	D []float64
}

// NewConstant returns a Dual with value v and an all-zero derivative of the
// given length, i.e. a quantity that does not depend on any of the flat
// step-plan parameters (such as the rollout's initial pose).
func NewConstant(v float64, numVars int) Dual {
	return Dual{V: v, D: make([]float64, numVars)}
}

// NewVariable returns a Dual with value v whose derivative is the i-th
// standard basis vector of length numVars, i.e. the i-th flat step-plan
// parameter itself.
func NewVariable(v float64, i, numVars int) Dual {
	d := make([]float64, numVars)
	d[i] = 1
	return Dual{V: v, D: d}
}

func combine(a, b []float64, f func(da, db float64) float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}
	return out
}

func scaleVec(a []float64, s float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = v * s
	}
	return out
}

func (d Dual) Add(o Dual) Dual {
	return Dual{V: d.V + o.V, D: combine(d.D, o.D, func(x, y float64) float64 { return x + y })}
}

func (d Dual) Sub(o Dual) Dual {
	return Dual{V: d.V - o.V, D: combine(d.D, o.D, func(x, y float64) float64 { return x - y })}
}

// Mul applies the product rule: d(uv) = u'v + uv'.
func (d Dual) Mul(o Dual) Dual {
	return Dual{
		V: d.V * o.V,
		D: combine(d.D, o.D, func(du, dv float64) float64 { return du*o.V + d.V*dv }),
	}
}

// Div applies the quotient rule: d(u/v) = (u'v - uv') / v^2.
func (d Dual) Div(o Dual) Dual {
	vSq := o.V * o.V
	return Dual{
		V: d.V / o.V,
		D: combine(d.D, o.D, func(du, dv float64) float64 { return (du*o.V - d.V*dv) / vSq }),
	}
}

func (d Dual) Neg() Dual { return Dual{V: -d.V, D: scaleVec(d.D, -1)} }

func (d Dual) Scale(factor float64) Dual { return Dual{V: d.V * factor, D: scaleVec(d.D, factor)} }

func (d Dual) Abs() Dual {
	if d.V < 0 {
		return d.Neg()
	}
	return d
}

func (d Dual) Sqrt() Dual {
	v := math.Sqrt(d.V)
	// d(sqrt(u)) = u' / (2 sqrt(u))
	return Dual{V: v, D: scaleVec(d.D, 1/(2*v))}
}

func (d Dual) Sin() Dual {
	return Dual{V: math.Sin(d.V), D: scaleVec(d.D, math.Cos(d.V))}
}

func (d Dual) Cos() Dual {
	return Dual{V: math.Cos(d.V), D: scaleVec(d.D, -math.Sin(d.V))}
}

// Atan2 returns atan2(d, x) with derivative (x*d' - d*x') / (x^2 + d^2).
func (d Dual) Atan2(x Dual) Dual {
	denom := x.V*x.V + d.V*d.V
	return Dual{
		V: math.Atan2(d.V, x.V),
		D: combine(d.D, x.D, func(dd, dx float64) float64 { return (x.V*dd - d.V*dx) / denom }),
	}
}

func (d Dual) Value() float64 { return d.V }
