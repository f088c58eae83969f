package spatialmath

import "gonum.org/v1/gonum/spatial/r2"

// Vec is the ground-plane 2D point/vector type used by every plain-real
// geometry primitive in this package. It is gonum's r2.Vec directly: the
// planner's solver already depends on gonum.org/v1/gonum for L-BFGS, so the
// geometry layer borrows its 2D vector type rather than inventing another.
type Vec = r2.Vec

func add(a, b Vec) Vec        { return r2.Add(a, b) }
func sub(a, b Vec) Vec        { return r2.Sub(a, b) }
func scale(f float64, v Vec) Vec { return r2.Scale(f, v) }
func dot(a, b Vec) float64    { return r2.Dot(a, b) }
func norm(v Vec) float64      { return r2.Norm(v) }
func normSquared(v Vec) float64 { return r2.Dot(v, v) }

// unit returns v scaled to unit length, or the zero vector if v is
// (numerically) zero-length.
func unit(v Vec) Vec {
	n := norm(v)
	if n == 0 {
		return Vec{}
	}
	return scale(1/n, v)
}
