package lossfield

import "github.com/viam-labs/footstepplanner/spatialmath"

// PathProgressField rewards arc-length progress along the path, capped
// smoothly at the path's end so overshoot is never rewarded further.
type PathProgressField struct {
	Path        spatialmath.Path
	Smoothness  float64
}

// Loss is the negative smoothed-and-capped progress (negative so gradient
// descent on loss increases progress).
func (f PathProgressField) Loss(p spatialmath.Vec) float64 {
	s := f.Path.Progress(p)
	l := f.Path.Length()
	return -Smoothmin(s, l, f.Smoothness)
}

// Grad is the negative smoothmin derivative scaled by the path's forward
// tangent at p's projection.
func (f PathProgressField) Grad(p spatialmath.Vec) spatialmath.Vec {
	s := f.Path.Progress(p)
	l := f.Path.Length()
	d := -SmoothminDerivative(s, l, f.Smoothness)
	tangent := f.Path.Forward(p)
	return spatialmath.Vec{X: d * tangent.X, Y: d * tangent.Y}
}
