package lossfield

import "github.com/viam-labs/footstepplanner/spatialmath"

// PathDistanceField penalizes squared distance from the reference path.
type PathDistanceField struct {
	Path spatialmath.Path
}

// Loss is ||p - q||^2 where q is p's projection onto the path.
func (f PathDistanceField) Loss(p spatialmath.Vec) float64 {
	q := f.Path.Project(p)
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Grad is 2*(p - q).
func (f PathDistanceField) Grad(p spatialmath.Vec) spatialmath.Vec {
	q := f.Path.Project(p)
	return spatialmath.Vec{X: 2 * (p.X - q.X), Y: 2 * (p.Y - q.Y)}
}
