package spatialmath

import "math"

// Circle is a center and a positive radius.
type Circle struct {
	Center Vec
	Radius float64
}

// PointAtAngle returns Center + radius*(cos theta, sin theta).
func (c Circle) PointAtAngle(theta Angle) Vec {
	return add(c.Center, scale(c.Radius, Vec{X: theta.Cos(), Y: theta.Sin()}))
}

// Tangent returns the unit tangent at angle theta traveling in dir.
func (c Circle) Tangent(theta Angle, dir Direction) Vec {
	radial := Vec{X: theta.Cos(), Y: theta.Sin()}
	return dir.RotateVector90(radial)
}

// AngleAt returns the angle of p as seen from the circle's center.
func (c Circle) AngleAt(p Vec) Angle {
	delta := sub(p, c.Center)
	return Angle(math.Atan2(delta.Y, delta.X))
}
