package spatialmath_test

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/viam-labs/footstepplanner/spatialmath"
)

func quarterArcCCW() spatialmath.Arc {
	return spatialmath.Arc{
		Circle:    spatialmath.Circle{Center: spatialmath.Vec{X: 0, Y: 0}, Radius: 2},
		StartA:    0,
		EndA:      spatialmath.Angle(math.Pi / 2),
		Direction: spatialmath.Counterclockwise,
	}
}

func TestArcLengthIsRadiusTimesSweep(t *testing.T) {
	a := quarterArcCCW()
	test.That(t, a.Length(), test.ShouldAlmostEqual, 2*(math.Pi/2), 1e-9)
}

func TestArcClassifyInteriorPoint(t *testing.T) {
	a := quarterArcCCW()
	p := a.Circle.PointAtAngle(spatialmath.Angle(math.Pi / 4))
	test.That(t, a.Classify(p), test.ShouldEqual, spatialmath.OnArc)
}

func TestArcClassifyPastEnd(t *testing.T) {
	a := quarterArcCCW()
	p := a.Circle.PointAtAngle(spatialmath.Angle(math.Pi))
	test.That(t, a.Classify(p), test.ShouldEqual, spatialmath.End)
}

func TestArcClassifyBeforeStart(t *testing.T) {
	a := quarterArcCCW()
	p := a.Circle.PointAtAngle(spatialmath.Angle(-math.Pi / 4))
	test.That(t, a.Classify(p), test.ShouldEqual, spatialmath.Start)
}

func TestArcProjectOffCircleStaysOnCircle(t *testing.T) {
	a := quarterArcCCW()
	p := spatialmath.Vec{X: 1, Y: 1}
	proj := a.Project(p)
	distFromCenter := math.Hypot(proj.X-a.Circle.Center.X, proj.Y-a.Circle.Center.Y)
	test.That(t, distFromCenter, test.ShouldAlmostEqual, a.Circle.Radius, 1e-9)
}

func TestArcProgressMonotoneAlongSweep(t *testing.T) {
	a := quarterArcCCW()
	prev := -1e9
	for frac := 0.0; frac <= 1.0; frac += 0.1 {
		theta := spatialmath.Angle(frac * math.Pi / 2)
		p := a.Circle.PointAtAngle(theta)
		prog := a.Progress(p)
		test.That(t, prog > prev, test.ShouldBeTrue)
		prev = prog
	}
}

func TestArcProgressPastEndExceedsLength(t *testing.T) {
	a := quarterArcCCW()
	p := a.Circle.PointAtAngle(spatialmath.Angle(math.Pi))
	test.That(t, a.Progress(p) > a.Length(), test.ShouldBeTrue)
}
