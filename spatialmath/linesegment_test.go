package spatialmath_test

import (
	"testing"

	"go.viam.com/test"

	"github.com/viam-labs/footstepplanner/spatialmath"
)

func TestLineSegmentProjectClampsToEndpoints(t *testing.T) {
	l := spatialmath.LineSegment{Start: spatialmath.Vec{X: 0, Y: 0}, End: spatialmath.Vec{X: 10, Y: 0}}

	before := l.Project(spatialmath.Vec{X: -5, Y: 3})
	test.That(t, before.X, test.ShouldAlmostEqual, 0.0, 1e-9)

	after := l.Project(spatialmath.Vec{X: 15, Y: -3})
	test.That(t, after.X, test.ShouldAlmostEqual, 10.0, 1e-9)

	mid := l.Project(spatialmath.Vec{X: 4, Y: 7})
	test.That(t, mid.X, test.ShouldAlmostEqual, 4.0, 1e-9)
	test.That(t, mid.Y, test.ShouldAlmostEqual, 0.0, 1e-9)
}

func TestLineSegmentProgressMonotone(t *testing.T) {
	l := spatialmath.LineSegment{Start: spatialmath.Vec{X: 0, Y: 0}, End: spatialmath.Vec{X: 10, Y: 0}}
	prevProgress := -1e9
	for x := -2.0; x <= 12.0; x += 0.5 {
		prog := l.Progress(spatialmath.Vec{X: x, Y: 1})
		test.That(t, prog > prevProgress, test.ShouldBeTrue)
		prevProgress = prog
	}
}

func TestLineSegmentDegenerateDoesNotPanic(t *testing.T) {
	l := spatialmath.LineSegment{Start: spatialmath.Vec{X: 3, Y: 3}, End: spatialmath.Vec{X: 3, Y: 3}}
	p := l.Project(spatialmath.Vec{X: 10, Y: 10})
	test.That(t, p.X, test.ShouldAlmostEqual, 3.0, 1e-9)
	test.That(t, l.Progress(spatialmath.Vec{X: 10, Y: 10}), test.ShouldAlmostEqual, 0.0, 1e-9)
	test.That(t, l.Forward(spatialmath.Vec{X: 10, Y: 10}), test.ShouldResemble, spatialmath.Vec{})
}

func TestLineSegmentLength(t *testing.T) {
	l := spatialmath.LineSegment{Start: spatialmath.Vec{X: 0, Y: 0}, End: spatialmath.Vec{X: 3, Y: 4}}
	test.That(t, l.Length(), test.ShouldAlmostEqual, 5.0, 1e-9)
}
