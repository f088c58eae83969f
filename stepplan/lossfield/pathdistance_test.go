package lossfield_test

import (
	"testing"

	"go.viam.com/test"

	"github.com/viam-labs/footstepplanner/spatialmath"
	"github.com/viam-labs/footstepplanner/stepplan/lossfield"
)

func straightLinePath() spatialmath.Path {
	return spatialmath.Path{Segments: []spatialmath.PathSegment{
		spatialmath.LineSegmentPath(spatialmath.LineSegment{
			Start: spatialmath.Vec{X: 0, Y: 0},
			End:   spatialmath.Vec{X: 3, Y: 0},
		}),
	}}
}

func TestPathDistanceFieldSquareToPath(t *testing.T) {
	f := lossfield.PathDistanceField{Path: straightLinePath()}
	p := spatialmath.Vec{X: 1, Y: 2}

	test.That(t, f.Loss(p), test.ShouldAlmostEqual, 4.0, 1e-9)

	grad := f.Grad(p)
	test.That(t, grad.X, test.ShouldAlmostEqual, 0.0, 1e-9)
	test.That(t, grad.Y, test.ShouldAlmostEqual, 4.0, 1e-9)
}

func TestPathProgressFieldOnStraightLine(t *testing.T) {
	f := lossfield.PathProgressField{Path: straightLinePath(), Smoothness: 1.0}
	p := spatialmath.Vec{X: 1, Y: 2}

	prog := f.Path.Progress(p)
	test.That(t, prog, test.ShouldAlmostEqual, 1.0, 1e-9)

	forward := f.Path.Forward(p)
	test.That(t, forward.X, test.ShouldAlmostEqual, 1.0, 1e-9)
	test.That(t, forward.Y, test.ShouldAlmostEqual, 0.0, 1e-9)
}
