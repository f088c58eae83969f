package spatialmath

// LineSegment is an ordered pair of ground-plane points. A degenerate
// segment (Start == End) is accepted from callers; every method below
// treats it as projecting to Start rather than dividing by zero (spec's
// numeric-degeneracy handling, never a hard failure).
type LineSegment struct {
	Start, End Vec
}

// Length returns the Euclidean length of the segment.
func (l LineSegment) Length() float64 {
	return norm(sub(l.End, l.Start))
}

// Project returns the closest point on the segment to p.
func (l LineSegment) Project(p Vec) Vec {
	direction := sub(l.End, l.Start)
	denom := normSquared(direction)
	if denom == 0 {
		return l.Start
	}
	t := dot(sub(p, l.Start), direction) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return add(l.Start, scale(t, direction))
}

// Progress returns the signed, unclamped arc-length of p's projection onto
// the segment's infinite forward direction: negative before Start, beyond
// Length() past End.
func (l LineSegment) Progress(p Vec) float64 {
	direction := sub(l.End, l.Start)
	n := norm(direction)
	if n == 0 {
		return 0
	}
	return dot(sub(p, l.Start), direction) / n
}

// Forward returns the segment's constant unit tangent. For a degenerate
// segment it returns the zero vector.
func (l LineSegment) Forward(Vec) Vec {
	return unit(sub(l.End, l.Start))
}
