package spatialmath

// SegmentKind tags which variant a PathSegment holds. PathSegment is a
// tagged struct rather than an interface: the planner's loss fields call
// Project/Progress/Forward on every segment of every path on every solver
// iteration, and a closed two-variant switch is cheaper and plainer to read
// here than a boxed virtual call.
type SegmentKind int

const (
	SegmentLine SegmentKind = iota
	SegmentArc
)

// PathSegment holds exactly one of Line or Arc, selected by Kind.
type PathSegment struct {
	Kind SegmentKind
	Line LineSegment
	Arc  Arc
}

// LineSegmentPath wraps a LineSegment as a PathSegment.
func LineSegmentPath(l LineSegment) PathSegment {
	return PathSegment{Kind: SegmentLine, Line: l}
}

// ArcPath wraps an Arc as a PathSegment.
func ArcPath(a Arc) PathSegment {
	return PathSegment{Kind: SegmentArc, Arc: a}
}

func (s PathSegment) Length() float64 {
	switch s.Kind {
	case SegmentLine:
		return s.Line.Length()
	default:
		return s.Arc.Length()
	}
}

func (s PathSegment) Project(p Vec) Vec {
	switch s.Kind {
	case SegmentLine:
		return s.Line.Project(p)
	default:
		return s.Arc.Project(p)
	}
}

func (s PathSegment) Progress(p Vec) float64 {
	switch s.Kind {
	case SegmentLine:
		return s.Line.Progress(p)
	default:
		return s.Arc.Progress(p)
	}
}

func (s PathSegment) Forward(p Vec) Vec {
	switch s.Kind {
	case SegmentLine:
		return s.Line.Forward(p)
	default:
		return s.Arc.Forward(p)
	}
}

// Path is an ordered, contiguous run of segments: walking off the end of
// one segment's traversed extent is expected to land in the next.
type Path struct {
	Segments []PathSegment
}

// Length is the sum of every segment's length.
func (p Path) Length() float64 {
	total := 0.0
	for _, s := range p.Segments {
		total += s.Length()
	}
	return total
}

// nearestSegment finds the index of the segment whose projection of q is
// closest to q, breaking ties toward the earlier segment.
func (p Path) nearestSegment(q Vec) int {
	best := 0
	bestDist := -1.0
	for i, s := range p.Segments {
		d := normSquared(sub(q, s.Project(q)))
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// Project returns the closest point on the whole path to q.
func (p Path) Project(q Vec) Vec {
	i := p.nearestSegment(q)
	return p.Segments[i].Project(q)
}

// Progress returns q's cumulative arc-length progress along the path: the
// nearest segment's own Progress plus the length of every segment before
// it.
func (p Path) Progress(q Vec) float64 {
	i := p.nearestSegment(q)
	total := 0.0
	for _, s := range p.Segments[:i] {
		total += s.Length()
	}
	return total + p.Segments[i].Progress(q)
}

// Forward returns the path's unit tangent direction at q's nearest
// segment.
func (p Path) Forward(q Vec) Vec {
	i := p.nearestSegment(q)
	return p.Segments[i].Forward(q)
}
