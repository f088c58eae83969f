package spatialmath

// ArcProjectionKind classifies where a query point falls relative to an
// Arc's swept range.
type ArcProjectionKind int

const (
	// OnArc means the point's angular position falls within the arc's
	// traversed extent.
	OnArc ArcProjectionKind = iota
	// Start means the point classifies closer to (or before) the arc's
	// start endpoint.
	Start
	// End means the point classifies closer to (or past) the arc's end
	// endpoint.
	End
)

// Arc is a circular arc: a Circle plus the start/end angles and the
// direction of travel between them.
type Arc struct {
	Circle           Circle
	StartA, EndA     Angle
	Direction        Direction
}

// Length is radius times the traversed angular extent.
func (a Arc) Length() float64 {
	return a.Circle.Radius * float64(a.StartA.AngleTo(a.EndA, a.Direction))
}

// StartPoint returns the point on the circle at the arc's start angle.
func (a Arc) StartPoint() Vec { return a.Circle.PointAtAngle(a.StartA) }

// EndPoint returns the point on the circle at the arc's end angle.
func (a Arc) EndPoint() Vec { return a.Circle.PointAtAngle(a.EndA) }

// Classify determines whether p, projected angularly onto the circle,
// falls within the arc's swept range, or nearer one of its two endpoints.
// Ties in distance to the two endpoints favor Start.
func (a Arc) Classify(p Vec) ArcProjectionKind {
	angleAtPoint := a.Circle.AngleAt(p)
	angleToEnd := a.StartA.AngleTo(a.EndA, a.Direction)
	angleToPoint := a.StartA.AngleTo(angleAtPoint, a.Direction)

	if float64(angleToPoint) < float64(angleToEnd) {
		return OnArc
	}

	startPoint := a.StartPoint()
	endPoint := a.EndPoint()

	distStart := normSquared(sub(p, startPoint))
	distEnd := normSquared(sub(p, endPoint))
	if distStart <= distEnd {
		return Start
	}
	return End
}

// Project returns the closest point on the arc to p.
func (a Arc) Project(p Vec) Vec {
	switch a.Classify(p) {
	case OnArc:
		delta := sub(p, a.Circle.Center)
		return add(a.Circle.Center, scale(a.Circle.Radius, unit(delta)))
	case Start:
		return a.StartPoint()
	default:
		return a.EndPoint()
	}
}

// Progress returns the arc-length-parameterized progress of p along the
// arc, starting at zero at StartA; before Start it is negative, past End it
// exceeds Length().
func (a Arc) Progress(p Vec) float64 {
	switch a.Classify(p) {
	case OnArc:
		angleAtPoint := a.Circle.AngleAt(p)
		angleToPoint := a.StartA.AngleTo(angleAtPoint, a.Direction)
		return a.Circle.Radius * float64(angleToPoint)
	case Start:
		startPoint := a.StartPoint()
		tangent := a.Circle.Tangent(a.StartA, a.Direction)
		return dot(sub(p, startPoint), tangent)
	default:
		endPoint := a.EndPoint()
		tangent := a.Circle.Tangent(a.EndA, a.Direction)
		return a.Length() + dot(sub(p, endPoint), tangent)
	}
}

// Forward returns the unit tangent at p's projection onto the arc. On the
// arc's interior the tangent is scaled by radius/distance-to-center so that
// the progress field's gradient keeps the correct magnitude off the curve;
// at the endpoints it is the endpoint tangent.
func (a Arc) Forward(p Vec) Vec {
	switch a.Classify(p) {
	case OnArc:
		delta := sub(p, a.Circle.Center)
		distToCenter := norm(delta)
		angleAtPoint := a.Circle.AngleAt(p)
		tangent := a.Circle.Tangent(angleAtPoint, a.Direction)
		if distToCenter == 0 {
			return Vec{}
		}
		return scale(a.Circle.Radius/distToCenter, tangent)
	case Start:
		return a.Circle.Tangent(a.StartA, a.Direction)
	default:
		return a.Circle.Tangent(a.EndA, a.Direction)
	}
}
