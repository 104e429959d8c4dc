package bezier

type SegmentKind int

const (
	// A straight line segment.
	LineKind SegmentKind = iota + 1
	// A cubic Bézier segment.
	CubicKind
)

// Segment represents one rendered segment of a path. This type acts as a
// tagged union of [Line] and [CubicBez], the only segment kinds a vertex
// sequence produces.
type Segment struct {
	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// Seg wraps the line in a Segment.
func (l Line) Seg() Segment {
	return Segment{Kind: LineKind, P0: l.P0, P1: l.P1}
}

// Seg wraps the cubic in a Segment.
func (c CubicBez) Seg() Segment {
	return Segment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}

// Line returns the line represented by this segment. This is only valid when
// Kind == LineKind.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Cubic converts seg to a cubic Bézier. This is valid for any Kind.
func (seg Segment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		p0 := seg.P0
		p1 := seg.P1
		return CubicBez{p0, p0, p1, p1}
	default:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	}
}

func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	default:
		return seg.Cubic().Eval(t)
	}
}

func (seg Segment) Subsegment(start, end float64) Segment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Subsegment(start, end).Seg()
	default:
		return seg.Cubic().Subsegment(start, end).Seg()
	}
}

func (seg Segment) Start() Point {
	return seg.P0
}

func (seg Segment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	default:
		return seg.P3
	}
}

func (seg Segment) Arclen(accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Arclen(accuracy)
	default:
		return seg.Cubic().Arclen(accuracy)
	}
}

func (seg Segment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	default:
		return seg.Cubic().BoundingBox()
	}
}

func (seg Segment) Transform(aff Affine) Segment {
	return Segment{
		Kind: seg.Kind,
		P0:   seg.P0.Transform(aff),
		P1:   seg.P1.Transform(aff),
		P2:   seg.P2.Transform(aff),
		P3:   seg.P3.Transform(aff),
	}
}

// SolveForArclen solves for the parameter whose prefix of the segment has
// the given arc length. Lines solve exactly; cubics bisect on the monotone
// cumulative arc length, which is deterministic for a fixed accuracy.
func (seg Segment) SolveForArclen(arclen, accuracy float64) float64 {
	if seg.Kind == LineKind {
		return clamp01(seg.Line().SolveForArclen(arclen, accuracy))
	}
	c := seg.Cubic()
	if arclen <= 0.0 {
		return 0.0
	}
	if arclen >= c.Arclen(accuracy) {
		return 1.0
	}
	lo, hi := 0.0, 1.0
	for range 32 {
		mid := 0.5 * (lo + hi)
		prefix, _ := c.SplitAt(mid)
		if prefix.Arclen(accuracy) < arclen {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

func clamp01(t float64) float64 {
	return min(max(t, 0.0), 1.0)
}
