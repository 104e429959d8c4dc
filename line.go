package bezier

// Line represents a straight line segment.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line. It is exact; the accuracy argument
// is ignored.
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

// SolveForArclen returns the parameter t whose prefix [0, t] has the given
// arc length. Lines have constant speed, so this is a plain division.
func (l Line) SolveForArclen(arclen, accuracy float64) float64 {
	return arclen / l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

func (l Line) Subdivide() (Line, Line) {
	return l.Subsegment(0.0, 0.5), l.Subsegment(0.5, 1.0)
}

func (l Line) BoundingBox() Rect {
	return Rect{
		X0: l.P0.X,
		Y0: l.P0.Y,
		X1: l.P1.X,
		Y1: l.P1.Y,
	}.Abs()
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
