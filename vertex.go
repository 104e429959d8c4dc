package bezier

// CurveVertex is one anchor point of a path together with its incoming and
// outgoing control points. Tangents are absolute positions, not offsets from
// the anchor.
//
// A vertex whose tangents coincide with its anchor is a corner: the adjacent
// segments meet it in a straight line.
//
// CurveVertex is a value; it is replaced wholesale, never mutated in place.
type CurveVertex struct {
	Point      Point
	InTangent  Point
	OutTangent Point
}

// Vertex returns a vertex with explicit tangent control points.
func Vertex(point, inTangent, outTangent Point) CurveVertex {
	return CurveVertex{
		Point:      point,
		InTangent:  inTangent,
		OutTangent: outTangent,
	}
}

// VertexAtPoint returns a corner vertex: both tangents coincide with the
// anchor.
func VertexAtPoint(pt Point) CurveVertex {
	return CurveVertex{
		Point:      pt,
		InTangent:  pt,
		OutTangent: pt,
	}
}

// Transform returns the vertex with aff applied to the anchor and both
// tangents.
func (v CurveVertex) Transform(aff Affine) CurveVertex {
	return CurveVertex{
		Point:      v.Point.Transform(aff),
		InTangent:  v.InTangent.Transform(aff),
		OutTangent: v.OutTangent.Transform(aff),
	}
}

func (v CurveVertex) IsInf() bool {
	return v.Point.IsInf() || v.InTangent.IsInf() || v.OutTangent.IsInf()
}

func (v CurveVertex) IsNaN() bool {
	return v.Point.IsNaN() || v.InTangent.IsNaN() || v.OutTangent.IsNaN()
}
