package bezier

// PathElement holds the destination vertex of one path segment. It has no
// identity of its own beyond its position in the element sequence: the
// segment ending at element i starts at the vertex of element i-1, leaves it
// along that vertex's out-tangent and arrives along element i's in-tangent.
type PathElement struct {
	Vertex CurveVertex
}

// segmentBetween derives the segment connecting two adjacent vertices. The
// segment is straight when neither vertex bends it: the out-tangent of from
// and the in-tangent of to coincide with their anchors.
func segmentBetween(from, to CurveVertex) Segment {
	if from.OutTangent == from.Point && to.InTangent == to.Point {
		return Line{P0: from.Point, P1: to.Point}.Seg()
	}
	return CubicBez{
		P0: from.Point,
		P1: from.OutTangent,
		P2: to.InTangent,
		P3: to.Point,
	}.Seg()
}
