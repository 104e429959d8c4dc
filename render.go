package bezier

// PathBuilder receives a path's drawing commands in traversal order.
// Implementations translate them into a platform-native renderable path;
// this package never inspects the result.
type PathBuilder interface {
	MoveTo(pt Point)
	LineTo(pt Point)
	CubicTo(c1, c2, to Point)
	Close()
}

// Render replays the path into b: a move to the first vertex, one line or
// curve per subsequent element, and, when the path is closed, the closing
// segment followed by a close command. The closing segment is emitted
// explicitly only when it curves; a straight closure is left to the
// builder's close command.
func (p Path) Render(b PathBuilder) {
	els := p.c.elements
	if len(els) == 0 {
		return
	}
	b.MoveTo(els[0].Vertex.Point)
	for i := 1; i < len(els); i++ {
		emitSegment(b, segmentBetween(els[i-1].Vertex, els[i].Vertex))
	}
	if p.IsClosed() {
		if len(els) >= 2 {
			if seg := segmentBetween(els[len(els)-1].Vertex, els[0].Vertex); seg.Kind == CubicKind {
				emitSegment(b, seg)
			}
		}
		b.Close()
	}
}

func emitSegment(b PathBuilder, seg Segment) {
	switch seg.Kind {
	case LineKind:
		b.LineTo(seg.P1)
	default:
		b.CubicTo(seg.P1, seg.P2, seg.P3)
	}
}
