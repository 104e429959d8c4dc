package bezier

import (
	"math"
)

// TrimPathPosition is one kept region of a path, expressed in the path's own
// length coordinate space.
type TrimPathPosition struct {
	Start float64
	End   float64
}

// Trim cuts the path to the region between fromLength and toLength, shifted
// by offsetLength. All three arguments live in the path's length coordinate
// space and are looped over the path: values outside [0, length] wrap around
// from finish to start, whether or not the path is closed.
//
// After normalization into [0, length), a window whose start lies before its
// end keeps a single contiguous arc and yields at most one sub-path. A
// window that wraps past the path boundary keeps the complement, that is
// the arc from the path start to the window end plus the arc from the
// window start to the path end, and yields up to two sub-paths.
//
// Degenerate inputs never fail: fromLength == toLength and zero-length paths
// yield no sub-paths, and a window at least as long as the path returns the
// path itself, unsplit, with its closed flag intact. In that one unsplit
// case the result aliases p's contents. All other results are freshly built,
// never closed, and share no state with p or each other.
func (p Path) Trim(fromLength, toLength, offsetLength float64) []Path {
	if fromLength == toLength {
		return nil
	}
	length := p.Length()
	if length == 0 {
		return nil
	}
	if toLength-fromLength >= length {
		return []Path{p}
	}

	start := math.Mod(fromLength+offsetLength, length)
	if start < 0 {
		start += length
	}
	end := math.Mod(toLength+offsetLength, length)
	if end < 0 {
		end += length
	}
	// Keep the cuts inside a half-open [0, length) representation before
	// branching, so the boundary cases collapse into start == end.
	if start == length {
		start = 0
	}
	if end == 0 {
		end = length
	}
	if start == end || (start == 0 && end == length) {
		return []Path{p}
	}
	if start > end {
		return p.trimAtLengths([]TrimPathPosition{
			{Start: 0, End: end},
			{Start: start, End: length},
		})
	}
	return p.trimAtLengths([]TrimPathPosition{{Start: start, End: end}})
}

// trimAtLengths builds one open sub-path per kept region. Positions must be
// ordered with Start <= End and lie within [0, total length].
func (p Path) trimAtLengths(positions []TrimPathPosition) []Path {
	type measured struct {
		seg        Segment
		start, end float64
	}
	var segs []measured
	var acc float64
	for seg := range p.Segments() {
		l := seg.Arclen(DefaultAccuracy)
		segs = append(segs, measured{seg: seg, start: acc, end: acc + l})
		acc += l
	}

	out := make([]Path, 0, len(positions))
	for _, pos := range positions {
		sub := NewPath()
		for _, m := range segs {
			if m.end <= pos.Start || m.start >= pos.End {
				continue
			}
			t0, t1 := 0.0, 1.0
			if pos.Start > m.start {
				t0 = m.seg.SolveForArclen(pos.Start-m.start, DefaultAccuracy)
			}
			if pos.End < m.end {
				t1 = m.seg.SolveForArclen(pos.End-m.start, DefaultAccuracy)
			}
			appendSegment(sub, m.seg.Subsegment(t0, t1))
		}
		sub.SetClosed(false)
		out = append(out, sub)
	}
	return out
}

// appendSegment grows a path under construction by one segment, starting the
// path at the segment's start point if it is empty. Adjacent segments are
// assumed to connect, which holds for subsegments of one traversal.
func appendSegment(p Path, seg Segment) {
	if len(p.c.elements) == 0 {
		p.MoveToStartPoint(VertexAtPoint(seg.Start()))
	}
	switch seg.Kind {
	case LineKind:
		p.AddLine(seg.P1)
	default:
		p.AddCurve(seg.P3, seg.P1, seg.P2)
	}
}
