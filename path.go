package bezier

import (
	"errors"
	"iter"
	"slices"
)

// ErrIndexOutOfRange is returned by [Path.UpdateVertex] when the element
// index does not exist. The path is left unmodified.
var ErrIndexOutOfRange = errors.New("bezier: vertex index out of range")

// pathContents is the shared core of a [Path]: the element sequence, the
// tri-state closed flag, and the lazily computed length.
//
// The length cache is cleared by markChanged; every structural mutation must
// funnel through it before returning.
type pathContents struct {
	elements []PathElement
	closed   option[bool]
	length   option[float64]
}

func (c *pathContents) markChanged() {
	c.length.clear()
}

// Path is a value-semantics handle around shared path contents.
//
// Copying a Path copies the handle, not the contents: both copies alias the
// same element sequence, and mutations through either are visible through
// both. This is deliberate, so that an untrimmed sub-path can reference its
// source cheaply. [Path.CopyUsingTransform] is the one deep-copy operation.
//
// The zero value is not usable; create paths with [NewPath],
// [NewPathWithStart] or [ParsePath].
type Path struct {
	c *pathContents
}

// NewPath returns an empty path.
func NewPath() Path {
	return Path{c: &pathContents{}}
}

// NewPathWithStart returns a path containing a single starting vertex.
func NewPathWithStart(v CurveVertex) Path {
	return Path{c: &pathContents{
		elements: []PathElement{{Vertex: v}},
	}}
}

// Elements returns the path's element sequence in traversal order. The slice
// is the live backing store, not a copy; treat it as read-only or use
// [Path.CopyElements].
func (p Path) Elements() []PathElement {
	return p.c.elements
}

// CopyElements returns an independent copy of the element sequence.
func (p Path) CopyElements() []PathElement {
	return slices.Clone(p.c.elements)
}

// Closed reports the path's closed flag. ok is false when the flag was never
// set either way.
func (p Path) Closed() (closed, ok bool) {
	return p.c.closed.value, p.c.closed.isSet
}

// IsClosed reports whether the path is explicitly closed. An unset flag
// counts as open.
func (p Path) IsClosed() bool {
	return p.c.closed.isSet && p.c.closed.value
}

// SetClosed sets the closed flag explicitly and invalidates the cached
// length, since the implicit closing segment contributes to it.
func (p Path) SetClosed(closed bool) {
	p.c.closed.set(closed)
	p.c.markChanged()
}

// Close marks the path as closed: its final vertex connects back to its
// first by an implicit segment.
func (p Path) Close() {
	p.SetClosed(true)
}

// MoveToStartPoint resets the path to contain only the given starting
// vertex, discarding prior elements.
func (p Path) MoveToStartPoint(v CurveVertex) {
	p.c.elements = append(p.c.elements[:0], PathElement{Vertex: v})
	p.c.markChanged()
}

// AddVertex appends a new element ending at v.
func (p Path) AddVertex(v CurveVertex) {
	p.c.elements = append(p.c.elements, PathElement{Vertex: v})
	p.c.markChanged()
}

// AddElement appends a prepared element, bypassing vertex derivation.
func (p Path) AddElement(el PathElement) {
	p.c.elements = append(p.c.elements, el)
	p.c.markChanged()
}

// AddLine appends a straight segment to the given point. The previous
// vertex's out-tangent is flattened onto its anchor so the connecting
// segment renders as a line. On an empty path this starts the path at to.
func (p Path) AddLine(to Point) {
	if n := len(p.c.elements); n > 0 {
		prev := &p.c.elements[n-1].Vertex
		prev.OutTangent = prev.Point
	}
	p.AddVertex(VertexAtPoint(to))
}

// AddCurve appends a cubic segment to the given point. outTangent is the
// control point leaving the previous vertex, inTangent the control point
// arriving at to; both are absolute positions. On an empty path this starts
// the path at to.
func (p Path) AddCurve(to, outTangent, inTangent Point) {
	if n := len(p.c.elements); n > 0 {
		p.c.elements[n-1].Vertex.OutTangent = outTangent
	}
	p.AddVertex(Vertex(to, inTangent, to))
}

// ReserveCapacity pre-allocates room for n total elements. It is purely a
// performance hint and has no observable effect.
func (p Path) ReserveCapacity(n int) {
	if extra := n - len(p.c.elements); extra > 0 {
		p.c.elements = slices.Grow(p.c.elements, extra)
	}
}

// SetElementCount truncates or pads the element sequence to exactly n
// elements. Padding elements are zero-valued placeholders, meant to be
// filled in by index with [Path.UpdateVertex].
func (p Path) SetElementCount(n int) {
	if n <= len(p.c.elements) {
		p.c.elements = p.c.elements[:n]
	} else {
		p.c.elements = append(p.c.elements, make([]PathElement, n-len(p.c.elements))...)
	}
	p.c.markChanged()
}

// UpdateVertex replaces the vertex of the element at index at. It returns
// [ErrIndexOutOfRange], leaving the path untouched, when no such element
// exists.
//
// When remeasure is false the length cache is deliberately left alone; the
// caller asserts the edit does not change the path's arc length (for
// example, rewriting a tangent on a straight-line vertex). Pass true for any
// edit that can move geometry.
func (p Path) UpdateVertex(v CurveVertex, at int, remeasure bool) error {
	if at < 0 || at >= len(p.c.elements) {
		return ErrIndexOutOfRange
	}
	p.c.elements[at].Vertex = v
	if remeasure {
		p.c.markChanged()
	}
	return nil
}

// InvalidateLength discards the cached length, forcing the next call to
// [Path.Length] to remeasure.
func (p Path) InvalidateLength() {
	p.c.markChanged()
}

// Segments returns an iterator over the path's rendered segments in
// traversal order, including the implicit closing segment when the path is
// closed.
func (p Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		els := p.c.elements
		for i := 1; i < len(els); i++ {
			if !yield(segmentBetween(els[i-1].Vertex, els[i].Vertex)) {
				return
			}
		}
		if p.IsClosed() && len(els) >= 2 {
			yield(segmentBetween(els[len(els)-1].Vertex, els[0].Vertex))
		}
	}
}

// Length returns the path's total arc length: the sum of per-segment arc
// lengths, with straight segments measured exactly and cubic segments by
// Gauss–Legendre quadrature. A path with fewer than two elements has length
// 0. The result is cached until the next structural mutation.
func (p Path) Length() float64 {
	if p.c.length.isSet {
		return p.c.length.value
	}
	var total float64
	for seg := range p.Segments() {
		total += seg.Arclen(DefaultAccuracy)
	}
	p.c.length.set(total)
	return total
}

// CopyMappingPoints returns a new, independent path with f applied to every
// anchor and tangent point.
func (p Path) CopyMappingPoints(f func(Point) Point) Path {
	c := &pathContents{
		elements: make([]PathElement, len(p.c.elements)),
		closed:   p.c.closed,
	}
	for i, el := range p.c.elements {
		c.elements[i] = PathElement{Vertex: CurveVertex{
			Point:      f(el.Vertex.Point),
			InTangent:  f(el.Vertex.InTangent),
			OutTangent: f(el.Vertex.OutTangent),
		}}
	}
	return Path{c: c}
}

// CopyUsingTransform returns a new, independent path with aff applied
// pointwise to every vertex and tangent. This is the one deep-copy
// operation; the result shares no state with p.
func (p Path) CopyUsingTransform(aff Affine) Path {
	return p.CopyMappingPoints(func(pt Point) Point {
		return pt.Transform(aff)
	})
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) clear() {
	opt.isSet = false
	opt.value = *new(T)
}
