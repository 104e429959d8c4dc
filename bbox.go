package bezier

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Candidate points per segment: the two endpoints plus up to MaxExtrema
// interior derivative extrema.
const bboxSlotsPerSegment = 2 + MaxExtrema

// PathsBoundingBox returns the smallest axis-aligned rectangle enclosing
// every path in the batch. Cubic segments are bounded exactly via their
// derivative extrema. A lone starting vertex contributes its anchor point.
// An empty batch, or one containing only empty paths, returns the zero
// [Rect].
func PathsBoundingBox(paths []Path) Rect {
	var bbox Rect
	var nonEmpty bool
	union := func(r Rect) {
		if !nonEmpty {
			bbox = r
			nonEmpty = true
		} else {
			bbox = bbox.Union(r)
		}
	}
	for _, p := range paths {
		if len(p.c.elements) == 1 {
			pt := p.c.elements[0].Vertex.Point
			union(NewRectFromPoints(pt, pt))
			continue
		}
		for seg := range p.Segments() {
			union(seg.BoundingBox())
		}
	}
	return bbox
}

// BoundingBoxContext is a reusable scratch buffer for
// [PathsBoundingBoxParallel]. Its point buffers grow as needed and are never
// shrunk, amortizing allocation across calls.
//
// A context is exclusively owned by the call that holds it; sharing one
// context across concurrent calls is not safe.
type BoundingBoxContext struct {
	ptsX []float64
	ptsY []float64
}

// NewBoundingBoxContext returns an empty context.
func NewBoundingBoxContext() *BoundingBoxContext {
	return &BoundingBoxContext{}
}

func (ctx *BoundingBoxContext) reserve(n int) {
	if cap(ctx.ptsX) < n {
		ctx.ptsX = make([]float64, n)
		ctx.ptsY = make([]float64, n)
	}
	ctx.ptsX = ctx.ptsX[:n]
	ctx.ptsY = ctx.ptsY[:n]
}

// PathsBoundingBoxParallel computes the same rectangle as
// [PathsBoundingBox], filling ctx's point buffers concurrently across paths
// before a single-threaded min/max reduction. Concurrency is a performance
// detail: for any fixed input the two entry points return equal rectangles.
//
// The paths are treated as read-only for the duration of the call; mutating
// a path while it is being measured is the caller's bug.
func PathsBoundingBoxParallel(ctx *BoundingBoxContext, paths []Path) Rect {
	offsets := make([]int, len(paths))
	var total int
	for i, p := range paths {
		offsets[i] = total
		total += bboxPointCount(p)
	}
	if total == 0 {
		return Rect{}
	}
	ctx.reserve(total)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range paths {
		n := bboxPointCount(p)
		if n == 0 {
			continue
		}
		off := offsets[i]
		g.Go(func() error {
			fillPathPoints(p, ctx.ptsX[off:off+n], ctx.ptsY[off:off+n])
			return nil
		})
	}
	// The workers are pure buffer fills and report no errors.
	_ = g.Wait()

	minX, maxX := ctx.ptsX[0], ctx.ptsX[0]
	minY, maxY := ctx.ptsY[0], ctx.ptsY[0]
	for _, x := range ctx.ptsX[1:] {
		minX = min(minX, x)
		maxX = max(maxX, x)
	}
	for _, y := range ctx.ptsY[1:] {
		minY = min(minY, y)
		maxY = max(maxY, y)
	}
	return Rect{X0: minX, Y0: minY, X1: maxX, Y1: maxY}
}

func bboxSegmentCount(p Path) int {
	n := len(p.c.elements)
	if n < 2 {
		return 0
	}
	if p.IsClosed() {
		return n
	}
	return n - 1
}

func bboxPointCount(p Path) int {
	if len(p.c.elements) == 1 {
		return 1
	}
	return bboxSegmentCount(p) * bboxSlotsPerSegment
}

// fillPathPoints writes exactly len(x) candidate points for p. Slots not
// needed by a segment are filled with a duplicate of its endpoint, which is
// harmless to the min/max reduction and keeps the layout fixed-stride.
func fillPathPoints(p Path, x, y []float64) {
	var i int
	put := func(pt Point) {
		x[i] = pt.X
		y[i] = pt.Y
		i++
	}
	if len(p.c.elements) == 1 {
		put(p.c.elements[0].Vertex.Point)
		return
	}
	for seg := range p.Segments() {
		put(seg.Start())
		put(seg.End())
		var n int
		if seg.Kind == CubicKind {
			c := seg.Cubic()
			ex, m := c.Extrema()
			for _, t := range ex[:m] {
				put(c.Eval(t))
				n++
			}
		}
		for ; n < MaxExtrema; n++ {
			put(seg.End())
		}
	}
}
