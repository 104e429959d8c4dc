// Package bezier implements the cubic Bézier path model used by
// frame-by-frame vector animation playback, such as rendering Lottie-style
// animated icons.
//
// # Paths
//
// A [Path] is an ordered sequence of [PathElement] values, each holding a
// [CurveVertex]: an anchor point with absolute in/out tangent control
// points. The segment between two adjacent vertices is a straight line when
// neither vertex bends it, and a cubic Bézier otherwise. Paths are built by
// streaming appends ([Path.AddVertex], [Path.AddLine], [Path.AddCurve]) or
// filled by index after pre-sizing with [Path.SetElementCount].
//
// Path is a handle with value semantics around shared contents: copying a
// Path aliases the same element sequence. [Path.CopyUsingTransform] is the
// one deep-copy operation.
//
// # Arc length and trimming
//
// [Path.Length] measures total arc length lazily, with straight segments
// exact and cubic segments integrated by adaptive Gauss–Legendre quadrature,
// and caches the result until the next structural mutation. The length is the
// path's one-dimensional coordinate space: [Path.Trim] cuts the path to a
// [from, to] length window with a cyclic offset, splitting straddling
// segments with De Casteljau subdivision and wrapping around the path
// boundary when the window does.
//
// # Bounding boxes
//
// [PathsBoundingBox] computes the exact axis-aligned bounds of a batch of
// paths. [PathsBoundingBoxParallel] computes the same rectangle using a
// reusable [BoundingBoxContext] scratch buffer and concurrent per-path point
// extraction.
//
// # Scope
//
// The package builds, measures, serializes, and trims paths. Stroking, fill
// rules, intersections and booleans are out of scope; rendering is delegated
// through the narrow [PathBuilder] interface.
package bezier
