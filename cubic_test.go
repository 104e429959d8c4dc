package bezier

import (
	"math"
	"testing"
)

func TestCubicArclenStraight(t *testing.T) {
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 0.0),
		Pt(1.0, 0.0),
	}
	if got := c.Arclen(1e-6); math.Abs(got-1) > 1e-9 {
		t.Errorf("got arclen %v, want 1", got)
	}
}

func TestCubicArclenBounds(t *testing.T) {
	// Arc length is at least the chord and at most the control polygon.
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, -1), Pt(4, 1)}
	got := c.Arclen(1e-9)
	chord := c.P3.Sub(c.P0).Hypot()
	polygon := c.P1.Sub(c.P0).Hypot() +
		c.P2.Sub(c.P1).Hypot() +
		c.P3.Sub(c.P2).Hypot()
	if got < chord || got > polygon {
		t.Errorf("got arclen %v, want within [%v, %v]", got, chord, polygon)
	}
}

func TestCubicArclenAdditiveUnderSplit(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 3), Pt(4, 3), Pt(5, 0)}
	whole := c.Arclen(1e-9)
	for _, split := range []float64{0.1, 0.3, 0.5, 0.9} {
		left, right := c.SplitAt(split)
		sum := left.Arclen(1e-9) + right.Arclen(1e-9)
		if math.Abs(sum-whole) > 1e-6 {
			t.Errorf("split at %v: got %v + %v = %v, want %v", split, left.Arclen(1e-9), right.Arclen(1e-9), sum, whole)
		}
	}
}

func TestCubicSplitAtMatchesEval(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 3), Pt(4, 3), Pt(5, 0)}
	for _, split := range []float64{0.25, 0.5, 0.75} {
		left, right := c.SplitAt(split)
		if d := left.P3.Distance(right.P0); d != 0 {
			t.Errorf("split at %v: halves do not share an endpoint, distance %v", split, d)
		}
		if d := left.P3.Distance(c.Eval(split)); d > 1e-12 {
			t.Errorf("split at %v: split point is %v away from Eval", split, d)
		}
		const n = 16
		for i := 0; i <= n; i++ {
			u := float64(i) / n
			if d := left.Eval(u).Distance(c.Eval(u * split)); d > 1e-12 {
				t.Errorf("split at %v: left half diverges by %v at u=%v", split, d, u)
			}
			if d := right.Eval(u).Distance(c.Eval(split + u*(1-split))); d > 1e-12 {
				t.Errorf("split at %v: right half diverges by %v at u=%v", split, d, u)
			}
		}
	}
}

func TestCubicSubsegment(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(2, 4), Pt(6, 4), Pt(8, 0)}
	sub := c.Subsegment(0.25, 0.75)
	const n = 16
	for i := 0; i <= n; i++ {
		u := float64(i) / n
		want := c.Eval(0.25 + u*0.5)
		if d := sub.Eval(u).Distance(want); d > 1e-12 {
			t.Errorf("subsegment diverges by %v at u=%v", d, u)
		}
	}
}

func TestSegmentSolveForArclen(t *testing.T) {
	seg := CubicBez{Pt(0, 0), Pt(1, 3), Pt(4, 3), Pt(5, 0)}.Seg()
	total := seg.Arclen(DefaultAccuracy)
	for _, frac := range []float64{0.25, 0.5, 0.75} {
		tt := seg.SolveForArclen(frac*total, DefaultAccuracy)
		prefix, _ := seg.Cubic().SplitAt(tt)
		if got := prefix.Arclen(DefaultAccuracy); math.Abs(got-frac*total) > 1e-4 {
			t.Errorf("frac %v: prefix arclen %v, want %v", frac, got, frac*total)
		}
	}

	line := Line{Pt(0, 0), Pt(10, 0)}.Seg()
	if got := line.SolveForArclen(4, DefaultAccuracy); got != 0.4 {
		t.Errorf("line: got t=%v, want 0.4", got)
	}
	if got := line.SolveForArclen(-1, DefaultAccuracy); got != 0 {
		t.Errorf("line below range: got t=%v, want 0", got)
	}
	if got := line.SolveForArclen(11, DefaultAccuracy); got != 1 {
		t.Errorf("line above range: got t=%v, want 1", got)
	}
}

func TestCubicExtremaSymmetricHump(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 2), Pt(1, 2), Pt(1, 0)}
	ex, n := c.Extrema()
	if n != 1 {
		t.Fatalf("got %d extrema (%v), want 1", n, ex[:n])
	}
	if ex[0] != 0.5 {
		t.Errorf("got extremum at %v, want 0.5", ex[0])
	}
}
