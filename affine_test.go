package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAffineApply(t *testing.T) {
	diff(t, Pt(4, 6), Pt(3, 4).Transform(Translate(Vec(1, 2))))
	diff(t, Pt(6, 12), Pt(3, 4).Transform(Scale(2, 3)))

	// A.Mul(B) applies B first.
	aff := Translate(Vec(1, 0)).Mul(Scale(2, 2))
	diff(t, Pt(7, 8), Pt(3, 4).Transform(aff))
}

func TestAffineRotateAbout(t *testing.T) {
	center := Pt(2, 3)
	aff := RotateAbout(math.Pi/2, center)
	diff(t, center, center.Transform(aff), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(2, 4), Pt(3, 3).Transform(aff), cmpopts.EquateApprox(0, 1e-12))
}

func TestAffineIdentity(t *testing.T) {
	if !Identity.IsIdentity() {
		t.Error("Identity is not the identity")
	}
	diff(t, Pt(3, 4), Pt(3, 4).Transform(Identity))
}
