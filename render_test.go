package bezier

import (
	"fmt"
	"testing"
)

type recordingBuilder struct {
	cmds []string
}

func (r *recordingBuilder) MoveTo(pt Point) {
	r.cmds = append(r.cmds, fmt.Sprintf("M%v", pt))
}

func (r *recordingBuilder) LineTo(pt Point) {
	r.cmds = append(r.cmds, fmt.Sprintf("L%v", pt))
}

func (r *recordingBuilder) CubicTo(c1, c2, to Point) {
	r.cmds = append(r.cmds, fmt.Sprintf("C%v %v %v", c1, c2, to))
}

func (r *recordingBuilder) Close() {
	r.cmds = append(r.cmds, "Z")
}

func TestRenderOpenPath(t *testing.T) {
	p := NewPathWithStart(VertexAtPoint(Pt(0, 0)))
	p.AddLine(Pt(4, 0))
	p.AddCurve(Pt(4, 4), Pt(6, 0), Pt(6, 4))

	var b recordingBuilder
	p.Render(&b)
	diff(t, []string{
		"M(0, 0)",
		"L(4, 0)",
		"C(6, 0) (6, 4) (4, 4)",
	}, b.cmds)
}

func TestRenderClosedPathStraightClosure(t *testing.T) {
	p := unitSquare()
	var b recordingBuilder
	p.Render(&b)
	diff(t, []string{
		"M(0, 0)",
		"L(1, 0)",
		"L(1, 1)",
		"L(0, 1)",
		"Z",
	}, b.cmds)
}

func TestRenderClosedPathCurvedClosure(t *testing.T) {
	p := NewPathWithStart(Vertex(Pt(0, 0), Pt(0, -2), Pt(0, 0)))
	p.AddLine(Pt(4, 0))
	if err := p.UpdateVertex(Vertex(Pt(4, 0), Pt(4, 0), Pt(4, -2)), 1, true); err != nil {
		t.Fatal(err)
	}
	p.Close()

	var b recordingBuilder
	p.Render(&b)
	diff(t, []string{
		"M(0, 0)",
		"L(4, 0)",
		"C(4, -2) (0, -2) (0, 0)",
		"Z",
	}, b.cmds)
}

func TestRenderEmptyPath(t *testing.T) {
	var b recordingBuilder
	NewPath().Render(&b)
	if len(b.cmds) != 0 {
		t.Errorf("got commands %v, want none", b.cmds)
	}
}
