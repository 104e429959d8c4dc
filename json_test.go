package bezier

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	p := NewPathWithStart(VertexAtPoint(Pt(0.1, -2)))
	p.AddCurve(Pt(10, 0), Pt(3, 4.5), Pt(7, -4.25))
	p.AddLine(Pt(10, 10))
	p.AddCurve(Pt(0.30000000000000004, 1e-9), Pt(10, 12), Pt(2, 3))
	p.Close()

	first, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	q, err := ParsePath(first)
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("round trip changed the serialized form:\n%s\n%s", first, second)
	}
	diff(t, p.Elements(), q.Elements())
	if !q.IsClosed() {
		t.Error("round trip lost the closed flag")
	}
}

func TestJSONRoundTripEmptyPath(t *testing.T) {
	first, err := json.Marshal(NewPath())
	if err != nil {
		t.Fatal(err)
	}
	q, err := ParsePath(first)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(q.Elements()); n != 0 {
		t.Errorf("got %d elements, want 0", n)
	}
	if _, ok := q.Closed(); ok {
		t.Error("empty path grew an explicit closed flag")
	}
}

func TestJSONOmitsDefaults(t *testing.T) {
	p := NewPathWithStart(VertexAtPoint(Pt(1, 2)))
	p.AddLine(Pt(3, 4))
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"elements":[{"p":[1,2]},{"p":[3,4]}]}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestParsePathRejectsInvalidData(t *testing.T) {
	for _, tt := range []struct {
		name string
		data string
	}{
		{"malformed JSON", `{`},
		{"wrong arity", `{"elements":[{"p":[1]}]}`},
		{"too many components", `{"elements":[{"p":[1,2,3]}]}`},
		{"missing anchor", `{"elements":[{"i":[1,2]}]}`},
		{"non-numeric coordinate", `{"elements":[{"p":["a","b"]}]}`},
		{"wrong elements type", `{"elements":42}`},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePath([]byte(tt.data))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("got error %v, want *ParseError", err)
			}
		})
	}
}

func TestParsePathDefaultsTangentsToAnchor(t *testing.T) {
	p, err := ParsePath([]byte(`{"elements":[{"p":[1,2]},{"p":[5,6],"i":[4,4]}],"closed":false}`))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []PathElement{
		{Vertex: VertexAtPoint(Pt(1, 2))},
		{Vertex: Vertex(Pt(5, 6), Pt(4, 4), Pt(5, 6))},
	}, p.Elements())
	closed, ok := p.Closed()
	if !ok || closed {
		t.Errorf("got closed flag (%v, %v), want explicitly open", closed, ok)
	}
}
