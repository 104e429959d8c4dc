package bezier

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ParseError describes structurally invalid serialized path data. A failed
// parse rejects the input entirely; no partially built path escapes.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "bezier: invalid path data: " + e.Reason
}

// The wire form is an object with an "elements" list in traversal order and
// an optional "closed" flag. Each element carries its anchor "p" and,
// when they differ from the anchor, the absolute in/out tangents "i" and
// "o". Coordinates are two-element arrays.

type jsonPoint struct {
	pt  Point
	set bool
}

func (jp *jsonPoint) UnmarshalJSON(data []byte) error {
	var coords []float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return &ParseError{Reason: "coordinate is not a number array"}
	}
	if len(coords) != 2 {
		return &ParseError{Reason: fmt.Sprintf("coordinate has %d components, want 2", len(coords))}
	}
	jp.pt = Pt(coords[0], coords[1])
	jp.set = true
	return nil
}

func (jp jsonPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{jp.pt.X, jp.pt.Y})
}

type jsonVertex struct {
	P jsonPoint  `json:"p"`
	I *jsonPoint `json:"i,omitempty"`
	O *jsonPoint `json:"o,omitempty"`
}

type jsonPath struct {
	Elements []jsonVertex `json:"elements"`
	Closed   *bool        `json:"closed,omitempty"`
}

// ParsePath rebuilds a path from its serialized form. It returns a
// [*ParseError] when the data is structurally invalid. The rebuilt path's
// length is left unmeasured.
func ParsePath(data []byte) (Path, error) {
	var p Path
	if err := p.UnmarshalJSON(data); err != nil {
		return Path{}, err
	}
	return p, nil
}

// UnmarshalJSON implements [encoding/json.Unmarshaler]. See [ParsePath].
func (p *Path) UnmarshalJSON(data []byte) error {
	var raw jsonPath
	if err := json.Unmarshal(data, &raw); err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return pe
		}
		return &ParseError{Reason: err.Error()}
	}
	c := &pathContents{}
	if len(raw.Elements) > 0 {
		c.elements = make([]PathElement, 0, len(raw.Elements))
	}
	for i, el := range raw.Elements {
		if !el.P.set {
			return &ParseError{Reason: fmt.Sprintf("element %d is missing its anchor point", i)}
		}
		v := VertexAtPoint(el.P.pt)
		if el.I != nil {
			v.InTangent = el.I.pt
		}
		if el.O != nil {
			v.OutTangent = el.O.pt
		}
		c.elements = append(c.elements, PathElement{Vertex: v})
	}
	if raw.Closed != nil {
		c.closed.set(*raw.Closed)
	}
	p.c = c
	return nil
}

// MarshalJSON implements [encoding/json.Marshaler]. It is the inverse of
// [ParsePath] and round-trips losslessly: coordinates are encoded with the
// shortest representation that reparses to the same float64.
func (p Path) MarshalJSON() ([]byte, error) {
	raw := jsonPath{
		Elements: make([]jsonVertex, 0, len(p.c.elements)),
	}
	for _, el := range p.c.elements {
		v := el.Vertex
		jv := jsonVertex{P: jsonPoint{pt: v.Point, set: true}}
		if v.InTangent != v.Point {
			jv.I = &jsonPoint{pt: v.InTangent, set: true}
		}
		if v.OutTangent != v.Point {
			jv.O = &jsonPoint{pt: v.OutTangent, set: true}
		}
		raw.Elements = append(raw.Elements, jv)
	}
	if p.c.closed.isSet {
		closed := p.c.closed.value
		raw.Closed = &closed
	}
	return json.Marshal(raw)
}
