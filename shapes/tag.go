package shapes

import (
	"errors"
	"fmt"
)

var ErrUnknownTag = errors.New("unknown element tag")

// Tag keys one reference element: shape, polynomial order and whether face and
// cell interior nodes are dropped
type Tag struct {
	Shape       Shape
	Order       int
	Serendipity bool
}

func NewTag(s Shape, order int, serendip bool) (t Tag, err error) {
	t = Tag{Shape: s, Order: order, Serendipity: serendip}
	if err = t.Validate(); err != nil {
		t = Tag{}
	}
	return
}

func (t Tag) Validate() error {
	switch {
	case !t.Shape.Valid():
		return fmt.Errorf("%w: shape %d", ErrUnknownTag, uint8(t.Shape))
	case t.Order < 0:
		return fmt.Errorf("%w: negative order %d", ErrUnknownTag, t.Order)
	case t.Shape == Point && t.Order != 0:
		return fmt.Errorf("%w: point of order %d", ErrUnknownTag, t.Order)
	}
	return nil
}

// Canonical folds the serendipity flag whenever it removes no node, so that
// equal node sets share one key
func (t Tag) Canonical() Tag {
	if t.Serendipity && t.NumNodes() == (Tag{Shape: t.Shape, Order: t.Order}).NumNodes() {
		t.Serendipity = false
	}
	return t
}

func (t Tag) String() string {
	if t.Serendipity {
		return fmt.Sprintf("%s%d-serendipity", t.Shape, t.Order)
	}
	return fmt.Sprintf("%s%d", t.Shape, t.Order)
}

// Encode packs the tag into a single integer, the key handed across the mesh
// generator boundary
func (t Tag) Encode() (code int) {
	code = int(t.Shape)<<16 | t.Order<<1
	if t.Serendipity {
		code |= 1
	}
	return
}

func Decode(code int) (t Tag, err error) {
	if code < 0 {
		return Tag{}, fmt.Errorf("%w: code %d", ErrUnknownTag, code)
	}
	return NewTag(Shape(code>>16), (code&0xFFFF)>>1, code&1 == 1)
}

// NumNodes is the number of reference nodes: vertices, then edge interiors,
// then face interiors, then the cell interior
func (t Tag) NumNodes() int {
	p := t.Order
	if t.Shape == Point || p == 0 {
		return 1
	}
	nv, ne := t.Shape.NumVertices(), t.Shape.NumEdges()
	boundary := nv + ne*(p-1)
	switch t.Shape {
	case Line:
		return p + 1
	case Triangle:
		if t.Serendipity {
			return boundary
		}
		return (p + 1) * (p + 2) / 2
	case Quad:
		if t.Serendipity {
			return boundary
		}
		return (p + 1) * (p + 1)
	case Tet:
		n := (p + 1) * (p + 2) * (p + 3) / 6
		if t.Serendipity { // faces are kept, only the interior goes
			n -= (p - 1) * (p - 2) * (p - 3) / 6
		}
		return n
	case Prism:
		if t.Serendipity {
			return boundary
		}
		return (p + 1) * (p + 1) * (p + 2) / 2
	case Hex:
		if t.Serendipity {
			return boundary
		}
		return (p + 1) * (p + 1) * (p + 1)
	case Pyramid:
		if t.Serendipity {
			return boundary
		}
		return (p + 1) * (p + 2) * (2*p + 3) / 6
	}
	return 0
}

// gmshType maps gmsh element type numbers onto tags
var gmshType = map[int]Tag{
	1:  {Line, 1, false},
	2:  {Triangle, 1, false},
	3:  {Quad, 1, false},
	4:  {Tet, 1, false},
	5:  {Hex, 1, false},
	6:  {Prism, 1, false},
	7:  {Pyramid, 1, false},
	8:  {Line, 2, false},
	9:  {Triangle, 2, false},
	10: {Quad, 2, false},
	11: {Tet, 2, false},
	12: {Hex, 2, false},
	13: {Prism, 2, false},
	14: {Pyramid, 2, false},
	15: {Point, 0, false},
	16: {Quad, 2, true},
	17: {Hex, 2, true},
	18: {Prism, 2, true},
	19: {Pyramid, 2, true},
	20: {Triangle, 3, true},
	21: {Triangle, 3, false},
	22: {Triangle, 4, true},
	23: {Triangle, 4, false},
	24: {Triangle, 5, true},
	25: {Triangle, 5, false},
	26: {Line, 3, false},
	27: {Line, 4, false},
	28: {Line, 5, false},
	29: {Tet, 3, false},
	30: {Tet, 4, false},
	31: {Tet, 5, false},
	36: {Quad, 3, false},
	37: {Quad, 4, false},
	38: {Quad, 5, false},
	92: {Hex, 3, false},
	93: {Hex, 4, false},
}

func FromGmsh(elementType int) (t Tag, err error) {
	var ok bool
	if t, ok = gmshType[elementType]; !ok {
		err = fmt.Errorf("%w: gmsh element type %d", ErrUnknownTag, elementType)
	}
	return
}

// GmshType returns the gmsh element type number of the tag, when gmsh has one
func (t Tag) GmshType() (elementType int, ok bool) {
	t = t.Canonical()
	for et, tag := range gmshType {
		if tag == t {
			return et, true
		}
	}
	return 0, false
}
