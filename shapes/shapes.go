package shapes

import "fmt"

// Shape is the closed set of reference element shapes
type Shape uint8

const (
	Point Shape = iota
	Line
	Triangle
	Quad
	Tet
	Prism
	Hex
	Pyramid
	numShapes
)

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
	return [...]string{"Point", "Line", "Triangle", "Quad", "Tet", "Prism", "Hex", "Pyramid"}[s]
}

func (s Shape) Valid() bool { return s < numShapes }

// All lists every shape in tag order
func All() []Shape {
	return []Shape{Point, Line, Triangle, Quad, Tet, Prism, Hex, Pyramid}
}

// Parse maps a shape name, as printed by String, back to the shape
func Parse(name string) (Shape, error) {
	for _, s := range All() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: shape %q", ErrUnknownTag, name)
}

func (s Shape) Dimension() int {
	switch s {
	case Point:
		return 0
	case Line:
		return 1
	case Triangle, Quad:
		return 2
	default:
		return 3
	}
}

func (s Shape) NumVertices() int {
	return [...]int{1, 2, 3, 4, 4, 6, 8, 5}[s]
}

// Simplex reports whether the shape's reference coordinates are barycentric
// sub-volumes of the unit simplex
func (s Shape) Simplex() bool {
	return s == Line || s == Triangle || s == Tet
}

/*
The incidence tables below follow gmsh's reference element numbering. Edge node
interiors run from the first to the second listed vertex; face interiors are laid
out as a sub element whose k-th vertex sits next to the face's k-th listed vertex.
*/
var (
	edgeTable = map[Shape][][2]int{
		Line:     {{0, 1}},
		Triangle: {{0, 1}, {1, 2}, {2, 0}},
		Quad:     {{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		Tet:      {{0, 1}, {1, 2}, {2, 0}, {3, 0}, {3, 2}, {3, 1}},
		Prism:    {{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 4}, {3, 5}, {4, 5}},
		Hex: {{0, 1}, {0, 3}, {0, 4}, {1, 2}, {1, 5}, {2, 3},
			{2, 6}, {3, 7}, {4, 5}, {4, 7}, {5, 6}, {6, 7}},
		Pyramid: {{0, 1}, {0, 3}, {0, 4}, {1, 2}, {1, 4}, {2, 3}, {2, 4}, {3, 4}},
	}
	faceTable = map[Shape][][]int{
		Triangle: {{0, 1, 2}},
		Quad:     {{0, 1, 2, 3}},
		Tet:      {{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {3, 1, 2}},
		Prism:    {{0, 2, 1}, {3, 4, 5}, {0, 1, 4, 3}, {0, 3, 5, 2}, {1, 2, 5, 4}},
		Hex: {{0, 3, 2, 1}, {0, 1, 5, 4}, {0, 4, 7, 3},
			{1, 2, 6, 5}, {2, 3, 7, 6}, {4, 5, 6, 7}},
		Pyramid: {{0, 1, 4}, {3, 0, 4}, {1, 2, 4}, {2, 3, 4}, {0, 3, 2, 1}},
	}
)

// Edges returns a fresh copy of the shape's edge incidence table
func (s Shape) Edges() (edges [][2]int) {
	edges = make([][2]int, len(edgeTable[s]))
	copy(edges, edgeTable[s])
	return
}

// Faces returns a fresh copy of the shape's face incidence table
func (s Shape) Faces() (faces [][]int) {
	for _, f := range faceTable[s] {
		faces = append(faces, append([]int{}, f...))
	}
	return
}

func (s Shape) NumEdges() int { return len(edgeTable[s]) }

func (s Shape) NumFaces() int { return len(faceTable[s]) }

// FaceShape is the shape of the i-th face
func (s Shape) FaceShape(i int) Shape {
	if len(faceTable[s][i]) == 3 {
		return Triangle
	}
	return Quad
}
