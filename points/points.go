// Package points places equispaced reference nodes in gmsh order: vertices,
// edge interiors, face interiors, then the cell interior, with each face and
// cell interior laid out recursively as a smaller element of the same kind.
package points

import (
	"errors"
	"fmt"

	"github.com/notargets/nodalbasis/shapes"
	"github.com/notargets/nodalbasis/utils"
)

var ErrUnsupportedOrder = errors.New("reference nodes not implemented for this order")

// Reference vertex coordinates of each shape. Simplices live on the unit
// simplex, the line on [-1,1], tensor shapes on [-1,1]^d; prism and pyramid
// follow gmsh.
var vertexCoords = map[shapes.Shape][][]float64{
	shapes.Point:    {{0}},
	shapes.Line:     {{-1}, {1}},
	shapes.Triangle: {{0, 0}, {1, 0}, {0, 1}},
	shapes.Quad:     {{-1, -1}, {1, -1}, {1, 1}, {-1, 1}},
	shapes.Tet:      {{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	shapes.Prism:    {{0, 0, -1}, {1, 0, -1}, {0, 1, -1}, {0, 0, 1}, {1, 0, 1}, {0, 1, 1}},
	shapes.Hex: {{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
	shapes.Pyramid: {{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}, {0, 0, 1}},
}

// Vertices returns a fresh copy of the shape's reference vertex coordinates
func Vertices(s shapes.Shape) (verts [][]float64) {
	for _, v := range vertexCoords[s] {
		verts = append(verts, append([]float64{}, v...))
	}
	return
}

// SimplexVertices returns the integral vertex coordinates of a simplex shape,
// the input the barycentric constructor takes
func SimplexVertices(s shapes.Shape) (verts [][]int64) {
	if !s.Simplex() {
		panic(fmt.Errorf("%s is not a simplex", s))
	}
	for _, v := range vertexCoords[s] {
		iv := make([]int64, len(v))
		for d, c := range v {
			iv[d] = int64(c)
		}
		verts = append(verts, iv)
	}
	return
}

// Columns is the number of coordinates per node
func Columns(s shapes.Shape) int {
	return max(s.Dimension(), 1)
}

// Generate returns the reference nodes of the tag, one row per node. The
// result is read only.
func Generate(tag shapes.Tag) (R utils.Matrix, err error) {
	if err = tag.Validate(); err != nil {
		return
	}
	var (
		rows [][]float64
		p    = tag.Order
		s    = tag.Serendipity
	)
	switch tag.Shape {
	case shapes.Point:
		rows = [][]float64{{0}}
	case shapes.Line:
		rows = scale(lineLattice(p), p, symmetric)
	case shapes.Triangle:
		if p == 0 {
			rows = [][]float64{{1. / 3, 1. / 3}}
			break
		}
		rows = scale(triLattice(p, s), p, unit)
	case shapes.Quad:
		rows = scale(quadLattice(p, s), p, symmetric)
	case shapes.Tet:
		if p == 0 {
			rows = [][]float64{{0.25, 0.25, 0.25}}
			break
		}
		rows = scale(tetLattice(p, s), p, unit)
	case shapes.Hex:
		rows = scale(hexLattice(p, s), p, symmetric)
	case shapes.Prism:
		if p == 0 {
			rows = [][]float64{{1. / 3, 1. / 3, 0}}
			break
		}
		if rows, err = lowOrder(tag, [][]int{{0, 1, 4, 3}, {0, 3, 5, 2}, {1, 2, 5, 4}}); err != nil {
			return
		}
	case shapes.Pyramid:
		if p == 0 {
			rows = [][]float64{{0, 0, 0.25}}
			break
		}
		if rows, err = lowOrder(tag, [][]int{{0, 3, 2, 1}}); err != nil {
			return
		}
	}
	if len(rows) != tag.NumNodes() {
		panic(fmt.Errorf("%s: generated %d nodes, expected %d", tag, len(rows), tag.NumNodes()))
	}
	R = utils.NewMatrixFromRows(rows)
	R.SetReadOnly(tag.String() + " reference nodes")
	return
}

// lowOrder builds order 1 and 2 nodes of shapes whose faces mix triangles and
// quads: vertices, edge midpoints, then the centers of the quad faces listed
func lowOrder(tag shapes.Tag, quadFaces [][]int) (rows [][]float64, err error) {
	if tag.Order > 2 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOrder, tag)
	}
	verts := vertexCoords[tag.Shape]
	rows = Vertices(tag.Shape)
	if tag.Order == 1 {
		return
	}
	mean := func(ids ...int) (c []float64) {
		c = make([]float64, 3)
		for _, id := range ids {
			for d := range c {
				c[d] += verts[id][d]
			}
		}
		for d := range c {
			c[d] /= float64(len(ids))
		}
		return
	}
	for _, e := range tag.Shape.Edges() {
		rows = append(rows, mean(e[0], e[1]))
	}
	if tag.Serendipity {
		return
	}
	for _, f := range quadFaces {
		rows = append(rows, mean(f...))
	}
	return
}

type mapping func(l, p int) float64

func unit(l, p int) float64 { return float64(l) / float64(p) }

// symmetric maps [0,p] onto [-1,1] so that mirrored lattice indices give
// exactly negated coordinates
func symmetric(l, p int) float64 {
	if p == 0 {
		return 0
	}
	return float64(2*l-p) / float64(p)
}

func scale(lattice [][]int, p int, f mapping) (rows [][]float64) {
	rows = make([][]float64, len(lattice))
	for i, l := range lattice {
		rows[i] = make([]float64, len(l))
		for d, c := range l {
			rows[i][d] = f(c, p)
		}
	}
	return
}
