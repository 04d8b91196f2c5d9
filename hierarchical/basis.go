// Package hierarchical builds exact hierarchical shape functions on simplex
// reference elements: scalar H1 bases and the Nédélec edge basis of the
// tetrahedron. Functions are grouped by the entity that carries them, and edge
// and face functions come in one copy per orientation class of the entity.
package hierarchical

import (
	"errors"
	"fmt"

	"github.com/notargets/nodalbasis/polynomial"
	"github.com/notargets/nodalbasis/shapes"
	"github.com/notargets/nodalbasis/utils"
)

var ErrUnsupportedOrder = errors.New("hierarchical basis not implemented for this order")

// Entity is the kind of reference entity a function is attached to
type Entity uint8

const (
	Vertex Entity = iota
	Edge
	Face
	Cell
	numEntities
)

func (e Entity) String() string {
	if e >= numEntities {
		return fmt.Sprintf("Entity(%d)", uint8(e))
	}
	return [...]string{"Vertex", "Edge", "Face", "Cell"}[e]
}

// group stores the functions of one entity kind, class major:
// function i of orientation class cls is at cls*perClass + i
type group struct {
	classes, perClass int
	scalar            []polynomial.Polynomial
	vector            []polynomial.Vector
}

func (g group) index(cls, i int) int {
	if cls < 0 || cls >= g.classes || i < 0 || i >= g.perClass {
		panic(fmt.Errorf("function (%d,%d) out of range, have %d classes of %d",
			cls, i, g.classes, g.perClass))
	}
	return cls*g.perClass + i
}

/*
Basis is an immutable set of hierarchical functions on one reference shape.
A scalar basis carries vertex, edge, face and cell functions; a vector basis
carries edge, face and cell functions only. Lambda holds the barycentric
coordinates the functions were built from.
*/
type Basis struct {
	shape  shapes.Shape
	order  int
	vector bool
	lambda []polynomial.Polynomial
	groups [numEntities]group
}

func (b *Basis) Shape() shapes.Shape { return b.shape }
func (b *Basis) Order() int          { return b.order }
func (b *Basis) IsVector() bool      { return b.vector }

// Classes is the number of orientation classes of the entity kind
func (b *Basis) Classes(e Entity) int { return b.groups[e].classes }

// PerClass is the number of functions in one orientation class
func (b *Basis) PerClass(e Entity) int { return b.groups[e].perClass }

// Size is the number of functions of one orientation, summed over entity kinds
func (b *Basis) Size() (n int) {
	for _, g := range b.groups {
		n += g.perClass
	}
	return
}

// Lambda returns the i-th barycentric coordinate of the reference simplex
func (b *Basis) Lambda(i int) polynomial.Polynomial { return b.lambda[i] }

func (b *Basis) Vertex(i int) polynomial.Polynomial {
	return b.scalarAt(Vertex, 0, i)
}

func (b *Basis) ScalarEdge(cls, i int) polynomial.Polynomial { return b.scalarAt(Edge, cls, i) }
func (b *Basis) ScalarFace(cls, i int) polynomial.Polynomial { return b.scalarAt(Face, cls, i) }
func (b *Basis) ScalarCell(i int) polynomial.Polynomial      { return b.scalarAt(Cell, 0, i) }

func (b *Basis) Edge(cls, i int) polynomial.Vector { return b.vectorAt(Edge, cls, i) }
func (b *Basis) Face(cls, i int) polynomial.Vector { return b.vectorAt(Face, cls, i) }
func (b *Basis) Cell(i int) polynomial.Vector      { return b.vectorAt(Cell, 0, i) }

func (b *Basis) scalarAt(e Entity, cls, i int) polynomial.Polynomial {
	if b.vector {
		panic(fmt.Errorf("scalar %s function requested from a vector basis", e))
	}
	g := b.groups[e]
	return g.scalar[g.index(cls, i)]
}

func (b *Basis) vectorAt(e Entity, cls, i int) polynomial.Vector {
	if !b.vector {
		panic(fmt.Errorf("vector %s function requested from a scalar basis", e))
	}
	g := b.groups[e]
	return g.vector[g.index(cls, i)]
}

// Evaluate tabulates the vector functions of one orientation class at the
// rows of points. Component d of the result has one row per point and one
// column per function. Missing point coordinates are zero.
func (b *Basis) Evaluate(points utils.Matrix, e Entity, cls int) (R [3]utils.Matrix) {
	if !b.vector {
		panic(fmt.Errorf("Evaluate called on a scalar basis, use EvaluateScalar"))
	}
	var (
		g     = b.groups[e]
		np, _ = points.Dims()
	)
	for d := range R {
		R[d] = utils.NewMatrix(np, g.perClass)
	}
	if g.perClass == 0 {
		return
	}
	base := g.index(cls, 0)
	for i := 0; i < np; i++ {
		x, y, z := coordinates(points, i)
		for j, f := range g.vector[base : base+g.perClass] {
			v := f.Eval(x, y, z)
			for d := range R {
				R[d].Set(i, j, v[d])
			}
		}
	}
	return
}

// EvaluateScalar tabulates the scalar functions of one orientation class at
// the rows of points, one row per point and one column per function
func (b *Basis) EvaluateScalar(points utils.Matrix, e Entity, cls int) (R utils.Matrix) {
	if b.vector {
		panic(fmt.Errorf("EvaluateScalar called on a vector basis, use Evaluate"))
	}
	var (
		g     = b.groups[e]
		np, _ = points.Dims()
	)
	R = utils.NewMatrix(np, g.perClass)
	if g.perClass == 0 {
		return
	}
	base := g.index(cls, 0)
	for i := 0; i < np; i++ {
		x, y, z := coordinates(points, i)
		for j, f := range g.scalar[base : base+g.perClass] {
			R.Set(i, j, f.Eval(x, y, z))
		}
	}
	return
}

// Tabulate evaluates class 0 of every entity kind of a scalar basis, entity
// kinds in order, one column per function. For a scalar basis of a simplex
// this is the generalized Vandermonde matrix at points.
func (b *Basis) Tabulate(points utils.Matrix) (V utils.Matrix) {
	np, _ := points.Dims()
	V = utils.NewMatrix(np, b.Size())
	col := 0
	for e := Vertex; e < numEntities; e++ {
		if b.groups[e].perClass == 0 {
			continue
		}
		R := b.EvaluateScalar(points, e, 0)
		for j := 0; j < b.groups[e].perClass; j++ {
			for i := 0; i < np; i++ {
				V.Set(i, col, R.At(i, j))
			}
			col++
		}
	}
	return
}

func coordinates(points utils.Matrix, i int) (x, y, z float64) {
	var (
		_, nc = points.Dims()
		c     [3]float64
	)
	for d := 0; d < min(nc, 3); d++ {
		c[d] = points.At(i, d)
	}
	return c[0], c[1], c[2]
}

// facePermutations lists the six orientation classes of a triangular face as
// reorderings of its listed vertices
var facePermutations = [6][3]int{{0, 1, 2}, {1, 0, 2}, {1, 2, 0}, {2, 1, 0}, {2, 0, 1}, {0, 2, 1}}

// faceVertices returns face f of the simplex as seen in orientation class cls
func faceVertices(faces [][]int, cls, f int) (a, b, c int) {
	perm := facePermutations[cls]
	fv := faces[f]
	return fv[perm[0]], fv[perm[1]], fv[perm[2]]
}

// edgeVertices returns edge e, reversed in class 1
func edgeVertices(edges [][2]int, cls, e int) (a, b int) {
	a, b = edges[e][0], edges[e][1]
	if cls == 1 {
		a, b = b, a
	}
	return
}
