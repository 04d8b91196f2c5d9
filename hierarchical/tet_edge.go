package hierarchical

import (
	"fmt"

	"github.com/notargets/nodalbasis/legendre"
	"github.com/notargets/nodalbasis/points"
	"github.com/notargets/nodalbasis/polynomial"
	"github.com/notargets/nodalbasis/shapes"
)

/*
NewTetEdgeBasis builds the order p Nédélec edge basis of the unit tetrahedron.

Edge e, oriented a->b in its class, carries the Whitney function
λa∇λb - λb∇λa at index e and the gradients ∇L_l(λa-λb, λa+λb), l = 1..p, at
index 6l + e. Reversing an edge negates its Whitney function and multiplies
its degree l gradient by (-1)^l.

Face (a,b,c) carries, for l1 = 1..p-1 and l2 = 0..p-1-l1, with u =
L_l1(λa-λb, λa+λb), s = λa+λb+λc and v = λc P_l2(2λc-s, s), three functions in
the order ∇(uv), v∇u - u∇v and (λb∇λa - λa∇λb)v.

The cell functions start at order 3, which is not implemented. Orders 3 and
above return ErrUnsupportedOrder for the whole basis: the edge and face
functions of those orders are withheld too, never returned without their
cell functions.
*/
func NewTetEdgeBasis(p int) (b *Basis, err error) {
	if p < 1 || p >= 3 {
		return nil, fmt.Errorf("%w: tetrahedral edge basis of order %d", ErrUnsupportedOrder, p)
	}
	var (
		lambda = polynomial.BarycentricInt(points.SimplexVertices(shapes.Tet))
		fam    = legendre.NewFamily(p)
		edges  = shapes.Tet.Edges()
		faces  = shapes.Tet.Faces()
		grad   = make([]polynomial.Vector, len(lambda))
	)
	for i, l := range lambda {
		grad[i] = l.Gradient()
	}
	b = &Basis{shape: shapes.Tet, order: p, vector: true, lambda: lambda}

	eg := group{classes: 2, perClass: len(edges) * (p + 1)}
	eg.vector = make([]polynomial.Vector, 0, eg.classes*eg.perClass)
	for cls := 0; cls < eg.classes; cls++ {
		for e := range edges {
			a, c := edgeVertices(edges, cls, e)
			eg.vector = append(eg.vector, whitney(lambda, grad, a, c))
		}
		for l := 1; l <= p; l++ {
			for e := range edges {
				a, c := edgeVertices(edges, cls, e)
				u := fam.IntScaled[l].Compose(lambda[a].Sub(lambda[c]), lambda[a].Add(lambda[c]))
				eg.vector = append(eg.vector, u.Gradient())
			}
		}
	}
	b.groups[Edge] = eg

	fg := group{classes: len(facePermutations), perClass: 3 * len(faces) * p * (p - 1) / 2}
	fg.vector = make([]polynomial.Vector, 0, fg.classes*fg.perClass)
	for cls := 0; cls < fg.classes; cls++ {
		for l1 := 1; l1 < p; l1++ {
			for l2 := 0; l2 < p-l1; l2++ {
				for f := range faces {
					i, j, k := faceVertices(faces, cls, f)
					fg.vector = append(fg.vector, faceFunctions(lambda, grad, fam, l1, l2, i, j, k)...)
				}
			}
		}
	}
	b.groups[Face] = fg
	b.groups[Cell] = group{classes: 1}
	b.groups[Vertex] = group{classes: 1}
	return
}

// whitney is λa∇λb - λb∇λa
func whitney(lambda []polynomial.Polynomial, grad []polynomial.Vector, a, b int) polynomial.Vector {
	return grad[b].MulPoly(lambda[a]).Sub(grad[a].MulPoly(lambda[b]))
}

func faceFunctions(lambda []polynomial.Polynomial, grad []polynomial.Vector, fam *legendre.Family,
	l1, l2, a, b, c int) []polynomial.Vector {
	var (
		s = lambda[a].Add(lambda[b]).Add(lambda[c])
		u = fam.IntScaled[l1].Compose(lambda[a].Sub(lambda[b]), lambda[a].Add(lambda[b]))
		v = lambda[c].Mul(fam.Scaled[l2].Compose(lambda[c].ScaleInt(2).Sub(s), s))
	)
	gu, gv := u.Gradient(), v.Gradient()
	return []polynomial.Vector{
		u.Mul(v).Gradient(),
		gu.MulPoly(v).Sub(gv.MulPoly(u)),
		whitney(lambda, grad, b, a).MulPoly(v),
	}
}
