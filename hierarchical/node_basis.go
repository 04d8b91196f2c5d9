package hierarchical

import (
	"fmt"

	"github.com/notargets/nodalbasis/legendre"
	"github.com/notargets/nodalbasis/points"
	"github.com/notargets/nodalbasis/polynomial"
	"github.com/notargets/nodalbasis/shapes"
)

/*
NewNodeBasis builds the order p scalar hierarchical basis of a line, triangle
or tetrahedron:

	vertex i:            λi
	edge a->b, l=2..p:   L_l(λa-λb, λa+λb)                at (l-2)*nEdges + e
	face (a,b,c):        L_l1(λa-λb, λa+λb) λc P_l2(2λc-s, s)
	                     l1 >= 2, l1+l2+1 <= p, s = λa+λb+λc

Edge and face functions come in one copy per orientation class, as for the
edge basis. The functions of one class span the polynomials of degree p.
Tetrahedral cell functions start at order 4, which is not implemented.
*/
func NewNodeBasis(s shapes.Shape, p int) (b *Basis, err error) {
	switch {
	case !s.Simplex():
		return nil, fmt.Errorf("%w: no hierarchical scalar basis for %s", ErrUnsupportedOrder, s)
	case p < 1:
		return nil, fmt.Errorf("%w: %s scalar basis of order %d", ErrUnsupportedOrder, s, p)
	case s == shapes.Tet && p >= 4:
		return nil, fmt.Errorf("%w: %s cell functions of order %d", ErrUnsupportedOrder, s, p)
	}
	var (
		lambda = polynomial.BarycentricInt(points.SimplexVertices(s))
		fam    = legendre.NewFamily(p)
		edges  = s.Edges()
		faces  = s.Faces()
	)
	b = &Basis{shape: s, order: p, lambda: lambda}
	b.groups[Vertex] = group{classes: 1, perClass: len(lambda),
		scalar: append([]polynomial.Polynomial{}, lambda...)}

	eg := group{classes: 2, perClass: len(edges) * (p - 1)}
	for cls := 0; cls < eg.classes; cls++ {
		for l := 2; l <= p; l++ {
			for e := range edges {
				a, c := edgeVertices(edges, cls, e)
				eg.scalar = append(eg.scalar,
					fam.IntScaled[l].Compose(lambda[a].Sub(lambda[c]), lambda[a].Add(lambda[c])))
			}
		}
	}
	b.groups[Edge] = eg

	fg := group{classes: 1}
	if len(faces) != 0 {
		fg = group{classes: len(facePermutations), perClass: len(faces) * (p - 1) * (p - 2) / 2}
		for cls := 0; cls < fg.classes; cls++ {
			for l1 := 2; l1 < p; l1++ {
				for l2 := 0; l1+l2+1 <= p; l2++ {
					for f := range faces {
						i, j, k := faceVertices(faces, cls, f)
						fg.scalar = append(fg.scalar, faceBubble(lambda, fam, l1, l2, i, j, k))
					}
				}
			}
		}
	}
	b.groups[Face] = fg
	b.groups[Cell] = group{classes: 1}
	return
}

func faceBubble(lambda []polynomial.Polynomial, fam *legendre.Family, l1, l2, a, b, c int) polynomial.Polynomial {
	s := lambda[a].Add(lambda[b]).Add(lambda[c])
	u := fam.IntScaled[l1].Compose(lambda[a].Sub(lambda[b]), lambda[a].Add(lambda[b]))
	return u.Mul(lambda[c]).Mul(fam.Scaled[l2].Compose(lambda[c].ScaleInt(2).Sub(s), s))
}
