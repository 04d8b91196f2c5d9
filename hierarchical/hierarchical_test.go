package hierarchical

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/nodalbasis/points"
	"github.com/notargets/nodalbasis/polynomial"
	"github.com/notargets/nodalbasis/shapes"
	"github.com/notargets/nodalbasis/utils"
)

const tol = 1.e-12

func randomTetPoints(n int) utils.Matrix {
	rng := rand.New(rand.NewSource(7))
	R := utils.NewMatrix(n, 3)
	for i := 0; i < n; {
		x, y, z := rng.Float64(), rng.Float64(), rng.Float64()
		if x+y+z >= 1 {
			continue
		}
		R.SetRow(i, []float64{x, y, z})
		i++
	}
	return R
}

func TestTetEdgeBasisCounts(t *testing.T) {
	for p := 1; p <= 2; p++ {
		b, err := NewTetEdgeBasis(p)
		require.NoError(t, err)
		assert.True(t, b.IsVector())
		assert.Equal(t, shapes.Tet, b.Shape())
		assert.Equal(t, 2, b.Classes(Edge))
		assert.Equal(t, 6, b.Classes(Face))
		assert.Equal(t, 6*(p+1), b.PerClass(Edge))
		assert.Equal(t, 4*(p+1)*(p-1), b.PerClass(Face))
		assert.Equal(t, 0, b.PerClass(Cell))
		assert.Equal(t, 0, b.PerClass(Vertex))
		assert.Equal(t, (p+1)*(p+2)*(p+3)/2, b.Size())
	}
	// no partial basis above order 2, edge and face functions included
	for _, p := range []int{-1, 0, 3, 4} {
		b, err := NewTetEdgeBasis(p)
		assert.True(t, errors.Is(err, ErrUnsupportedOrder), "order %d", p)
		assert.Nil(t, b, "order %d", p)
	}
}

func TestWhitneyClosedForm(t *testing.T) {
	b, err := NewTetEdgeBasis(1)
	require.NoError(t, err)
	x, y, z := polynomial.Coordinate(0), polynomial.Coordinate(1), polynomial.Coordinate(2)
	one := polynomial.One()
	// edge {0,1}: λ0∇λ1 - λ1∇λ0 with λ0 = 1-x-y-z, λ1 = x
	assert.True(t, b.Edge(0, 0).Equal(polynomial.Vector{one.Sub(y).Sub(z), x, x}))
	// edge {1,2}: λ1∇λ2 - λ2∇λ1 = (-y, x, 0)
	assert.True(t, b.Edge(0, 1).Equal(polynomial.Vector{y.Neg(), x, polynomial.Polynomial{}}))
	// edge {3,1}: λ3∇λ1 - λ1∇λ3 = (z, 0, -x)
	assert.True(t, b.Edge(0, 5).Equal(polynomial.Vector{z, polynomial.Polynomial{}, x.Neg()}))
	// edge {3,0}: λ3∇λ0 - λ0∇λ3 = (-z, -z, -1+x+y)
	assert.True(t, b.Edge(0, 3).Equal(polynomial.Vector{z.Neg(), z.Neg(), x.Add(y).Sub(one)}))
	for e := 0; e < 6; e++ {
		a, c := shapes.Tet.Edges()[e][0], shapes.Tet.Edges()[e][1]
		ga, gc := b.Lambda(a).Gradient(), b.Lambda(c).Gradient()
		want := gc.MulPoly(b.Lambda(a)).Sub(ga.MulPoly(b.Lambda(c)))
		assert.True(t, b.Edge(0, e).Equal(want), "edge %d", e)
		assert.Equal(t, 1, b.Edge(0, e).Degree())
	}
}

func TestEdgeClassSign(t *testing.T) {
	for p := 1; p <= 2; p++ {
		b, err := NewTetEdgeBasis(p)
		require.NoError(t, err)
		for i := 0; i < b.PerClass(Edge); i++ {
			sign := int64(-1)
			if l := i / 6; l > 0 && l%2 == 0 {
				sign = 1
			}
			assert.True(t, b.Edge(1, i).Equal(b.Edge(0, i).ScaleInt(sign)), "order %d function %d", p, i)
		}
	}
}

func TestEdgeBasisCurl(t *testing.T) {
	b, err := NewTetEdgeBasis(2)
	require.NoError(t, err)
	for cls := 0; cls < 2; cls++ {
		for i := 0; i < b.PerClass(Edge); i++ {
			curl := b.Edge(cls, i).Curl()
			if i < 6 {
				// 2∇λa × ∇λb
				assert.Equal(t, 0, curl.Degree(), "Whitney function %d", i)
				assert.False(t, curl.IsZero())
				continue
			}
			assert.True(t, curl.IsZero(), "gradient function %d", i)
		}
	}
	for cls := 0; cls < 6; cls++ {
		for i := 0; i < b.PerClass(Face); i += 3 {
			assert.True(t, b.Face(cls, i).Curl().IsZero(), "class %d face function %d", cls, i)
		}
	}
}

// The tangential component of Whitney function e integrates to 1 along edge e
// and vanishes on every other edge
func TestWhitneyCirculation(t *testing.T) {
	var (
		b, err = NewTetEdgeBasis(1)
		verts  = points.Vertices(shapes.Tet)
		edges  = shapes.Tet.Edges()
		ss     = []float64{0.1, 0.5, 0.8}
	)
	require.NoError(t, err)
	for cls := 0; cls < 2; cls++ {
		for k := range edges {
			a, c := edgeVertices(edges, cls, k)
			pts := utils.NewMatrix(len(ss), 3)
			for i, s := range ss {
				for d := 0; d < 3; d++ {
					pts.Set(i, d, (1-s)*verts[a][d]+s*verts[c][d])
				}
			}
			R := b.Evaluate(pts, Edge, cls)
			for i := range ss {
				for e := 0; e < 6; e++ {
					var tangential float64
					for d := 0; d < 3; d++ {
						tangential += R[d].At(i, e) * (verts[c][d] - verts[a][d])
					}
					want := 0.
					if e == k {
						want = 1
					}
					assert.InDelta(t, want, tangential, tol, "class %d edge %d function %d", cls, k, e)
				}
			}
		}
	}
}

func TestEdgeBasisDegree(t *testing.T) {
	for p := 1; p <= 2; p++ {
		b, err := NewTetEdgeBasis(p)
		require.NoError(t, err)
		for cls := 0; cls < 2; cls++ {
			for i := 0; i < b.PerClass(Edge); i++ {
				assert.LessOrEqual(t, b.Edge(cls, i).Degree(), p)
			}
		}
		for cls := 0; cls < 6; cls++ {
			for i := 0; i < b.PerClass(Face); i++ {
				assert.LessOrEqual(t, b.Face(cls, i).Degree(), p)
				assert.False(t, b.Face(cls, i).IsZero())
			}
		}
	}
}

// Evaluate agrees with pointwise evaluation of the stored functions
func TestEvaluate(t *testing.T) {
	b, err := NewTetEdgeBasis(2)
	require.NoError(t, err)
	pts := randomTetPoints(10)
	for cls := 0; cls < 6; cls++ {
		R := b.Evaluate(pts, Face, cls)
		for i := 0; i < 10; i++ {
			for j := 0; j < b.PerClass(Face); j++ {
				v := b.Face(cls, j).Eval(pts.At(i, 0), pts.At(i, 1), pts.At(i, 2))
				for d := 0; d < 3; d++ {
					assert.InDelta(t, v[d], R[d].At(i, j), tol)
				}
			}
		}
	}
	C := b.Evaluate(pts, Cell, 0)
	nr, nc := C[0].Dims()
	assert.Equal(t, [2]int{0, 0}, [2]int{nr, nc})
}

func TestFaceFunctionForm(t *testing.T) {
	b, err := NewTetEdgeBasis(2)
	require.NoError(t, err)
	var (
		l     = func(i int) polynomial.Polynomial { return b.Lambda(i) }
		faces = shapes.Tet.Faces()
	)
	for f, fv := range faces {
		a, c, d := fv[0], fv[1], fv[2]
		u, v := l(a).Sub(l(c)), l(d)
		assert.True(t, b.Face(0, 3*f).Equal(u.Mul(v).Gradient()), "face %d", f)
		assert.True(t, b.Face(0, 3*f+1).Equal(u.Gradient().MulPoly(v).Sub(v.Gradient().MulPoly(u))), "face %d", f)
		want := l(a).Gradient().MulPoly(l(c)).Sub(l(c).Gradient().MulPoly(l(a))).MulPoly(v)
		assert.True(t, b.Face(0, 3*f+2).Equal(want), "face %d", f)
	}
}

func TestNodeBasis(t *testing.T) {
	for _, s := range []shapes.Shape{shapes.Line, shapes.Triangle, shapes.Tet} {
		maxP := 6
		if s == shapes.Tet {
			maxP = 3
		}
		for p := 1; p <= maxP; p++ {
			b, err := NewNodeBasis(s, p)
			require.NoError(t, err, "%s order %d", s, p)
			assert.False(t, b.IsVector())
			tag := shapes.Tag{Shape: s, Order: p}
			assert.Equal(t, tag.NumNodes(), b.Size(), tag.String())

			pts, err := points.Generate(tag)
			require.NoError(t, err)
			np, _ := pts.Dims()
			// partition of unity
			var (
				R     = b.EvaluateScalar(pts, Vertex, 0)
				nv, _ = R.Dims()
			)
			assert.Equal(t, np, nv)
			for i := 0; i < np; i++ {
				var sum float64
				for j := 0; j < s.NumVertices(); j++ {
					sum += R.At(i, j)
				}
				assert.InDelta(t, 1., sum, tol)
			}
			// every edge and face function vanishes at the vertices
			for _, e := range []Entity{Edge, Face} {
				for cls := 0; cls < b.Classes(e); cls++ {
					E := b.EvaluateScalar(pts, e, cls)
					for i := 0; i < s.NumVertices(); i++ {
						for j := 0; j < b.PerClass(e); j++ {
							assert.InDelta(t, 0., E.At(i, j), tol, "%s %s class %d", tag, e, cls)
						}
					}
				}
			}
			V := b.Tabulate(pts)
			_, err = V.Inverse()
			assert.NoError(t, err, tag.String())
			assert.False(t, math.IsInf(V.Cond(), 1), tag.String())
		}
	}
}

func TestNodeBasisFaceBubbleVanishesOnBoundary(t *testing.T) {
	b, err := NewNodeBasis(shapes.Triangle, 5)
	require.NoError(t, err)
	pts, err := points.Generate(shapes.Tag{Shape: shapes.Triangle, Order: 5})
	require.NoError(t, err)
	nBoundary := 3 * 5
	for cls := 0; cls < b.Classes(Face); cls++ {
		F := b.EvaluateScalar(pts, Face, cls)
		for i := 0; i < nBoundary; i++ {
			for j := 0; j < b.PerClass(Face); j++ {
				assert.InDelta(t, 0., F.At(i, j), tol)
			}
		}
	}
	// edge functions of one edge vanish on the other two
	E := b.EvaluateScalar(pts, Edge, 0)
	for i := 3; i < nBoundary; i++ {
		onEdge := (i - 3) / 4
		for j := 0; j < b.PerClass(Edge); j++ {
			if j%3 != onEdge {
				assert.InDelta(t, 0., E.At(i, j), tol)
			}
		}
	}
}

func TestNodeBasisEdgeClassSign(t *testing.T) {
	b, err := NewNodeBasis(shapes.Triangle, 4)
	require.NoError(t, err)
	for i := 0; i < b.PerClass(Edge); i++ {
		sign := int64(1)
		if (i/3+2)%2 == 1 {
			sign = -1
		}
		assert.True(t, b.ScalarEdge(1, i).Equal(b.ScalarEdge(0, i).ScaleInt(sign)))
	}
}

func TestNodeBasisUnsupported(t *testing.T) {
	for _, c := range []struct {
		s shapes.Shape
		p int
	}{{shapes.Tet, 4}, {shapes.Quad, 2}, {shapes.Hex, 1}, {shapes.Line, 0}} {
		_, err := NewNodeBasis(c.s, c.p)
		assert.True(t, errors.Is(err, ErrUnsupportedOrder), "%s %d", c.s, c.p)
	}
}

func TestAccessorPanics(t *testing.T) {
	vb, err := NewTetEdgeBasis(1)
	require.NoError(t, err)
	sb, err := NewNodeBasis(shapes.Tet, 1)
	require.NoError(t, err)
	assert.Panics(t, func() { vb.ScalarEdge(0, 0) })
	assert.Panics(t, func() { sb.Edge(0, 0) })
	assert.Panics(t, func() { vb.Edge(2, 0) })
	assert.Panics(t, func() { vb.Edge(0, 12) })
	assert.Equal(t, Face.String(), "Face")
}
