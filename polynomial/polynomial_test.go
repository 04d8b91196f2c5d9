package polynomial

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPolynomial(rng *rand.Rand, nTerms, maxPow int) (p Polynomial) {
	for i := 0; i < nTerms; i++ {
		c := big.NewRat(rng.Int63n(21)-10, rng.Int63n(5)+1)
		p = p.Add(NewRat(c, rng.Intn(maxPow+1), rng.Intn(maxPow+1), rng.Intn(maxPow+1)))
	}
	return
}

func TestPolynomialRingLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		a := randomPolynomial(rng, 5, 3)
		b := randomPolynomial(rng, 4, 3)
		c := randomPolynomial(rng, 3, 2)
		assert.True(t, a.Add(b).Equal(b.Add(a)), "a+b != b+a")
		assert.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))), "addition not associative")
		assert.True(t, a.Mul(b).Equal(b.Mul(a)), "a*b != b*a")
		assert.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))), "multiplication not associative")
		assert.True(t, a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))), "not distributive")
		assert.True(t, a.Sub(a).IsZero())
		assert.True(t, a.Add(b).Gradient().Equal(a.Gradient().Add(b.Gradient())),
			"gradient is not linear")
		// Product rule, component by component
		lhs := a.Mul(b).Gradient()
		rhs := a.Gradient().MulPoly(b).Add(b.Gradient().MulPoly(a))
		assert.True(t, lhs.Equal(rhs), "product rule fails")
	}
}

func TestPolynomialCanonicalForm(t *testing.T) {
	p := New(2, 1, 0, 0).Add(New(-2, 1, 0, 0))
	assert.True(t, p.IsZero())
	assert.Equal(t, -1, p.Degree())
	assert.Equal(t, 0, p.NumTerms())

	q := New(1, 0, 2, 0).Add(New(3, 1, 0, 0)).Add(Constant(-1))
	r := Constant(-1).Add(New(3, 1, 0, 0)).Add(New(1, 0, 2, 0))
	assert.True(t, q.Equal(r))
	assert.Equal(t, "y^2 + 3*x - 1", q.String())
	assert.Equal(t, 2, q.Degree())
	assert.Equal(t, "0", Polynomial{}.String())
	assert.Equal(t, "-1/2*x*z", NewRat(big.NewRat(-1, 2), 1, 0, 1).String())
}

func TestPolynomialNoSharing(t *testing.T) {
	p := New(3, 1, 1, 0)
	q := p.ScaleInt(1)
	terms := q.Terms()
	terms[0].Coef.SetInt64(100)
	assert.Equal(t, 0, q.Coefficient(1, 1, 0).Cmp(big.NewRat(3, 1)))
	assert.Equal(t, 0, p.Coefficient(1, 1, 0).Cmp(big.NewRat(3, 1)))
	s := p.Add(Polynomial{})
	s.terms[0].Coef.SetInt64(7)
	assert.Equal(t, 0, p.Coefficient(1, 1, 0).Cmp(big.NewRat(3, 1)))
}

func TestPolynomialDerivative(t *testing.T) {
	// p = 3x^2 y z^3 - 5y + 7
	p := New(3, 2, 1, 3).Sub(New(5, 0, 1, 0)).Add(Constant(7))
	g := p.Gradient()
	assert.True(t, g[0].Equal(New(6, 1, 1, 3)))
	assert.True(t, g[1].Equal(New(3, 2, 0, 3).Sub(Constant(5))))
	assert.True(t, g[2].Equal(New(9, 2, 1, 2)))
	assert.True(t, Constant(4).Gradient().IsZero())
	assert.Panics(t, func() { p.Derivative(3) })
}

func TestPolynomialCompose(t *testing.T) {
	x, y, z := Coordinate(0), Coordinate(1), Coordinate(2)
	// p = x^2 + 3xy + z
	p := x.Pow(2).Add(x.Mul(y).ScaleInt(3)).Add(z)
	a := x.Add(y)
	b := z.ScaleInt(2)
	got := p.Compose(a, b)
	want := a.Pow(2).Add(a.Mul(b).ScaleInt(3)).Add(z)
	assert.True(t, got.Equal(want), "got %s want %s", got, want)

	// Composition agrees with evaluation at any point
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		q := randomPolynomial(rng, 4, 3)
		X, Y, Z := rng.Float64(), rng.Float64(), rng.Float64()
		val := q.Compose(a, b).Eval(X, Y, Z)
		assert.InDelta(t, q.Eval(a.Eval(X, Y, Z), b.Eval(X, Y, Z), Z), val, 1.e-9)
	}
}

func TestPolynomialEval(t *testing.T) {
	p := New(1, 2, 0, 0).Sub(NewRat(big.NewRat(1, 2), 0, 1, 1))
	assert.InDelta(t, 4-0.5*3*5, p.Eval(2, 3, 5), 1.e-14)
	v := p.EvalRat(big.NewRat(1, 3), big.NewRat(2, 1), big.NewRat(3, 4))
	assert.Equal(t, 0, v.Cmp(big.NewRat(1*4-9*3, 36)))
	assert.Equal(t, 0, Polynomial{}.EvalRat(big.NewRat(1, 1), big.NewRat(1, 1), big.NewRat(1, 1)).Sign())
}

func TestPolynomialPow(t *testing.T) {
	x := Coordinate(0)
	one := x.Add(Constant(1))
	p5 := one.Pow(5)
	// Binomial coefficients of (x+1)^5
	for k, c := range []int64{1, 5, 10, 10, 5, 1} {
		assert.Equal(t, 0, p5.Coefficient(k, 0, 0).Cmp(big.NewRat(c, 1)))
	}
	assert.True(t, x.Pow(0).Equal(One()))
	assert.Panics(t, func() { x.Pow(-1) })
	assert.Panics(t, func() { New(1, -1, 0, 0) })
}

func TestVectorOps(t *testing.T) {
	x, y, z := Coordinate(0), Coordinate(1), Coordinate(2)
	// v = (-y, x, 0) has curl (0, 0, 2) and zero divergence
	v := Vector{y.Neg(), x, Polynomial{}}
	curl := v.Curl()
	assert.True(t, curl.Equal(Vector{Polynomial{}, Polynomial{}, Constant(2)}))
	assert.True(t, v.Divergence().IsZero())
	// Curl of a gradient vanishes
	p := x.Mul(y).Mul(z).Add(x.Pow(3))
	assert.True(t, p.Gradient().Curl().IsZero())
	assert.True(t, p.Gradient().Divergence().Equal(x.ScaleInt(6)))
	assert.Equal(t, 1, v.Degree())
	assert.Equal(t, [3]float64{-2, 1, 0}, v.Eval(1, 2, 3))
	assert.True(t, v.Sub(v).IsZero())
	assert.True(t, v.Add(v.Neg()).IsZero())
	assert.True(t, v.ScaleInt(2).Equal(v.Add(v)))
	assert.True(t, v.Scale(big.NewRat(1, 2)).ScaleInt(2).Equal(v))
}

func TestBarycentric(t *testing.T) {
	// Unit tetrahedron
	lambda := BarycentricInt([][]int64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	require.Len(t, lambda, 4)
	x, y, z := Coordinate(0), Coordinate(1), Coordinate(2)
	assert.True(t, lambda[0].Equal(One().Sub(x).Sub(y).Sub(z)))
	assert.True(t, lambda[1].Equal(x))
	assert.True(t, lambda[2].Equal(y))
	assert.True(t, lambda[3].Equal(z))

	// Partition of unity and the Kronecker property on a general simplex
	verts := [][]*big.Rat{
		{big.NewRat(-1, 1), big.NewRat(-1, 1), big.NewRat(-1, 1)},
		{big.NewRat(1, 1), big.NewRat(-1, 1), big.NewRat(-1, 1)},
		{big.NewRat(-1, 1), big.NewRat(1, 1), big.NewRat(-1, 1)},
		{big.NewRat(-1, 2), big.NewRat(-1, 3), big.NewRat(1, 1)},
	}
	lambda = Barycentric(verts)
	var sum Polynomial
	for i, l := range lambda {
		sum = sum.Add(l)
		for j, v := range verts {
			val := l.EvalRat(v[0], v[1], v[2])
			if i == j {
				assert.Equal(t, 0, val.Cmp(big.NewRat(1, 1)))
			} else {
				assert.Equal(t, 0, val.Sign())
			}
		}
	}
	assert.True(t, sum.Equal(One()))

	// Triangle
	tri := BarycentricInt([][]int64{{0, 0}, {1, 0}, {0, 1}})
	assert.True(t, tri[0].Equal(One().Sub(x).Sub(y)))
	assert.Panics(t, func() { BarycentricInt([][]int64{{0, 0}, {1, 1}, {2, 2}}) })
	assert.Panics(t, func() { BarycentricInt([][]int64{{0}}) })
}
