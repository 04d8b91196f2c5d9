package lagrange

import (
	"math"

	"github.com/notargets/nodalbasis/polynomial"
	"github.com/notargets/nodalbasis/shapes"
	"github.com/notargets/nodalbasis/utils"
)

// collapseTol is the distance from a collapsed edge or vertex below which the
// collapsed coordinate is pinned to -1
const collapseTol = 1.e-10

// jacobiP returns the orthonormal Jacobi polynomials P_0..P_n of weight
// (1-x)^alpha (1+x)^beta at x
func jacobiP(x, alpha, beta float64, n int) (P []float64) {
	var (
		ab     = alpha + beta
		a1, b1 = alpha + 1, beta + 1
		gamma0 = math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab+1) / (ab + 1) / math.Gamma(ab+1)
		gamma1 = a1 * b1 * gamma0 / (ab + 3)
	)
	P = make([]float64, n+1)
	P[0] = 1 / math.Sqrt(gamma0)
	if n == 0 {
		return
	}
	P[1] = ((ab+2)*x/2 + (alpha-beta)/2) / math.Sqrt(gamma1)
	aold := 2 / (ab + 2) * math.Sqrt(a1*b1/(ab+3))
	for i := 1; i < n; i++ {
		var (
			fi   = float64(i)
			h1   = 2*fi + ab
			anew = 2 / (h1 + 2) * math.Sqrt((fi+1)*(fi+ab+1)*(fi+a1)*(fi+b1)/(h1+1)/(h1+3))
			bnew = -(alpha*alpha - beta*beta) / h1 / (h1 + 2)
		)
		P[i+1] = (-aold*P[i-1] + (x-bnew)*P[i]) / anew
		aold = anew
	}
	return
}

// jacobi returns the degree n orthonormal Jacobi polynomial and its derivative
func jacobi(x, alpha, beta float64, n int) (p, dp float64) {
	p = jacobiP(x, alpha, beta, n)[n]
	if n == 0 {
		return
	}
	fn := float64(n)
	dp = math.Sqrt(fn*(fn+alpha+beta+1)) * jacobiP(x, alpha+1, beta+1, n-1)[n-1]
	return
}

// mode evaluates orthonormal mode m of the shape and its gradient in the
// reference coordinates x. Tensor shapes take Legendre products, simplices the
// collapsed coordinate Dubiner modes on the unit simplex mapped to [-1,1].
func mode(s shapes.Shape, m polynomial.Exponent, x [3]float64) (v float64, grad [3]float64) {
	switch s {
	case shapes.Point:
		return 1, grad
	case shapes.Line, shapes.Quad, shapes.Hex:
		v = 1
		var d1 [3]float64
		vals := [3]float64{1, 1, 1}
		for d := 0; d < s.Dimension(); d++ {
			vals[d], d1[d] = jacobi(x[d], 0, 0, m[d])
		}
		for d := 0; d < s.Dimension(); d++ {
			v *= vals[d]
			grad[d] = d1[d]
			for e := 0; e < s.Dimension(); e++ {
				if e != d {
					grad[d] *= vals[e]
				}
			}
		}
		return
	case shapes.Triangle:
		var dr, ds float64
		v, dr, ds = dubiner2D(2*x[0]-1, 2*x[1]-1, m[0], m[1])
		grad[0], grad[1] = 2*dr, 2*ds
		return
	case shapes.Prism:
		var (
			t, dr, ds = dubiner2D(2*x[0]-1, 2*x[1]-1, m[0], m[1])
			l, dl     = jacobi(x[2], 0, 0, m[2])
		)
		return t * l, [3]float64{2 * dr * l, 2 * ds * l, t * dl}
	case shapes.Tet:
		var dr, ds, dt float64
		v, dr, ds, dt = dubiner3D(2*x[0]-1, 2*x[1]-1, 2*x[2]-1, m[0], m[1], m[2])
		return v, [3]float64{2 * dr, 2 * ds, 2 * dt}
	}
	panic("no modal basis for " + s.String())
}

// dubiner2D is the orthonormal mode (i,j) of the triangle (-1,-1),(1,-1),(-1,1)
func dubiner2D(r, s float64, i, j int) (v, dr, ds float64) {
	a, b := -1., s
	if math.Abs(1-s) > collapseTol {
		a = 2*(1+r)/(1-s) - 1
	}
	var (
		fa, dfa = jacobi(a, 0, 0, i)
		gb, dgb = jacobi(b, float64(2*i+1), 0, j)
		hb      = 0.5 * (1 - b)
		norm    = math.Pow(2, float64(i)+0.5)
	)
	v = norm * fa * gb * utils.POW(hb, i)
	dr = dfa * gb
	if i > 0 {
		dr *= utils.POW(hb, i-1)
	}
	ds = 0.5 * (1 + a) * dr
	tmp := dgb * utils.POW(hb, i)
	if i > 0 {
		tmp -= 0.5 * float64(i) * gb * utils.POW(hb, i-1)
	}
	ds += fa * tmp
	return v, norm * dr, norm * ds
}

// dubiner3D is the orthonormal mode (i,j,k) of the tetrahedron
// (-1,-1,-1),(1,-1,-1),(-1,1,-1),(-1,-1,1)
func dubiner3D(r, s, t float64, i, j, k int) (v, dr, ds, dt float64) {
	a, b, c := -1., -1., t
	if math.Abs(s+t) > collapseTol {
		a = 2*(1+r)/(-s-t) - 1
	}
	if math.Abs(t-1) > collapseTol {
		b = 2*(1+s)/(1-t) - 1
	}
	var (
		fa, dfa = jacobi(a, 0, 0, i)
		gb, dgb = jacobi(b, float64(2*i+1), 0, j)
		hc, dhc = jacobi(c, float64(2*(i+j)+2), 0, k)
		hb, hcw = 0.5 * (1 - b), 0.5 * (1 - c)
		ij      = i + j
		norm    = math.Pow(2, float64(2*i+j)+1.5)
	)
	v = norm * fa * gb * hc * utils.POW(hb, i) * utils.POW(hcw, ij)

	dr = dfa * gb * hc
	if i > 0 {
		dr *= utils.POW(hb, i-1)
	}
	if ij > 0 {
		dr *= utils.POW(hcw, ij-1)
	}

	tmp := dgb * utils.POW(hb, i)
	if i > 0 {
		tmp -= 0.5 * float64(i) * gb * utils.POW(hb, i-1)
	}
	if ij > 0 {
		tmp *= utils.POW(hcw, ij-1)
	}
	tmp = fa * tmp * hc
	ds = 0.5*(1+a)*dr + tmp

	dt = 0.5*(1+a)*dr + 0.5*(1+b)*tmp
	tmp2 := dhc * utils.POW(hcw, ij)
	if ij > 0 {
		tmp2 -= 0.5 * float64(ij) * hc * utils.POW(hcw, ij-1)
	}
	dt += fa * gb * tmp2 * utils.POW(hb, i)
	return v, norm * dr, norm * ds, norm * dt
}
