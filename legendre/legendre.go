// Package legendre builds the one dimensional polynomial families used as
// hierarchical shape function generators. All families are expressed in the
// engine's x (the argument) and, for the scaled families, y (the scaling
// variable), so that Compose can map them onto barycentric expressions.
package legendre

import (
	"fmt"
	"math/big"

	"github.com/notargets/nodalbasis/polynomial"
)

// Legendre returns P_0..P_maxDegree in x:
//
//	n P_n = (2n-1) x P_{n-1} - (n-1) P_{n-2}
func Legendre(maxDegree int) (P []polynomial.Polynomial) {
	checkDegree(maxDegree)
	return recurrence(maxDegree, polynomial.One(),
		func(n int) (*big.Rat, *big.Rat) {
			return big.NewRat(int64(2*n-1), int64(n)), big.NewRat(int64(n-1), int64(n))
		}, polynomial.One())
}

// Scaled returns the homogeneous scaled Legendre polynomials
// P_n(x, y) = y^n P_n(x/y), n = 0..maxDegree
func Scaled(maxDegree int) (P []polynomial.Polynomial) {
	checkDegree(maxDegree)
	y := polynomial.Coordinate(1)
	return recurrence(maxDegree, polynomial.One(),
		func(n int) (*big.Rat, *big.Rat) {
			return big.NewRat(int64(2*n-1), int64(n)), big.NewRat(int64(n-1), int64(n))
		}, y.Mul(y))
}

// IntScaled returns the integrated, scaled Legendre polynomials
// L_n(x, y) = y^n L_n(x/y), n = 0..maxDegree, with L_0 = -1, L_1 = x and
//
//	n L_n = (2n-3) x L_{n-1} - (n-3) y^2 L_{n-2}
//
// For y = 1 and n >= 2 this is the antiderivative of P_{n-1} vanishing at
// x = -1, so L_n vanishes at both endpoints x = ±y.
func IntScaled(maxDegree int) (L []polynomial.Polynomial) {
	checkDegree(maxDegree)
	y := polynomial.Coordinate(1)
	return recurrence(maxDegree, polynomial.Constant(-1),
		func(n int) (*big.Rat, *big.Rat) {
			return big.NewRat(int64(2*n-3), int64(n)), big.NewRat(int64(n-3), int64(n))
		}, y.Mul(y))
}

// recurrence evaluates p_n = a_n x p_{n-1} - b_n s p_{n-2} with p_1 = x
func recurrence(maxDegree int, p0 polynomial.Polynomial,
	coeffs func(n int) (a, b *big.Rat), s polynomial.Polynomial) (P []polynomial.Polynomial) {
	x := polynomial.Coordinate(0)
	P = make([]polynomial.Polynomial, maxDegree+1)
	P[0] = p0
	if maxDegree == 0 {
		return
	}
	P[1] = x
	for n := 2; n <= maxDegree; n++ {
		a, b := coeffs(n)
		P[n] = x.Mul(P[n-1]).Scale(a).Sub(s.Mul(P[n-2]).Scale(b))
	}
	return
}

func checkDegree(maxDegree int) {
	if maxDegree < 0 {
		panic(fmt.Errorf("negative maximum degree %d", maxDegree))
	}
}

// Family bundles the three families for one maximum degree d. IntScaled holds
// one extra member, degree d+1, since the edge functions of an order d
// element run one degree above the interior generators.
type Family struct {
	MaxDegree int
	Legendre  []polynomial.Polynomial // degree 0..d
	Scaled    []polynomial.Polynomial // degree 0..d
	IntScaled []polynomial.Polynomial // degree 0..d+1
}

func NewFamily(maxDegree int) (f *Family) {
	f = &Family{
		MaxDegree: maxDegree,
		Legendre:  Legendre(maxDegree),
		Scaled:    Scaled(maxDegree),
		IntScaled: IntScaled(maxDegree + 1),
	}
	return
}
