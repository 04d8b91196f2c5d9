package polynomial

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/notargets/nodalbasis/utils"
)

// Exponent holds the powers of the three reference coordinates x, y, z
type Exponent [3]int

func (e Exponent) Add(f Exponent) Exponent {
	return Exponent{e[0] + f[0], e[1] + f[1], e[2] + f[2]}
}

func (e Exponent) Degree() int { return e[0] + e[1] + e[2] }

// before orders exponents by decreasing total degree, then by decreasing
// powers of x, y, z in turn
func (e Exponent) before(f Exponent) bool {
	if de, df := e.Degree(), f.Degree(); de != df {
		return de > df
	}
	for i := 0; i < 3; i++ {
		if e[i] != f[i] {
			return e[i] > f[i]
		}
	}
	return false
}

type Monomial struct {
	Coef *big.Rat
	Exp  Exponent
}

// Polynomial is a finite sum of monomials in (x, y, z) with exact rational
// coefficients. Terms are kept sorted with unique exponents and no zero
// coefficients, so two equal polynomials have identical term lists. The zero
// value is the zero polynomial. Operations never modify their receiver or
// arguments and never share coefficient storage with them.
type Polynomial struct {
	terms []Monomial
}

// New returns the monomial coef * x^px * y^py * z^pz
func New(coef int64, px, py, pz int) Polynomial {
	return NewRat(new(big.Rat).SetInt64(coef), px, py, pz)
}

func NewRat(coef *big.Rat, px, py, pz int) Polynomial {
	if px < 0 || py < 0 || pz < 0 {
		panic(fmt.Errorf("negative exponent in monomial: (%d,%d,%d)", px, py, pz))
	}
	if coef == nil || coef.Sign() == 0 {
		return Polynomial{}
	}
	return Polynomial{terms: []Monomial{{Coef: new(big.Rat).Set(coef), Exp: Exponent{px, py, pz}}}}
}

func Constant(c int64) Polynomial { return New(c, 0, 0, 0) }

func One() Polynomial { return Constant(1) }

// Coordinate returns the polynomial x (dim=0), y (dim=1) or z (dim=2)
func Coordinate(dim int) Polynomial {
	var e Exponent
	e[dim] = 1
	return New(1, e[0], e[1], e[2])
}

type accumulator map[Exponent]*big.Rat

func (acc accumulator) add(e Exponent, c *big.Rat) {
	if v, ok := acc[e]; ok {
		v.Add(v, c)
		return
	}
	acc[e] = new(big.Rat).Set(c)
}

func (acc accumulator) polynomial() (p Polynomial) {
	for e, c := range acc {
		if c.Sign() != 0 {
			p.terms = append(p.terms, Monomial{Coef: c, Exp: e})
		}
	}
	sort.Slice(p.terms, func(i, j int) bool {
		return p.terms[i].Exp.before(p.terms[j].Exp)
	})
	return
}

func (p Polynomial) accumulate(acc accumulator, sign int64) {
	for _, t := range p.terms {
		if sign == 1 {
			acc.add(t.Exp, t.Coef)
			continue
		}
		acc.add(t.Exp, new(big.Rat).Neg(t.Coef))
	}
}

// Terms returns a deep copy of the canonical term list
func (p Polynomial) Terms() (terms []Monomial) {
	terms = make([]Monomial, len(p.terms))
	for i, t := range p.terms {
		terms[i] = Monomial{Coef: new(big.Rat).Set(t.Coef), Exp: t.Exp}
	}
	return
}

func (p Polynomial) NumTerms() int { return len(p.terms) }

func (p Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Degree is the largest total degree of any term, -1 for the zero polynomial
func (p Polynomial) Degree() (deg int) {
	deg = -1
	for _, t := range p.terms {
		if d := t.Exp.Degree(); d > deg {
			deg = d
		}
	}
	return
}

// Coefficient returns a copy of the coefficient of x^px y^py z^pz
func (p Polynomial) Coefficient(px, py, pz int) *big.Rat {
	e := Exponent{px, py, pz}
	for _, t := range p.terms {
		if t.Exp == e {
			return new(big.Rat).Set(t.Coef)
		}
	}
	return new(big.Rat)
}

func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i, t := range p.terms {
		if t.Exp != q.terms[i].Exp || t.Coef.Cmp(q.terms[i].Coef) != 0 {
			return false
		}
	}
	return true
}

func (p Polynomial) Add(q Polynomial) Polynomial {
	acc := make(accumulator, len(p.terms)+len(q.terms))
	p.accumulate(acc, 1)
	q.accumulate(acc, 1)
	return acc.polynomial()
}

func (p Polynomial) Sub(q Polynomial) Polynomial {
	acc := make(accumulator, len(p.terms)+len(q.terms))
	p.accumulate(acc, 1)
	q.accumulate(acc, -1)
	return acc.polynomial()
}

func (p Polynomial) Neg() Polynomial {
	return p.Scale(big.NewRat(-1, 1))
}

func (p Polynomial) ScaleInt(c int64) Polynomial {
	return p.Scale(new(big.Rat).SetInt64(c))
}

func (p Polynomial) Scale(c *big.Rat) (r Polynomial) {
	if c.Sign() == 0 {
		return
	}
	r.terms = make([]Monomial, len(p.terms))
	for i, t := range p.terms {
		r.terms[i] = Monomial{Coef: new(big.Rat).Mul(t.Coef, c), Exp: t.Exp}
	}
	return
}

// Mul distributes over every pair of terms; the degree of the result is
// the sum of the degrees of the factors
func (p Polynomial) Mul(q Polynomial) Polynomial {
	acc := make(accumulator, len(p.terms)*len(q.terms))
	tmp := new(big.Rat)
	for _, a := range p.terms {
		for _, b := range q.terms {
			tmp.Mul(a.Coef, b.Coef)
			acc.add(a.Exp.Add(b.Exp), tmp)
		}
	}
	return acc.polynomial()
}

func (p Polynomial) Pow(n int) (r Polynomial) {
	if n < 0 {
		panic(fmt.Errorf("negative power %d of a polynomial", n))
	}
	r = One()
	base := p
	for n > 0 {
		if n&1 == 1 {
			r = r.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return
}

// Compose substitutes a for x and b for y; z is left untouched. This is how
// a one dimensional family member P(x, y) becomes a function of two
// barycentric expressions, e.g. P(λ0-λ1, λ0+λ1).
func (p Polynomial) Compose(a, b Polynomial) Polynomial {
	var (
		maxA, maxB int
	)
	for _, t := range p.terms {
		maxA = max(maxA, t.Exp[0])
		maxB = max(maxB, t.Exp[1])
	}
	powA, powB := powers(a, maxA), powers(b, maxB)
	acc := make(accumulator)
	for _, t := range p.terms {
		f := powA[t.Exp[0]].Mul(powB[t.Exp[1]])
		for _, ft := range f.terms {
			c := new(big.Rat).Mul(ft.Coef, t.Coef)
			acc.add(ft.Exp.Add(Exponent{0, 0, t.Exp[2]}), c)
		}
	}
	return acc.polynomial()
}

func powers(p Polynomial, n int) (pw []Polynomial) {
	pw = make([]Polynomial, n+1)
	pw[0] = One()
	for i := 1; i <= n; i++ {
		pw[i] = pw[i-1].Mul(p)
	}
	return
}

// Derivative is the partial derivative with respect to coordinate dim
func (p Polynomial) Derivative(dim int) Polynomial {
	if dim < 0 || dim > 2 {
		panic(fmt.Errorf("derivative direction %d out of range", dim))
	}
	acc := make(accumulator, len(p.terms))
	for _, t := range p.terms {
		if t.Exp[dim] == 0 {
			continue
		}
		e := t.Exp
		c := new(big.Rat).Mul(t.Coef, new(big.Rat).SetInt64(int64(e[dim])))
		e[dim]--
		acc.add(e, c)
	}
	return acc.polynomial()
}

func (p Polynomial) Gradient() Vector {
	return Vector{p.Derivative(0), p.Derivative(1), p.Derivative(2)}
}

func (p Polynomial) Eval(x, y, z float64) (val float64) {
	for _, t := range p.terms {
		c, _ := t.Coef.Float64()
		val += c * utils.POW(x, t.Exp[0]) * utils.POW(y, t.Exp[1]) * utils.POW(z, t.Exp[2])
	}
	return
}

// EvalRat evaluates exactly at a rational point
func (p Polynomial) EvalRat(x, y, z *big.Rat) (val *big.Rat) {
	val = new(big.Rat)
	coords := [3]*big.Rat{x, y, z}
	term := new(big.Rat)
	for _, t := range p.terms {
		term.Set(t.Coef)
		for i, c := range coords {
			for k := 0; k < t.Exp[i]; k++ {
				term.Mul(term, c)
			}
		}
		val.Add(val, term)
	}
	return
}

func (p Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	var (
		sb    strings.Builder
		names = [3]string{"x", "y", "z"}
	)
	for i, t := range p.terms {
		c := new(big.Rat).Set(t.Coef)
		switch {
		case i == 0 && c.Sign() < 0:
			sb.WriteString("-")
			c.Neg(c)
		case i > 0 && c.Sign() < 0:
			sb.WriteString(" - ")
			c.Neg(c)
		case i > 0:
			sb.WriteString(" + ")
		}
		var factors []string
		if t.Exp.Degree() == 0 || c.Cmp(big.NewRat(1, 1)) != 0 {
			factors = append(factors, c.RatString())
		}
		for d, pw := range t.Exp {
			switch {
			case pw == 1:
				factors = append(factors, names[d])
			case pw > 1:
				factors = append(factors, fmt.Sprintf("%s^%d", names[d], pw))
			}
		}
		sb.WriteString(strings.Join(factors, "*"))
	}
	return sb.String()
}
