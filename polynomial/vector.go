package polynomial

import "math/big"

// Vector is a vector valued polynomial, one component per reference
// coordinate. Scalar fields of a 2D or 1D element leave the unused
// components at zero.
type Vector [3]Polynomial

func (v Vector) Add(w Vector) (r Vector) {
	for i := range v {
		r[i] = v[i].Add(w[i])
	}
	return
}

func (v Vector) Sub(w Vector) (r Vector) {
	for i := range v {
		r[i] = v[i].Sub(w[i])
	}
	return
}

func (v Vector) Neg() (r Vector) {
	for i := range v {
		r[i] = v[i].Neg()
	}
	return
}

// MulPoly multiplies every component by the scalar polynomial p
func (v Vector) MulPoly(p Polynomial) (r Vector) {
	for i := range v {
		r[i] = v[i].Mul(p)
	}
	return
}

func (v Vector) ScaleInt(c int64) (r Vector) {
	for i := range v {
		r[i] = v[i].ScaleInt(c)
	}
	return
}

func (v Vector) Scale(c *big.Rat) (r Vector) {
	for i := range v {
		r[i] = v[i].Scale(c)
	}
	return
}

func (v Vector) Divergence() (r Polynomial) {
	for i := range v {
		r = r.Add(v[i].Derivative(i))
	}
	return
}

func (v Vector) Curl() Vector {
	return Vector{
		v[2].Derivative(1).Sub(v[1].Derivative(2)),
		v[0].Derivative(2).Sub(v[2].Derivative(0)),
		v[1].Derivative(0).Sub(v[0].Derivative(1)),
	}
}

func (v Vector) Eval(x, y, z float64) (r [3]float64) {
	for i := range v {
		r[i] = v[i].Eval(x, y, z)
	}
	return
}

func (v Vector) Equal(w Vector) bool {
	for i := range v {
		if !v[i].Equal(w[i]) {
			return false
		}
	}
	return true
}

func (v Vector) IsZero() bool {
	for i := range v {
		if !v[i].IsZero() {
			return false
		}
	}
	return true
}

func (v Vector) Degree() (deg int) {
	deg = -1
	for i := range v {
		deg = max(deg, v[i].Degree())
	}
	return
}
