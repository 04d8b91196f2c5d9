package polynomial

import (
	"fmt"
	"math/big"
)

// Barycentric returns the affine functions λ_i of the simplex with the given
// vertices, λ_i(v_j) = δ_ij. A d dimensional simplex has d+1 vertices of d
// coordinates each; the functions depend on the first d reference
// coordinates only. A degenerate simplex is a precondition violation.
func Barycentric(vertices [][]*big.Rat) (lambda []Polynomial) {
	var (
		nv  = len(vertices)
		dim = nv - 1
	)
	if dim < 1 || dim > 3 {
		panic(fmt.Errorf("a simplex needs 2 to 4 vertices, have %d", nv))
	}
	// Rows are [1, v_j]; column i of the inverse holds the coefficients of λ_i
	A := make([][]*big.Rat, nv)
	for j, v := range vertices {
		if len(v) != dim {
			panic(fmt.Errorf("vertex %d has %d coordinates, need %d", j, len(v), dim))
		}
		A[j] = make([]*big.Rat, nv)
		A[j][0] = big.NewRat(1, 1)
		for d := 0; d < dim; d++ {
			A[j][d+1] = new(big.Rat).Set(v[d])
		}
	}
	Ainv := invertRat(A)
	lambda = make([]Polynomial, nv)
	for i := 0; i < nv; i++ {
		l := NewRat(Ainv[0][i], 0, 0, 0)
		for d := 0; d < dim; d++ {
			var e Exponent
			e[d] = 1
			l = l.Add(NewRat(Ainv[d+1][i], e[0], e[1], e[2]))
		}
		lambda[i] = l
	}
	return
}

// BarycentricInt is Barycentric for integer vertex coordinates
func BarycentricInt(vertices [][]int64) []Polynomial {
	rv := make([][]*big.Rat, len(vertices))
	for j, v := range vertices {
		rv[j] = make([]*big.Rat, len(v))
		for d, c := range v {
			rv[j][d] = new(big.Rat).SetInt64(c)
		}
	}
	return Barycentric(rv)
}

// invertRat is exact Gauss-Jordan elimination on a small square system
func invertRat(A [][]*big.Rat) (inv [][]*big.Rat) {
	n := len(A)
	M := make([][]*big.Rat, n)
	for i := range A {
		M[i] = make([]*big.Rat, 2*n)
		for j := 0; j < n; j++ {
			M[i][j] = new(big.Rat).Set(A[i][j])
			M[i][n+j] = new(big.Rat)
		}
		M[i][n+i].SetInt64(1)
	}
	tmp := new(big.Rat)
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if M[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			panic(fmt.Errorf("degenerate simplex: singular vertex matrix"))
		}
		M[col], M[pivot] = M[pivot], M[col]
		scale := new(big.Rat).Inv(M[col][col])
		for j := range M[col] {
			M[col][j].Mul(M[col][j], scale)
		}
		for r := 0; r < n; r++ {
			if r == col || M[r][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(M[r][col])
			for j := range M[r] {
				tmp.Mul(f, M[col][j])
				M[r][j].Sub(M[r][j], tmp)
			}
		}
	}
	inv = make([][]*big.Rat, n)
	for i := range M {
		inv[i] = M[i][n:]
	}
	return
}
