package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a row major dense matrix over gonum, used for reference node
// tables (one row per node, one column per coordinate) and for basis
// evaluation tables (one row per point, one column per function)
type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			panic(fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				nr, nc, len(dataO[0])))
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else if nr != 0 && nc != 0 {
		m = mat.NewDense(nr, nc, nil)
	}
	R = Matrix{
		M:    m,
		name: "unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// NewMatrixFromRows copies a row list, all rows must have the same length
func NewMatrixFromRows(rows [][]float64) (R Matrix) {
	if len(rows) == 0 {
		return NewMatrix(0, 0)
	}
	nc := len(rows[0])
	data := make([]float64, 0, len(rows)*nc)
	for i, row := range rows {
		if len(row) != nc {
			panic(fmt.Errorf("row %d has length %d, expected %d", i, len(row), nc))
		}
		data = append(data, row...)
	}
	return NewMatrix(len(rows), nc, data)
}

// Dims and At satisfy the mat.Matrix read interface; an empty Matrix has
// zero dimensions
func (m Matrix) Dims() (r, c int) {
	if m.M == nil {
		return 0, 0
	}
	return m.M.Dims()
}
func (m Matrix) At(i, j int) float64 { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix       { return m.M.T() }

func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m Matrix) IsReadOnly() bool { return m.readOnly }

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetRow(i int, data []float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.SetRow(i, data)
	return m
}

func (m Matrix) Row(i int) (row []float64) { // Does not change receiver
	_, nc := m.Dims()
	row = make([]float64, nc)
	copy(row, m.M.RawRowView(i))
	return
}

func (m Matrix) Col(j int) (col []float64) { // Does not change receiver
	nr, _ := m.Dims()
	col = make([]float64, nr)
	for i := range col {
		col[i] = m.M.At(i, j)
	}
	return
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	nr, nc := m.Dims()
	R = NewMatrix(nr, nc)
	if R.M != nil {
		R.M.Copy(m.M)
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	nrM, _ := m.Dims()
	_, ncA := A.Dims()
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

// Inverse uses gonum's LU based inverse and reports singular input
func (m Matrix) Inverse() (R Matrix, err error) {
	nr, nc := m.Dims()
	if nr != nc {
		err = fmt.Errorf("unable to invert a %d x %d matrix", nr, nc)
		return
	}
	R = NewMatrix(nr, nc)
	if err = R.M.Inverse(m.M); err != nil {
		err = fmt.Errorf("unable to invert, matrix is singular: %w", err)
	}
	return
}

// Cond returns the 2-norm condition number
func (m Matrix) Cond() float64 {
	return mat.Cond(m.M, 2)
}

func (m Matrix) String() string {
	if m.M == nil {
		return "[]"
	}
	return fmt.Sprintf("%v", mat.Formatted(m.M, mat.Squeeze()))
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		panic(fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name))
	}
}
