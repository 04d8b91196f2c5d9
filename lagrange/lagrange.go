// Package lagrange builds the nodal (Lagrange) shape functions of a reference
// element: the polynomials of its monomial space that are one at one
// reference node and zero at all others.
package lagrange

import (
	"errors"
	"fmt"

	"github.com/notargets/nodalbasis/points"
	"github.com/notargets/nodalbasis/polynomial"
	"github.com/notargets/nodalbasis/shapes"
	"github.com/notargets/nodalbasis/utils"
)

var (
	ErrUnsupportedSpace = errors.New("no Lagrange space for this element")
	ErrIllConditioned   = errors.New("nodal Vandermonde matrix is not invertible")
)

// MaxNodes bounds the node count of an element whose dense operators are built
const MaxNodes = 1000

/*
Element carries the nodal basis of one tag. The Vandermonde matrix V holds the
orthonormal modes of the element, one per entry of Modes, at the reference
nodes. Shape function j is psi_j = sum_k Vinv[k][j] phi_k, so evaluating at a
point set is a Vandermonde product. Dr, Ds and Dt differentiate nodal values
in the reference coordinates, one per dimension of the shape.
*/
type Element struct {
	Tag        shapes.Tag
	Np, Dim    int
	Modes      []polynomial.Exponent
	Nodes      utils.Matrix
	V, Vinv    utils.Matrix
	Dr, Ds, Dt utils.Matrix
}

func NewElement(tag shapes.Tag) (el *Element, err error) {
	el = &Element{Tag: tag.Canonical(), Dim: tag.Shape.Dimension()}
	if el.Modes, err = Monomials(tag); err != nil {
		return nil, err
	}
	el.Np = len(el.Modes)
	if el.Np > MaxNodes {
		return nil, fmt.Errorf("%w: %s has %d nodes, above %d", ErrUnsupportedSpace, el.Tag, el.Np, MaxNodes)
	}
	if el.Nodes, err = points.Generate(el.Tag); err != nil {
		return nil, err
	}
	el.V = el.Vandermonde(el.Nodes)
	if el.Vinv, err = el.V.Inverse(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIllConditioned, el.Tag, err)
	}
	D := el.Derivatives(el.Nodes)
	for d, dm := range []*utils.Matrix{&el.Dr, &el.Ds, &el.Dt} {
		if d < el.Dim {
			*dm = D[d]
		}
	}
	// Mark fields read only
	el.V.SetReadOnly("V")
	el.Vinv.SetReadOnly("Vinv")
	for d, dm := range []*utils.Matrix{&el.Dr, &el.Ds, &el.Dt} {
		if d < el.Dim {
			dm.SetReadOnly([]string{"Dr", "Ds", "Dt"}[d])
		}
	}
	return
}

// Vandermonde evaluates the modes at the rows of pts, one row per point
func (el *Element) Vandermonde(pts utils.Matrix) (V utils.Matrix) {
	np, _ := pts.Dims()
	V = utils.NewMatrix(np, el.Np)
	for i := 0; i < np; i++ {
		x := coordinates(pts, i)
		for j, m := range el.Modes {
			v, _ := mode(el.Tag.Shape, m, x)
			V.Set(i, j, v)
		}
	}
	return
}

// GradVandermonde holds the mode derivatives along each reference coordinate
// at the rows of pts
func (el *Element) GradVandermonde(pts utils.Matrix) (V [3]utils.Matrix) {
	np, _ := pts.Dims()
	for d := 0; d < el.Dim; d++ {
		V[d] = utils.NewMatrix(np, el.Np)
	}
	for i := 0; i < np; i++ {
		x := coordinates(pts, i)
		for j, m := range el.Modes {
			_, g := mode(el.Tag.Shape, m, x)
			for d := 0; d < el.Dim; d++ {
				V[d].Set(i, j, g[d])
			}
		}
	}
	return
}

// Evaluate returns psi_j at the rows of pts, one row per point and one column
// per node
func (el *Element) Evaluate(pts utils.Matrix) utils.Matrix {
	return el.Vandermonde(pts).Mul(el.Vinv)
}

// Derivatives returns the shape function derivatives at the rows of pts,
// one matrix per dimension of the shape
func (el *Element) Derivatives(pts utils.Matrix) (D [3]utils.Matrix) {
	G := el.GradVandermonde(pts)
	for d := 0; d < el.Dim; d++ {
		D[d] = G[d].Mul(el.Vinv)
	}
	return
}

// Interpolate evaluates the nodal field values at the rows of pts
func (el *Element) Interpolate(values []float64, pts utils.Matrix) (R []float64) {
	if len(values) != el.Np {
		panic(fmt.Errorf("have %d nodal values for %d nodes", len(values), el.Np))
	}
	psi := el.Evaluate(pts)
	np, _ := psi.Dims()
	R = make([]float64, np)
	for i := 0; i < np; i++ {
		for j, v := range values {
			R[i] += psi.At(i, j) * v
		}
	}
	return
}

func coordinates(pts utils.Matrix, i int) (x [3]float64) {
	_, nc := pts.Dims()
	for d := 0; d < min(nc, 3); d++ {
		x[d] = pts.At(i, d)
	}
	return
}
