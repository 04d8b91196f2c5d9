// Package nodalbasis assembles everything a mesh generator needs about one
// reference element, its nodes, closures and hierarchical functions, and
// caches the result per element tag.
package nodalbasis

import (
	"errors"
	"fmt"

	"github.com/notargets/nodalbasis/closures"
	"github.com/notargets/nodalbasis/hierarchical"
	"github.com/notargets/nodalbasis/lagrange"
	"github.com/notargets/nodalbasis/points"
	"github.com/notargets/nodalbasis/shapes"
	"github.com/notargets/nodalbasis/utils"
)

// Descriptor is immutable once built and safe for concurrent readers
type Descriptor struct {
	tag       shapes.Tag
	points    utils.Matrix
	closures  closures.Set
	basis     *hierarchical.Basis
	edgeBasis *hierarchical.Basis
	nodal     *lagrange.Element
}

/*
NewDescriptor builds the descriptor of tag from scratch. Simplices of full
order also carry the scalar hierarchical basis, and tetrahedra the edge
basis, wherever those are implemented for the order. Every tag with a
Lagrange space carries its nodal shape functions, unless the element is too
large for dense operators or its nodes do not determine them. Shapes and
orders without one leave Basis, EdgeBasis or Nodal nil.
*/
func NewDescriptor(tag shapes.Tag) (d *Descriptor, err error) {
	if err = tag.Validate(); err != nil {
		return
	}
	tag = tag.Canonical()
	d = &Descriptor{tag: tag}
	if d.points, err = points.Generate(tag); err != nil {
		return nil, err
	}
	if d.closures, err = closures.Generate(tag, d.points); err != nil {
		return nil, err
	}
	if tag.Shape.Simplex() && !tag.Serendipity && tag.Order > 0 {
		if d.basis, err = optional(hierarchical.NewNodeBasis(tag.Shape, tag.Order)); err != nil {
			return nil, err
		}
	}
	if tag.Shape == shapes.Tet && !tag.Serendipity && tag.Order > 0 {
		if d.edgeBasis, err = optional(hierarchical.NewTetEdgeBasis(tag.Order)); err != nil {
			return nil, err
		}
	}
	d.nodal, err = lagrange.NewElement(tag)
	if errors.Is(err, lagrange.ErrUnsupportedSpace) || errors.Is(err, lagrange.ErrIllConditioned) {
		d.nodal, err = nil, nil
	}
	if err != nil {
		return nil, err
	}
	return
}

// optional drops an unsupported basis and keeps every other failure
func optional(b *hierarchical.Basis, err error) (*hierarchical.Basis, error) {
	if errors.Is(err, hierarchical.ErrUnsupportedOrder) {
		return nil, nil
	}
	return b, err
}

func (d *Descriptor) Tag() shapes.Tag      { return d.tag }
func (d *Descriptor) Order() int           { return d.tag.Order }
func (d *Descriptor) Serendipity() bool    { return d.tag.Serendipity }
func (d *Descriptor) NumNodes() int        { return d.tag.NumNodes() }
func (d *Descriptor) NumClosures() int     { return d.closures.Len() }
func (d *Descriptor) Points() utils.Matrix { return d.points }

// Basis is the scalar hierarchical basis, nil when none is implemented
func (d *Descriptor) Basis() *hierarchical.Basis { return d.basis }

// EdgeBasis is the tetrahedral Nédélec basis, nil when none is implemented
func (d *Descriptor) EdgeBasis() *hierarchical.Basis { return d.edgeBasis }

// Nodal is the Lagrange element on the reference nodes, nil when the shape
// has no polynomial Lagrange space at this order
func (d *Descriptor) Nodal() *lagrange.Element { return d.nodal }

// Closure returns a copy of boundary closure i
func (d *Descriptor) Closure(i int) closures.Closure {
	d.checkIndex(i)
	return d.closures.Closures[i].Clone()
}

// FullClosure returns a copy of the element permutation of symmetry i
func (d *Descriptor) FullClosure(i int) closures.Closure {
	d.checkIndex(i)
	return d.closures.Full[i].Clone()
}

// ClosureRef is the index of the closure Closure(i) is expressed against
func (d *Descriptor) ClosureRef(i int) int {
	d.checkIndex(i)
	return d.closures.Ref[i]
}

// MatchVertices returns the symmetry index taking the canonical vertex order
// to observed
func (d *Descriptor) MatchVertices(observed []int) (int, bool) {
	return d.closures.MatchVertices(observed)
}

// Inverse returns the symmetry index undoing symmetry i
func (d *Descriptor) Inverse(i int) (int, bool) {
	d.checkIndex(i)
	return d.closures.Inverse(i)
}

func (d *Descriptor) checkIndex(i int) {
	if i < 0 || i >= d.closures.Len() {
		panic(fmt.Errorf("%s: symmetry index %d out of range [0,%d)", d.tag, i, d.closures.Len()))
	}
}

// Summary is a serializable digest of a descriptor
type Summary struct {
	Tag         string      `json:"tag"`
	Code        int         `json:"code"`
	GmshType    int         `json:"gmshType,omitempty"`
	Nodes       int         `json:"nodes"`
	Symmetries  int         `json:"symmetries"`
	BasisSize   int         `json:"basisSize,omitempty"`
	VectorBasis int         `json:"vectorBasisSize,omitempty"`
	EdgeFuncs   int         `json:"edgeFunctions,omitempty"`
	FaceFuncs   int         `json:"faceFunctions,omitempty"`
	Cond        float64     `json:"vandermondeCond,omitempty"`
	Points      [][]float64 `json:"points,omitempty"`
	Full        [][]int     `json:"fullClosures,omitempty"`
}

// Summarize digests the descriptor, with node coordinates and full closures
// when detail is set
func (d *Descriptor) Summarize(detail bool) (s Summary) {
	s = Summary{
		Tag:        d.tag.String(),
		Code:       d.tag.Encode(),
		Nodes:      d.NumNodes(),
		Symmetries: d.NumClosures(),
	}
	if et, ok := d.tag.GmshType(); ok {
		s.GmshType = et
	}
	if d.basis != nil {
		s.BasisSize = d.basis.Size()
	}
	if d.edgeBasis != nil {
		s.VectorBasis = d.edgeBasis.Size()
		s.EdgeFuncs = d.edgeBasis.PerClass(hierarchical.Edge)
		s.FaceFuncs = d.edgeBasis.PerClass(hierarchical.Face)
	}
	if d.nodal != nil {
		s.Cond = d.nodal.V.Cond()
	}
	if detail {
		np, _ := d.points.Dims()
		for i := 0; i < np; i++ {
			s.Points = append(s.Points, d.points.Row(i))
		}
		for _, cl := range d.closures.Full {
			s.Full = append(s.Full, append([]int{}, cl.Nodes...))
		}
	}
	return
}
