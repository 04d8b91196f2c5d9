package lagrange

import (
	"fmt"

	"github.com/notargets/nodalbasis/polynomial"
	"github.com/notargets/nodalbasis/shapes"
)

// Monomials returns the exponents spanning the Lagrange space of tag, in a
// fixed order. Serendipity quads and hexahedra keep the monomials with at most
// one exponent above one, whose count matches their boundary node count.
// Every exponent set is closed under lowering an entry, so the orthonormal
// modes indexed by the same triples span the same space.
func Monomials(tag shapes.Tag) (exps []polynomial.Exponent, err error) {
	if err = tag.Validate(); err != nil {
		return
	}
	tag = tag.Canonical()
	var (
		p        = tag.Order
		serendip = tag.Serendipity
	)
	if serendip && tag.Shape != shapes.Quad && tag.Shape != shapes.Hex {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSpace, tag)
	}
	add := func(i, j, k int) {
		if serendip && overLinear(i, j, k) > 1 {
			return
		}
		exps = append(exps, polynomial.Exponent{i, j, k})
	}
	switch tag.Shape {
	case shapes.Point:
		add(0, 0, 0)
	case shapes.Line:
		for i := 0; i <= p; i++ {
			add(i, 0, 0)
		}
	case shapes.Triangle:
		for d := 0; d <= p; d++ {
			for j := 0; j <= d; j++ {
				add(d-j, j, 0)
			}
		}
	case shapes.Quad:
		for j := 0; j <= p; j++ {
			for i := 0; i <= p; i++ {
				add(i, j, 0)
			}
		}
	case shapes.Tet:
		for d := 0; d <= p; d++ {
			for k := 0; k <= d; k++ {
				for j := 0; j <= d-k; j++ {
					add(d-j-k, j, k)
				}
			}
		}
	case shapes.Prism:
		for k := 0; k <= p; k++ {
			for d := 0; d <= p; d++ {
				for j := 0; j <= d; j++ {
					add(d-j, j, k)
				}
			}
		}
	case shapes.Hex:
		for k := 0; k <= p; k++ {
			for j := 0; j <= p; j++ {
				for i := 0; i <= p; i++ {
					add(i, j, k)
				}
			}
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSpace, tag)
	}
	if len(exps) != tag.NumNodes() {
		return nil, fmt.Errorf("%w: %s spans %d monomials for %d nodes",
			ErrUnsupportedSpace, tag, len(exps), tag.NumNodes())
	}
	return
}

func overLinear(e ...int) (n int) {
	for _, v := range e {
		if v > 1 {
			n++
		}
	}
	return
}
