package closures

import (
	"github.com/notargets/nodalbasis/shapes"
	"github.com/notargets/nodalbasis/utils"
)

func lineSet(tag shapes.Tag, _ utils.Matrix) (set Set, err error) {
	var (
		p     = tag.Order
		point = shapes.Tag{Shape: shapes.Point}
	)
	last := 1
	if p == 0 {
		last = 0
	}
	set.Closures = []Closure{newClosure([]int{0}, point), newClosure([]int{last}, point)}
	set.Full = wrap(lineFull(p), tag)
	set.Ref = zeros(2)
	return
}

// lineFull returns the identity and the reversal of a line of order p
func lineFull(p int) (full [][]int) {
	if p == 0 {
		return [][]int{{0}, {0}}
	}
	full = [][]int{{0, 1}, {1, 0}}
	for i := 0; i < p-1; i++ {
		full[0] = append(full[0], 2+i)
		full[1] = append(full[1], 2+p-2-i)
	}
	return
}

// planarSet builds the closures of triangles and quads: one closure per edge
// and traversal direction, and the matching dihedral group of the whole face
func planarSet(tag shapes.Tag, _ utils.Matrix) (set Set, err error) {
	nv := tag.Shape.NumVertices()
	if tag.Order == 0 {
		set.Closures = order0(2*nv, shapes.Tag{Shape: shapes.Point})
		set.Full = order0(2*nv, tag)
		set.Ref = zeros(2 * nv)
		return
	}
	set.Closures = wrap(edgeClosures(tag.Order, nv), shapes.Tag{Shape: shapes.Line, Order: tag.Order})
	set.Full = wrap(planarFull(tag.Order, nv, tag.Serendipity), tag)
	set.Ref = zeros(2 * nv)
	return
}

// edgeClosures lists edge j forward at j and backward at nv+j
func edgeClosures(p, nv int) (cl [][]int) {
	cl = make([][]int, 2*nv)
	for j := 0; j < nv; j++ {
		cl[j] = []int{j, (j + 1) % nv}
		cl[nv+j] = []int{(j + 1) % nv, j}
		for i := 0; i < p-1; i++ {
			cl[j] = append(cl[j], nv+(p-1)*j+i)
			cl[nv+j] = append(cl[nv+j], nv+(p-1)*(j+1)-i-1)
		}
	}
	return
}

/*
planarFull returns the 2*nv symmetries of a triangle (nv=3) or quad (nv=4) of
order p. Closure r < nv rotates by r, closure nv+r reflects. Interior nodes
form a nested element of order p-3 (triangle) or p-2 (quad), closed layer by
layer; a serendipity element stops after the boundary layer.
*/
func planarFull(p, nv int, serendip bool) (full [][]int) {
	full = make([][]int, 2*nv)
	step := 2
	if nv == 3 {
		step = 3
	}
	shift := 0
	for q := p; q >= 0; q -= step {
		if q == 0 {
			for r := 0; r < 2*nv; r++ {
				full[r] = append(full[r], shift)
			}
			break
		}
		for r := 0; r < nv; r++ {
			for j := 0; j < nv; j++ {
				full[r] = append(full[r], shift+(r+j)%nv)
				full[r+nv] = append(full[r+nv], shift+(r-j+1+nv)%nv)
			}
		}
		shift += nv
		n := nv * (q - 1)
		for r := 0; r < nv; r++ {
			for j := 0; j < n; j++ {
				full[r] = append(full[r], shift+(j+(q-1)*r)%n)
				full[r+nv] = append(full[r+nv], shift+(n-j-1+(q-1)*(r+1))%n)
			}
		}
		shift += n
		if serendip {
			break
		}
	}
	return
}
