package closures

import (
	"fmt"

	"github.com/notargets/nodalbasis/shapes"
	"github.com/notargets/nodalbasis/types"
	"github.com/notargets/nodalbasis/utils"
)

const (
	pyramidSlots = 8
	pyramidBase  = 4 // face index of the quad base
)

/*
pyramidSet builds the 8 symmetries of a pyramid, those of its square base
with the apex fixed. Closures[i] lists the base face nodes as seen under
symmetry i, all against the unturned base.
*/
func pyramidSet(tag shapes.Tag, _ utils.Matrix) (set Set, err error) {
	p := tag.Order
	if p > 2 {
		return Set{}, fmt.Errorf("%w: %s", ErrUnsupportedOrder, tag)
	}
	baseTag := shapes.Tag{Shape: shapes.Quad, Order: p, Serendipity: tag.Serendipity}.Canonical()
	if p == 0 {
		set.Closures = order0(pyramidSlots, shapes.Tag{Shape: shapes.Point})
		set.Full = order0(pyramidSlots, tag)
		set.Ref = zeros(pyramidSlots)
		return
	}
	full := make([][]int, pyramidSlots)
	for r := 0; r < 4; r++ {
		rot, ref := make([]int, 5), make([]int, 5)
		for j := 0; j < 4; j++ {
			rot[j] = (r + j) % 4
			ref[j] = (r - j + 1 + 4) % 4
		}
		rot[4], ref[4] = 4, 4
		full[r], full[r+4] = rot, ref
	}
	if err = addEdgeNodes(full, shapes.Pyramid.Edges(), p); err != nil {
		return
	}
	base, center := pyramidBaseNodes(p, tag.Serendipity)
	if center >= 0 {
		for i := range full {
			full[i] = append(full[i], center)
		}
	}
	set.Closures = make([]Closure, pyramidSlots)
	for i, cl := range full {
		nodes := make([]int, len(base))
		for j, b := range base {
			nodes[j] = cl[b]
		}
		set.Closures[i] = newClosure(nodes, baseTag)
	}
	set.Full = wrap(full, tag)
	set.Ref = zeros(pyramidSlots)
	return
}

// pyramidBaseNodes lists the base face nodes in quad order: vertices, edge
// interiors along the face, then the face center, which is -1 when absent
func pyramidBaseNodes(p int, serendip bool) (nodes []int, center int) {
	var (
		face  = shapes.Pyramid.Faces()[pyramidBase]
		edges = shapes.Pyramid.Edges()
		index = make(map[types.EdgeKey]int, len(edges))
	)
	nodes = append(nodes, face...)
	for i, e := range edges {
		index[types.NewEdgeKey(e)] = i
	}
	for k := range face {
		along := types.NewEdgeInt([2]int{face[k], face[(k+1)%len(face)]})
		e := index[along.GetKey()]
		reversed := along.Reversed() != types.NewEdgeInt(edges[e]).Reversed()
		for i := 0; i < p-1; i++ {
			n := i
			if reversed {
				n = p - 2 - i
			}
			nodes = append(nodes, 5+e*(p-1)+n)
		}
	}
	center = -1
	if p == 2 && !serendip {
		center = 5 + 8*(p-1)
		nodes = append(nodes, center)
	}
	return
}
