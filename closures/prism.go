package closures

import (
	"fmt"

	"github.com/notargets/nodalbasis/shapes"
	"github.com/notargets/nodalbasis/types"
	"github.com/notargets/nodalbasis/utils"
)

var (
	prismOrder1 = [5][4]int{{0, 2, 1, -1}, {3, 4, 5, -1}, {0, 1, 4, 3}, {0, 3, 5, 2}, {1, 2, 5, 4}}
	// edge midpoints along each face, then the quad face center
	prismOrder2 = [5][5]int{{7, 9, 6, -1, -1}, {12, 14, 13, -1, -1}, {6, 10, 12, 8, 15},
		{8, 13, 11, 7, 16}, {9, 11, 14, 10, 17}}
)

const prismSlots = 40

// prismIndex is the position of face closure (face, sign, rotate)
func prismIndex(face, sign, rotate int) int {
	signIdx := 0
	if sign < 0 {
		signIdx = 1
	}
	return face + 5*signIdx + 10*rotate
}

func prismSet(tag shapes.Tag, _ utils.Matrix) (set Set, err error) {
	p := tag.Order
	if p > 2 {
		return Set{}, fmt.Errorf("%w: %s", ErrUnsupportedOrder, tag)
	}
	if p == 0 {
		set.Closures = order0(prismSlots, shapes.Tag{Shape: shapes.Point})
		set.Full = order0(prismSlots, tag)
		set.Ref = zeros(prismSlots)
		return
	}
	set.Closures = make([]Closure, prismSlots)
	for rotate := 0; rotate < 4; rotate++ {
		for _, sign := range []int{1, -1} {
			for face := 0; face < 5; face++ {
				set.Closures[prismIndex(face, sign, rotate)] = prismFaceClosure(face, sign, rotate, p, tag.Serendipity)
			}
		}
	}
	var full [][]int
	if full, set.Ref, err = prismFull(p, tag.Serendipity); err != nil {
		return Set{}, err
	}
	set.Full = wrap(full, tag)
	return
}

// prismFaceClosure is empty for the fourth rotation of a triangular face
func prismFaceClosure(face, sign, rotate, p int, serendip bool) (cl Closure) {
	triangle := face < 2
	if triangle && rotate > 2 {
		return
	}
	nv := 4
	cl.Type = shapes.Tag{Shape: shapes.Quad, Order: p, Serendipity: serendip}.Canonical()
	if triangle {
		nv = 3
		cl.Type = shapes.Tag{Shape: shapes.Triangle, Order: p}
	}
	cl.Nodes = make([]int, nv, cl.Type.NumNodes())
	for i := 0; i < nv; i++ {
		cl.Nodes[i] = prismOrder1[face][(nv+sign*i+rotate)%nv]
	}
	if p == 2 {
		back := 0
		if sign < 0 {
			back = -1
		}
		for i := 0; i < nv; i++ {
			cl.Nodes = append(cl.Nodes, prismOrder2[face][(nv+back+sign*i+rotate)%nv])
		}
		if !triangle && !serendip {
			cl.Nodes = append(cl.Nodes, prismOrder2[face][4])
		}
	}
	return
}

/*
prismFull derives the whole element permutation of every non-empty face
closure. Each closure is read against a reference closure of its kind: the
first triangle, the first quad entered along a horizontal edge, or the first
quad entered along a vertical edge. The two vertices off the face follow from
the prism's layering.
*/
func prismFull(p int, serendip bool) (full [][]int, ref []int, err error) {
	full = make([][]int, prismSlots)
	ref = zeros(prismSlots)
	p1 := make([][]int, prismSlots)
	for rotate := 0; rotate < 4; rotate++ {
		for _, sign := range []int{1, -1} {
			for face := 0; face < 5; face++ {
				p1[prismIndex(face, sign, rotate)] = prismFaceClosure(face, sign, rotate, 1, false).Nodes
			}
		}
	}
	ref3, ref4a, ref4b := -1, -1, -1
	for i, cl := range p1 {
		if len(cl) == 0 {
			continue
		}
		r := &ref4a
		switch {
		case len(cl) == 3:
			r = &ref3
		case (cl[0]/3+cl[1]/3)%2 == 1:
			r = &ref4b
		}
		if *r == -1 {
			*r = i
		}
		ref[i] = *r
		clFull := []int{-1, -1, -1, -1, -1, -1}
		for j := range cl {
			clFull[p1[*r][j]] = cl[j]
		}
		for j := 0; j < 6; j++ {
			if clFull[j] == -1 {
				// the vertex opposite j's neighbours on the other triangle
				k := ((j / 3) + 1) % 2 * 3
				sum := clFull[k+(j+1)%3] + clFull[k+(j+2)%3]
				clFull[j] = ((sum/6+1)%2)*3 + (12-sum)%3
			}
		}
		full[i] = clFull
	}
	if p < 2 {
		return
	}
	if err = addEdgeNodes(full, shapes.Prism.Edges(), p); err != nil {
		return
	}
	if serendip {
		return
	}
	faces := shapes.Prism.Faces()
	faceOf := make(map[types.FaceKey]int, len(faces))
	for f, fv := range faces {
		faceOf[types.NewFaceKey(fv)] = f
	}
	for i, cl := range full {
		if len(cl) == 0 {
			continue
		}
		for _, fv := range faces {
			image := make([]int, len(fv))
			for k, v := range fv {
				image[k] = cl[v]
			}
			mapped, ok := faceOf[types.NewFaceKey(image)]
			if !ok {
				return nil, nil, fmt.Errorf("%w: prism face %v has no image", ErrInconsistent, fv)
			}
			if mapped > 1 { // quad faces carry a center node
				cl = append(cl, 15+mapped-2)
			}
		}
		full[i] = cl
	}
	return
}
