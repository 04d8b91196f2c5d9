package closures

import (
	"fmt"

	"github.com/notargets/nodalbasis/shapes"
	"github.com/notargets/nodalbasis/utils"
)

// Signed 1-based edge numbers along the boundary of each tetrahedron face,
// negative when the face runs against the edge's direction
var (
	tetFaceEdges = [4][3]int{{-3, -2, -1}, {1, -6, 4}, {-4, 5, 3}, {6, 2, -5}}
	tetFaceVerts = [4][3]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {3, 1, 2}}
	// tetFullFaces spans the same vertex sets as tetFaceVerts, oriented the
	// way the triangle closure indices below expect
	tetFullFaces = [4][3]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {3, 2, 1}}
	// rotation r and reflection r+3 of a face map onto these triangle closures
	tetFaceOrientation = [6]int{0, 1, 2, 5, 3, 4}
)

// tetIndex is the position of face closure (face, sign, rotate)
func tetIndex(face, sign, rotate int) int {
	signIdx := 0
	if sign < 0 {
		signIdx = 1
	}
	return face + 4*signIdx + 8*rotate
}

func tetSet(tag shapes.Tag, _ utils.Matrix) (set Set, err error) {
	p := tag.Order
	if p == 0 {
		set.Closures = order0(24, shapes.Tag{Shape: shapes.Point})
		set.Full = order0(24, tag)
		set.Ref = zeros(24)
		return
	}
	set.Closures = wrap(tetFaceClosures(p), shapes.Tag{Shape: shapes.Triangle, Order: p})
	var full [][]int
	if full, err = tetFull(p, tag.Serendipity); err != nil {
		return
	}
	set.Full = wrap(full, tag)
	set.Ref = zeros(24)
	return
}

func tetFaceClosures(p int) (cls [][]int) {
	cls = make([][]int, 24)
	for rotate := 0; rotate < 3; rotate++ {
		for _, sign := range []int{1, -1} {
			for face := 0; face < 4; face++ {
				cls[tetIndex(face, sign, rotate)] = tetFaceClosure(face, sign, rotate, p)
			}
		}
	}
	return
}

// tetFaceClosure lists the nodes of one face seen with the given orientation:
// vertices, edge interiors, then the face interior layer by layer
func tetFaceClosure(face, sign, rotate, p int) (cl []int) {
	cl = make([]int, (p+1)*(p+2)/2)
	if p == 0 {
		return
	}
	for i := 0; i < 3; i++ {
		cl[i] = tetFaceVerts[face][(3+sign*i+rotate)%3]
	}
	for i := 0; i < 3; i++ {
		edge := sign * tetFaceEdges[face][(6+i*sign+(sign-1)/2+rotate)%3]
		for k := 0; k < p-1; k++ {
			if edge > 0 {
				cl[3+i*(p-1)+k] = 4 + (edge-1)*(p-1) + k
			} else {
				cl[3+i*(p-1)+k] = 4 + (-edge)*(p-1) - 1 - k
			}
		}
	}
	var (
		fi     = 3 + 3*(p-1)
		perFac = (p - 1) * (p - 2) / 2
		ti     = 4 + 6*(p-1) + face*perFac
	)
	for k := 0; k < p/3; k++ {
		q := p - 3 - 3*k
		if q == 0 {
			cl[fi] = ti
			fi++
			ti++
			continue
		}
		for c := 0; c < 3; c++ {
			cl[fi+c] = ti + (3+sign*c+rotate)%3
		}
		fi += 3
		ti += 3
		for l := 0; l < q-1; l++ {
			for e := 0; e < 3; e++ {
				edge := (6 + e*sign + (sign-1)/2 + rotate) % 3
				if sign > 0 {
					cl[fi+e*(q-1)+l] = ti + edge*(q-1) + l
				} else {
					cl[fi+e*(q-1)+l] = ti + (1+edge)*(q-1) - 1 - l
				}
			}
		}
		fi += 3 * (q - 1)
		ti += 3 * (q - 1)
	}
	return
}

/*
tetFull extends the 24 vertex permutations of the order 1 face closures to
every node of an order p tetrahedron: edge interiors by endpoint reversal,
face interiors through the triangle closures of order p-3, and the cell
interior through the closures of the order p-4 tetrahedron nested inside
*/
func tetFull(p int, serendip bool) (full [][]int, err error) {
	full = make([][]int, 24)
	if p == 0 {
		for i := range full {
			full[i] = []int{0}
		}
		return
	}
	p1 := tetFaceClosures(1)
	for i := range full {
		cl := []int{-1, -1, -1, -1}
		for j := range p1[i] {
			cl[p1[0][j]] = p1[i][j]
		}
		for j := 0; j < 4; j++ {
			if cl[j] == -1 { // vertex indices sum to 6
				cl[j] = 6 - cl[(j+1)%4] - cl[(j+2)%4] - cl[(j+3)%4]
			}
		}
		full[i] = cl
	}
	if err = addEdgeNodes(full, shapes.Tet.Edges(), p); err != nil {
		return
	}
	if p >= 3 {
		nodes2Faces := make(map[[3]int]int)
		for f, fv := range tetFullFaces {
			for r := 0; r < 3; r++ {
				n0, n1, n2 := fv[(3-r)%3], fv[(4-r)%3], fv[(5-r)%3]
				nodes2Faces[[3]int{n0, n1, n2}] = 6*f + r
				nodes2Faces[[3]int{n0, n2, n1}] = 6*f + r + 3
			}
		}
		tri := planarFull(p-3, 3, false)
		for i, cl := range full {
			for _, fv := range tetFullFaces {
				id, ok := nodes2Faces[[3]int{cl[fv[0]], cl[fv[1]], cl[fv[2]]}]
				if !ok {
					return nil, fmt.Errorf("%w: tetrahedron face %v has no image", ErrInconsistent, fv)
				}
				triCl := tri[tetFaceOrientation[id%6]]
				for _, n := range triCl {
					cl = append(cl, 4+6*(p-1)+(id/6)*len(triCl)+n)
				}
			}
			full[i] = cl
		}
	}
	if p >= 4 && !serendip {
		var inside [][]int
		if inside, err = tetFull(p-4, false); err != nil {
			return
		}
		for i, cl := range full {
			shift := len(cl)
			for _, n := range inside[i] {
				cl = append(cl, n+shift)
			}
			full[i] = cl
		}
	}
	return
}
