package closures

import (
	"fmt"
	"math"

	"github.com/notargets/nodalbasis/points"
	"github.com/notargets/nodalbasis/shapes"
	"github.com/notargets/nodalbasis/utils"
)

const hexSlots = 48

// hexIndex is the position of closure (face, sign, rotate)
func hexIndex(face, sign, rotate int) int {
	signIdx := 0
	if sign < 0 {
		signIdx = 1
	}
	return face + 6*signIdx + 12*rotate
}

// rotateHex places face coordinates (u,v), turned and possibly mirrored, on
// one of the six faces of the [-1,1]^3 cube
func rotateHex(face, rotate, sign int, u, v float64) (x, y, z float64) {
	if sign < 0 {
		u, v = v, u
	}
	for i := 0; i < rotate; i++ {
		u, v = -v, u
	}
	switch face {
	case 0:
		x, y, z = v, u, -1
	case 1:
		x, y, z = u, -1, v
	case 2:
		x, y, z = -1, v, u
	case 3:
		x, y, z = 1, u, v
	case 4:
		x, y, z = -u, 1, v
	case 5:
		x, y, z = u, v, 1
	}
	return
}

// rotateHexFull applies one of the 48 cube symmetries: an axis permutation
// picked by face, a quarter turn about z repeated rotate times, and a swap of
// x and y for negative sign
func rotateHexFull(face, rotate, sign int, u, v, w float64) (x, y, z float64) {
	switch face {
	case 0:
		x, y, z = u, v, w
	case 1:
		x, y, z = w, u, v
	case 2:
		x, y, z = v, w, u
	case 3:
		x, y, z = w, v, -u
	case 4:
		x, y, z = w, -u, -v
	case 5:
		x, y, z = v, u, -w
	}
	for i := 0; i < rotate; i++ {
		x, y = -y, x
	}
	if sign < 0 {
		x, y = y, x
	}
	return
}

// nearest returns the node of pts closest to (x,y,z) and its squared distance
func nearest(pts utils.Matrix, x, y, z float64) (J int, D float64) {
	nr, _ := pts.Dims()
	D = math.MaxFloat64
	for j := 0; j < nr; j++ {
		d := utils.POW(pts.At(j, 0)-x, 2) + utils.POW(pts.At(j, 1)-y, 2) + utils.POW(pts.At(j, 2)-z, 2)
		if d < D {
			J, D = j, d
		}
	}
	return
}

func hexSet(tag shapes.Tag, pts utils.Matrix) (set Set, err error) {
	if tag.Order == 0 {
		set.Closures = order0(hexSlots, shapes.Tag{Shape: shapes.Point})
		set.Full = order0(hexSlots, tag)
		set.Ref = zeros(hexSlots)
		return
	}
	var (
		faceTag = shapes.Tag{Shape: shapes.Quad, Order: tag.Order, Serendipity: tag.Serendipity}.Canonical()
		cls     [][]int
		full    [][]int
		maxD    float64
	)
	if cls, full, maxD, err = hexClosures(tag, pts); err != nil {
		return
	}
	if maxD > utils.NODETOL {
		return Set{}, fmt.Errorf("%w: %s node matched at squared distance %g", ErrGeometricMismatch, tag, maxD)
	}
	set.Closures = wrap(cls, faceTag)
	set.Full = wrap(full, tag)
	set.Ref = zeros(hexSlots)
	return
}

/*
hexClosures matches turned and mirrored nodes to their nearest reference node.
Face closures carry the quad nodes of the face onto the cube, full closures
carry every node of the cube onto another. maxD is the largest squared
distance of any match.
*/
func hexClosures(tag shapes.Tag, pts utils.Matrix) (cls, full [][]int, maxD float64, err error) {
	nr, nc := pts.Dims()
	if nr != tag.NumNodes() || nc != 3 {
		err = fmt.Errorf("%w: %s needs %d nodes of 3 coordinates, have %dx%d",
			ErrGeometricMismatch, tag, tag.NumNodes(), nr, nc)
		return
	}
	var quad utils.Matrix
	if quad, err = points.Generate(shapes.Tag{Shape: shapes.Quad, Order: tag.Order,
		Serendipity: tag.Serendipity}); err != nil {
		return
	}
	nq, _ := quad.Dims()
	cls = make([][]int, hexSlots)
	full = make([][]int, hexSlots)
	for rotate := 0; rotate < 4; rotate++ {
		for _, sign := range []int{1, -1} {
			for face := 0; face < 6; face++ {
				cl := make([]int, nq)
				for i := 0; i < nq; i++ {
					x, y, z := rotateHex(face, rotate, sign, quad.At(i, 0), quad.At(i, 1))
					var d float64
					cl[i], d = nearest(pts, x, y, z)
					maxD = math.Max(maxD, d)
				}
				clFull := make([]int, nr)
				for i := range clFull {
					clFull[i] = -1
				}
				for i := 0; i < nr; i++ {
					x, y, z := rotateHexFull(face, rotate, sign, pts.At(i, 0), pts.At(i, 1), pts.At(i, 2))
					J, d := nearest(pts, x, y, z)
					clFull[J] = i
					maxD = math.Max(maxD, d)
				}
				idx := hexIndex(face, sign, rotate)
				cls[idx], full[idx] = cl, clFull
			}
		}
	}
	return
}
