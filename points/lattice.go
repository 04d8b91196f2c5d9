package points

import "github.com/notargets/nodalbasis/shapes"

// Lattices hold integer node coordinates in [0,q]; scale maps them onto the
// reference element. Every generator lists the nodes in gmsh order.

// unitVertices returns vertex coordinates mapped onto {0,1}
func unitVertices(s shapes.Shape) (uv [][]int) {
	for _, v := range vertexCoords[s] {
		iv := make([]int, len(v))
		for d, c := range v {
			if s.Simplex() && s != shapes.Line {
				iv[d] = int(c)
			} else {
				iv[d] = int(c+1) / 2
			}
		}
		uv = append(uv, iv)
	}
	return
}

// boundaryLattice lists the vertices followed by the edge interiors, each edge
// running from its first to its second vertex
func boundaryLattice(s shapes.Shape, q int) (rows [][]int) {
	uv := unitVertices(s)
	for _, v := range uv {
		rows = append(rows, axpy(q, v, 0, nil, 0, nil))
	}
	for _, e := range s.Edges() {
		va, vb := uv[e[0]], uv[e[1]]
		for i := 1; i < q; i++ {
			rows = append(rows, axpy(q, va, i, diff(vb, va), 0, nil))
		}
	}
	return
}

// faceLattice embeds a sub lattice, shifted off the face boundary by one, on
// the face spanned from v0 along v1-v0 and v2-v0
func faceLattice(q int, v0, v1, v2 []int, sub [][]int) (rows [][]int) {
	du, dv := diff(v1, v0), diff(v2, v0)
	for _, ab := range sub {
		rows = append(rows, axpy(q, v0, ab[0]+1, du, ab[1]+1, dv))
	}
	return
}

// faces appends the face interiors of a 3D shape
func faces(s shapes.Shape, q int, rows [][]int, sub func(face shapes.Shape) [][]int) [][]int {
	uv := unitVertices(s)
	for i, f := range s.Faces() {
		rows = append(rows, faceLattice(q, uv[f[0]], uv[f[1]], uv[f[len(f)-1]], sub(s.FaceShape(i)))...)
	}
	return rows
}

func shift(sub [][]int) (rows [][]int) {
	for _, l := range sub {
		r := make([]int, len(l))
		for d, c := range l {
			r[d] = c + 1
		}
		rows = append(rows, r)
	}
	return
}

func lineLattice(q int) (rows [][]int) {
	if q == 0 {
		return [][]int{{0}}
	}
	return boundaryLattice(shapes.Line, q)
}

func triLattice(q int, serendip bool) (rows [][]int) {
	if q == 0 {
		return [][]int{{0, 0}}
	}
	rows = boundaryLattice(shapes.Triangle, q)
	if !serendip && q >= 3 {
		rows = append(rows, shift(triLattice(q-3, false))...)
	}
	return
}

func quadLattice(q int, serendip bool) (rows [][]int) {
	if q == 0 {
		return [][]int{{0, 0}}
	}
	rows = boundaryLattice(shapes.Quad, q)
	if !serendip && q >= 2 {
		rows = append(rows, shift(quadLattice(q-2, false))...)
	}
	return
}

// tetLattice keeps the face interiors of a serendipity element and drops only
// the cell interior
func tetLattice(q int, serendip bool) (rows [][]int) {
	if q == 0 {
		return [][]int{{0, 0, 0}}
	}
	rows = boundaryLattice(shapes.Tet, q)
	if q >= 3 {
		rows = faces(shapes.Tet, q, rows, func(shapes.Shape) [][]int { return triLattice(q-3, false) })
	}
	if !serendip && q >= 4 {
		rows = append(rows, shift(tetLattice(q-4, false))...)
	}
	return
}

func hexLattice(q int, serendip bool) (rows [][]int) {
	if q == 0 {
		return [][]int{{0, 0, 0}}
	}
	rows = boundaryLattice(shapes.Hex, q)
	if !serendip && q >= 2 {
		rows = faces(shapes.Hex, q, rows, func(shapes.Shape) [][]int { return quadLattice(q-2, false) })
		rows = append(rows, shift(hexLattice(q-2, false))...)
	}
	return
}

// axpy returns q*v + a*da + b*db
func axpy(q int, v []int, a int, da []int, b int, db []int) (r []int) {
	r = make([]int, len(v))
	for d := range v {
		r[d] = q * v[d]
		if da != nil {
			r[d] += a * da[d]
		}
		if db != nil {
			r[d] += b * db[d]
		}
	}
	return
}

func diff(a, b []int) (d []int) {
	d = make([]int, len(a))
	for i := range a {
		d[i] = a[i] - b[i]
	}
	return
}
