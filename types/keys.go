package types

import (
	"fmt"
	"math"
	"sort"
)

/*
EdgeKey is an always positive number that stores an edge's vertices as indices in a way that can be compared
An edge between vertices [4] and [0] will always be stored as [0,4], in the ascending order of the index values
*/
type EdgeKey uint64

func NewEdgeKey(verts [2]int) (packed EdgeKey) {
	for _, vert := range verts {
		if vert < 0 || vert > math.MaxUint32 {
			panic(fmt.Errorf("unable to pack two ints into a uint64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	i1, i2 := verts[0], verts[1]
	if i1 > i2 {
		i1, i2 = i2, i1
	}
	packed = EdgeKey(uint64(i1) + uint64(i2)<<32)
	return
}

func (ek EdgeKey) GetVertices(rev bool) (verts [2]int) {
	verts[1] = int(ek >> 32)
	verts[0] = int(ek & math.MaxUint32)
	if rev {
		verts[0], verts[1] = verts[1], verts[0]
	}
	return
}

/*
EdgeInt stores the edge vertices in the original order of the vertices, so that it can be recovered with it's direction.
A negative value means the edge runs from the larger to the smaller vertex index.
*/
type EdgeInt int64

func NewEdgeInt(verts [2]int) (packed EdgeInt) {
	limit := math.MaxUint32 >> 1 // leaves room for the sign bit of an int64
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(fmt.Errorf("unable to pack two ints into an int64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	packed = EdgeInt(NewEdgeKey(verts))
	if verts[0] > verts[1] {
		packed = -packed
	}
	return
}

func (e EdgeInt) GetVertices() (verts [2]int) {
	verts = e.GetKey().GetVertices(e < 0)
	return
}

func (e EdgeInt) GetKey() EdgeKey {
	if e < 0 {
		return EdgeKey(-e)
	}
	return EdgeKey(e)
}

// Reversed reports whether the edge runs against the ascending vertex order
func (e EdgeInt) Reversed() bool { return e < 0 }

/*
FaceKey identifies a face by its vertex set regardless of orientation: up to four vertex indices below 1<<16,
sorted ascending and packed 16 bits each, with unused slots holding 0xFFFF
*/
type FaceKey uint64

func NewFaceKey(verts []int) (packed FaceKey) {
	if len(verts) < 3 || len(verts) > 4 {
		panic(fmt.Errorf("a face has 3 or 4 vertices, have %d", len(verts)))
	}
	sorted := make([]int, 4)
	for i := range sorted {
		sorted[i] = math.MaxUint16
	}
	for i, v := range verts {
		if v < 0 || v >= math.MaxUint16 {
			panic(fmt.Errorf("face vertex index %d out of range", v))
		}
		sorted[i] = v
	}
	sort.Ints(sorted)
	for i, v := range sorted {
		packed |= FaceKey(v) << (16 * i)
	}
	return
}

func (fk FaceKey) GetVertices() (verts []int) {
	for i := 0; i < 4; i++ {
		v := int((fk >> (16 * i)) & math.MaxUint16)
		if v != math.MaxUint16 {
			verts = append(verts, v)
		}
	}
	return
}
