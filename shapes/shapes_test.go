package shapes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeTables(t *testing.T) {
	for _, s := range All() {
		assert.True(t, s.Valid())
		name := s.String()
		back, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, s, back)
		// Every edge and face references existing vertices, edges are distinct
		seen := make(map[[2]int]bool)
		for _, e := range s.Edges() {
			assert.Less(t, e[0], s.NumVertices())
			assert.Less(t, e[1], s.NumVertices())
			key := [2]int{min(e[0], e[1]), max(e[0], e[1])}
			assert.False(t, seen[key], "%s edge %v repeated", s, e)
			seen[key] = true
		}
		for i, f := range s.Faces() {
			for _, v := range f {
				assert.Less(t, v, s.NumVertices())
			}
			assert.Equal(t, len(f) == 3, s.FaceShape(i) == Triangle)
		}
	}
	// Euler characteristic of the 3D shapes: V - E + F = 2
	for _, s := range []Shape{Tet, Prism, Hex, Pyramid} {
		assert.Equal(t, 2, s.NumVertices()-s.NumEdges()+s.NumFaces(), s.String())
		assert.Equal(t, 3, s.Dimension())
	}
	assert.Equal(t, 0, Point.Dimension())
	assert.Equal(t, 1, Line.Dimension())
	assert.Equal(t, 2, Quad.Dimension())
	assert.True(t, Tet.Simplex())
	assert.False(t, Hex.Simplex())
	assert.Equal(t, "Shape(42)", Shape(42).String())
	_, err := Parse("Octagon")
	assert.True(t, errors.Is(err, ErrUnknownTag))

	// Copies are not shared with the tables
	e := Tet.Edges()
	e[0][0] = 99
	assert.Equal(t, 0, Tet.Edges()[0][0])
	f := Tet.Faces()
	f[0][0] = 99
	assert.Equal(t, 0, Tet.Faces()[0][0])
}

func TestTagNumNodes(t *testing.T) {
	for _, tc := range []struct {
		tag Tag
		n   int
	}{
		{Tag{Point, 0, false}, 1},
		{Tag{Line, 0, false}, 1},
		{Tag{Line, 4, false}, 5},
		{Tag{Triangle, 3, false}, 10},
		{Tag{Triangle, 3, true}, 9},
		{Tag{Quad, 2, true}, 8},
		{Tag{Quad, 3, false}, 16},
		{Tag{Tet, 2, false}, 10},
		{Tag{Tet, 4, false}, 35},
		{Tag{Tet, 4, true}, 34},
		{Tag{Prism, 2, false}, 18},
		{Tag{Prism, 2, true}, 15},
		{Tag{Hex, 2, false}, 27},
		{Tag{Hex, 2, true}, 20},
		{Tag{Pyramid, 2, false}, 14},
		{Tag{Pyramid, 2, true}, 13},
		{Tag{Pyramid, 1, false}, 5},
	} {
		assert.Equal(t, tc.n, tc.tag.NumNodes(), tc.tag.String())
	}
	// Every gmsh type agrees with the standard node count in its name
	gmshNodes := map[int]int{1: 2, 2: 3, 3: 4, 4: 4, 5: 8, 6: 6, 7: 5, 8: 3, 9: 6, 10: 9, 11: 10,
		12: 27, 13: 18, 14: 14, 15: 1, 16: 8, 17: 20, 18: 15, 19: 13, 20: 9, 21: 10, 22: 12,
		23: 15, 24: 15, 25: 21, 26: 4, 27: 5, 28: 6, 29: 20, 30: 35, 31: 56, 36: 16, 37: 25,
		38: 36, 92: 64, 93: 125}
	for et, n := range gmshNodes {
		tag, err := FromGmsh(et)
		require.NoError(t, err)
		assert.Equal(t, n, tag.NumNodes(), "gmsh type %d", et)
		back, ok := tag.GmshType()
		assert.True(t, ok)
		assert.Equal(t, et, back)
	}
	_, err := FromGmsh(1000)
	assert.True(t, errors.Is(err, ErrUnknownTag))
}

func TestTagEncode(t *testing.T) {
	for _, s := range All() {
		for order := 0; order < 6; order++ {
			if s == Point && order > 0 {
				continue
			}
			for _, serendip := range []bool{false, true} {
				tag, err := NewTag(s, order, serendip)
				require.NoError(t, err)
				back, err := Decode(tag.Encode())
				require.NoError(t, err)
				assert.Equal(t, tag, back)
			}
		}
	}
	_, err := NewTag(Line, -1, false)
	assert.True(t, errors.Is(err, ErrUnknownTag))
	_, err = NewTag(Point, 2, false)
	assert.True(t, errors.Is(err, ErrUnknownTag))
	_, err = Decode(int(numShapes) << 16)
	assert.True(t, errors.Is(err, ErrUnknownTag))
	_, err = Decode(-3)
	assert.Error(t, err)

	assert.Equal(t, Tag{Tet, 2, false}, Tag{Tet, 2, true}.Canonical())
	assert.Equal(t, Tag{Tet, 4, true}, Tag{Tet, 4, true}.Canonical())
	assert.Equal(t, "Quad2-serendipity", Tag{Quad, 2, true}.String())
	assert.Equal(t, "Hex3", Tag{Hex, 3, false}.String())
}
