package points

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/nodalbasis/shapes"
)

func maxOrder(s shapes.Shape) int {
	switch s {
	case shapes.Point:
		return 0
	case shapes.Prism, shapes.Pyramid:
		return 2
	}
	return 5
}

func TestGenerateCountsAndBounds(t *testing.T) {
	for _, s := range shapes.All() {
		for p := 0; p <= maxOrder(s); p++ {
			for _, serendip := range []bool{false, true} {
				tag := shapes.Tag{Shape: s, Order: p, Serendipity: serendip}
				R, err := Generate(tag)
				require.NoError(t, err, tag.String())
				nr, nc := R.Dims()
				assert.Equal(t, tag.NumNodes(), nr, tag.String())
				assert.Equal(t, Columns(s), nc)
				assert.True(t, R.IsReadOnly())
				// Vertices come first
				if p > 0 {
					for i, v := range Vertices(s) {
						assert.Equal(t, v, R.Row(i), "%s vertex %d", tag, i)
					}
				}
				// Nodes are distinct
				seen := make(map[[3]float64]bool)
				for i := 0; i < nr; i++ {
					var key [3]float64
					copy(key[:], R.Row(i))
					assert.False(t, seen[key], "%s node %d repeated", tag, i)
					seen[key] = true
				}
				// Nodes lie inside the element
				for i := 0; i < nr; i++ {
					x := R.Row(i)
					switch s {
					case shapes.Triangle, shapes.Tet:
						sum := 0.
						for _, c := range x {
							assert.GreaterOrEqual(t, c, 0.)
							sum += c
						}
						assert.LessOrEqual(t, sum, 1+1.e-14)
					case shapes.Line, shapes.Quad, shapes.Hex:
						for _, c := range x {
							assert.LessOrEqual(t, c*c, 1.)
						}
					}
				}
			}
		}
	}
	_, err := Generate(shapes.Tag{Shape: shapes.Prism, Order: 3})
	assert.True(t, errors.Is(err, ErrUnsupportedOrder))
	_, err = Generate(shapes.Tag{Shape: shapes.Line, Order: -1})
	assert.True(t, errors.Is(err, shapes.ErrUnknownTag))
}

func TestGenerateLayout(t *testing.T) {
	// Line order 3: vertices then interior from -1 to 1
	R, err := Generate(shapes.Tag{Shape: shapes.Line, Order: 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 1, -1. / 3, 1. / 3}, R.Col(0))

	// Triangle order 3: edges run 0->1, 1->2, 2->0, then the centroid
	R, err = Generate(shapes.Tag{Shape: shapes.Triangle, Order: 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1. / 3, 0}, R.Row(3), 1.e-15)
	assert.InDeltaSlice(t, []float64{2. / 3, 1. / 3}, R.Row(5), 1.e-15)
	assert.InDeltaSlice(t, []float64{0, 2. / 3}, R.Row(7), 1.e-15)
	assert.InDeltaSlice(t, []float64{1. / 3, 1. / 3}, R.Row(9), 1.e-15)

	// Tet order 4: the first face interior node sits next to the face's first vertex
	R, err = Generate(shapes.Tag{Shape: shapes.Tet, Order: 4})
	require.NoError(t, err)
	first := 4 + 6*3
	assert.InDeltaSlice(t, []float64{0.25, 0.25, 0}, R.Row(first), 1.e-15)
	assert.InDeltaSlice(t, []float64{0.25, 0.5, 0}, R.Row(first+1), 1.e-15) // next to vertex 2
	assert.InDeltaSlice(t, []float64{0.25, 0.25, 0.25}, R.Row(34), 1.e-15)

	// Prism order 2: quad face centers close the list
	R, err = Generate(shapes.Tag{Shape: shapes.Prism, Order: 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0, 0}, R.Row(15))
	assert.Equal(t, []float64{0, 0.5, 0}, R.Row(16))
	assert.Equal(t, []float64{0.5, 0.5, 0}, R.Row(17))

	// Pyramid order 2: base center last
	R, err = Generate(shapes.Tag{Shape: shapes.Pyramid, Order: 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, R.Row(13))
}

func TestTensorNodesExactlySymmetric(t *testing.T) {
	for _, s := range []shapes.Shape{shapes.Quad, shapes.Hex} {
		for p := 1; p <= 4; p++ {
			R, err := Generate(shapes.Tag{Shape: s, Order: p})
			require.NoError(t, err)
			nr, nc := R.Dims()
			index := make(map[[3]float64]bool)
			for i := 0; i < nr; i++ {
				var key [3]float64
				copy(key[:], R.Row(i))
				index[key] = true
			}
			for i := 0; i < nr; i++ {
				for d := 0; d < nc; d++ {
					var mirror [3]float64
					copy(mirror[:], R.Row(i))
					mirror[d] = -mirror[d]
					assert.True(t, index[mirror], "%s%d node %d mirror along %d", s, p, i, d)
				}
			}
		}
	}
}

func TestSimplexVertices(t *testing.T) {
	assert.Equal(t, [][]int64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, SimplexVertices(shapes.Tet))
	assert.Equal(t, [][]int64{{-1}, {1}}, SimplexVertices(shapes.Line))
	assert.Panics(t, func() { SimplexVertices(shapes.Hex) })
}
