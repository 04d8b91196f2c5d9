package utils

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionMap(t *testing.T) {
	for _, tc := range [][2]int{{4, 10}, {3, 3}, {5, 2}, {1, 7}, {8, 64}} {
		pm := NewPartitionMap(tc[0], tc[1])
		var (
			next   int
			minLen = tc[1]
			maxLen int
		)
		for bn := 0; bn < pm.ParallelDegree; bn++ {
			kMin, kMax := pm.GetBucketRange(bn)
			assert.Equal(t, next, kMin, "buckets must be contiguous")
			next = kMax
			minLen = min(minLen, kMax-kMin)
			maxLen = max(maxLen, kMax-kMin)
		}
		assert.Equal(t, tc[1], next)
		assert.LessOrEqual(t, maxLen-minLen, 1)
	}
	// Never more buckets than items
	assert.Equal(t, 2, NewPartitionMap(5, 2).ParallelDegree)
}

func TestPartitionMapRun(t *testing.T) {
	pm := NewPartitionMap(4, 103)
	var sum int64
	seen := make([]int32, 103)
	pm.Run(func(bn, kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			atomic.AddInt32(&seen[k], 1)
			atomic.AddInt64(&sum, int64(k))
		}
	})
	for k, s := range seen {
		assert.Equal(t, int32(1), s, "index %d", k)
	}
	assert.Equal(t, int64(102*103/2), sum)
}

func TestMatrix(t *testing.T) {
	A := NewMatrix(2, 2, []float64{2, 1, 1, 3})
	Ainv, err := A.Inverse()
	require.NoError(t, err)
	I := A.Mul(Ainv)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if i == j {
				assert.InDelta(t, 1, I.At(i, j), 1.e-14)
			} else {
				assert.InDelta(t, 0, I.At(i, j), 1.e-14)
			}
		}
	}
	assert.Equal(t, []float64{1, 3}, A.Row(1))
	assert.Equal(t, []float64{1, 3}, A.Col(1))
	B := NewMatrixFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err = NewMatrix(2, 2, []float64{1, 2, 2, 4}).Inverse()
	assert.Error(t, err)
	_, err = B.Inverse()
	assert.Error(t, err)

	C := B.Copy()
	C.SetReadOnly("C")
	assert.Panics(t, func() { C.Set(0, 0, 1) })
	assert.NotPanics(t, func() { B.Set(0, 0, 10) })
	assert.Equal(t, 1., C.At(0, 0))
	assert.Panics(t, func() { NewMatrix(2, 2, []float64{1}) })
	r, c := NewMatrix(0, 0).Dims()
	assert.Zero(t, r+c)
}

func TestPOW(t *testing.T) {
	assert.Equal(t, 1., POW(3, 0))
	assert.Equal(t, 81., POW(3, 4))
	assert.InDelta(t, 1./8, POW(2, -3), 1.e-15)
	assert.InDelta(t, 1024., POW(2, 10), 1.e-12)
}
