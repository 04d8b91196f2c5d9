package utils

import (
	"fmt"
	"math"
	"runtime"
)

const (
	// NODETOL is the largest squared distance accepted when two reference
	// nodes are matched geometrically
	NODETOL = 1.e-12
)

func POW(x float64, p int) (y float64) {
	switch {
	case p < 0:
		return 1. / POW(x, -p)
	case p > 8:
		return math.Pow(x, float64(p))
	}
	y = 1
	for ; p > 0; p-- {
		y *= x
	}
	return
}

func GetMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
}
