package utils

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced samples over [lo, hi], endpoints
// included. n == 1 returns just lo.
func Linspace(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Meshgrid flattens the tensor product of the x and y axes into parallel
// coordinate slices of length len(x)*len(y), y-major: the point (i, j)
// lands at index j*len(x)+i.
func Meshgrid(x, y []float64) (X, Y []float64) {
	X = make([]float64, len(x)*len(y))
	Y = make([]float64, len(x)*len(y))
	for j := range y {
		for i := range x {
			k := j*len(x) + i
			X[k] = x[i]
			Y[k] = y[j]
		}
	}
	return
}

// Percentile returns the p-th percentile (0..100) of data, ignoring NaN
// entries, with linear interpolation between order statistics. Returns
// NaN when no finite values are present.
func Percentile(data []float64, p float64) float64 {
	vals := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return math.NaN()
	}
	sort.Float64s(vals)
	if len(vals) == 1 {
		return vals[0]
	}
	pos := p / 100 * float64(len(vals)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return vals[lo]
	}
	frac := pos - float64(lo)
	return vals[lo]*(1-frac) + vals[hi]*frac
}

// MinMax returns the smallest and largest finite values in data, or
// (NaN, NaN) when there are none.
func MinMax(data []float64) (lo, hi float64) {
	lo, hi = math.NaN(), math.NaN()
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if math.IsNaN(lo) || v < lo {
			lo = v
		}
		if math.IsNaN(hi) || v > hi {
			hi = v
		}
	}
	return
}
