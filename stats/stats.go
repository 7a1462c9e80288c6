// Package stats provides missing-value-tolerant column statistics over gonum
// matrices. Cells holding NaN are treated as absent and skipped, matching the
// nan-aware reductions the fuzzy pattern algorithms are defined in terms of.
// A column with no observed values reduces to NaN.
package stats

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ColMean returns the per-column mean of X, skipping NaN cells.
func ColMean(X mat.Matrix) []float64 {
	rows, cols := X.Dims()
	means := make([]float64, cols)
	for j := 0; j < cols; j++ {
		sum := 0.0
		count := 0
		for i := 0; i < rows; i++ {
			v := X.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			sum += v
			count++
		}
		if count == 0 {
			means[j] = math.NaN()
			continue
		}
		means[j] = sum / float64(count)
	}
	return means
}

// ColMin returns the per-column minimum of X, skipping NaN cells.
func ColMin(X mat.Matrix) []float64 {
	rows, cols := X.Dims()
	mins := make([]float64, cols)
	for j := 0; j < cols; j++ {
		min := math.NaN()
		for i := 0; i < rows; i++ {
			v := X.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(min) || v < min {
				min = v
			}
		}
		mins[j] = min
	}
	return mins
}

// ColMax returns the per-column maximum of X, skipping NaN cells.
func ColMax(X mat.Matrix) []float64 {
	rows, cols := X.Dims()
	maxs := make([]float64, cols)
	for j := 0; j < cols; j++ {
		max := math.NaN()
		for i := 0; i < rows; i++ {
			v := X.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(max) || v > max {
				max = v
			}
		}
		maxs[j] = max
	}
	return maxs
}

// ColStd returns the per-column population standard deviation of X, skipping
// NaN cells. This matches numpy's nanstd with zero delta degrees of freedom.
func ColStd(X mat.Matrix) []float64 {
	rows, cols := X.Dims()
	means := ColMean(X)
	stds := make([]float64, cols)
	for j := 0; j < cols; j++ {
		if math.IsNaN(means[j]) {
			stds[j] = math.NaN()
			continue
		}
		sum := 0.0
		count := 0
		for i := 0; i < rows; i++ {
			v := X.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			diff := v - means[j]
			sum += diff * diff
			count++
		}
		stds[j] = math.Sqrt(sum / float64(count))
	}
	return stds
}

// ColCount returns the number of non-NaN cells per column of X.
func ColCount(X mat.Matrix) []int {
	rows, cols := X.Dims()
	counts := make([]int, cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if !math.IsNaN(X.At(i, j)) {
				counts[j]++
			}
		}
	}
	return counts
}
