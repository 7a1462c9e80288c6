package fuzzy

import (
	"gonum.org/v1/gonum/mat"

	"github.com/fuzzyml/fuzzygo/pkg/errors"
	"github.com/fuzzyml/fuzzygo/stats"
)

// Fuzzify expands each column of X into three triangular membership degrees,
// anchored at the column minimum, mean and maximum. The result has three
// columns per input column, ordered (low, middle, high), and is useful as a
// soft discretization step in front of crisp learners.
func Fuzzify(X mat.Matrix) (*mat.Dense, error) {
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return nil, errors.NewModelError("fuzzy.Fuzzify", "empty input", errors.ErrEmptyData)
	}

	mins := stats.ColMin(X)
	maxs := stats.ColMax(X)
	means := stats.ColMean(X)

	out := mat.NewDense(rows, cols*3, nil)
	for j := 0; j < cols; j++ {
		width := maxs[j] - mins[j]
		low := NewTriangularSet(mins[j]-width, mins[j], maxs[j])
		middle := NewTriangularSet(mins[j], means[j], maxs[j])
		high := NewTriangularSet(mins[j], maxs[j], maxs[j]+width)

		for i := 0; i < rows; i++ {
			v := X.At(i, j)
			out.Set(i, j*3, low.Membership(v))
			out.Set(i, j*3+1, middle.Membership(v))
			out.Set(i, j*3+2, high.Membership(v))
		}
	}
	return out, nil
}
