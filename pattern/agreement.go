// Package pattern implements fuzzy pattern classifiers: models that freeze
// per-feature statistics of a class into fuzzy membership functions and
// classify by degree of match against the learned prototypes.
package pattern

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/fuzzyml/fuzzygo/pkg/errors"
	"github.com/fuzzyml/fuzzygo/stats"
)

// AgreementFuzzy measures how closely two samples agree on their per-feature
// means. It returns an overall agreement scalar, 1 - sqrt(mean(d)) where
// d_i is the squared difference of the column means, and the per-feature
// score vector 1 - d. Identical column means score exactly 1; the score is
// unbounded below when means diverge by more than 1.
//
// The per-feature vector, not the scalar, drives feature selection in the
// random agreement classifier. The function is pure and deterministic;
// NaN cells are skipped by the column means.
func AgreementFuzzy(a, b mat.Matrix) (float64, []float64, error) {
	_, aCols := a.Dims()
	_, bCols := b.Dims()
	if aCols != bCols {
		return 0, nil, errors.NewDimensionError("pattern.AgreementFuzzy", aCols, bCols, 1)
	}
	if aCols == 0 {
		return 0, nil, errors.NewModelError("pattern.AgreementFuzzy", "empty input", errors.ErrEmptyData)
	}

	meansA := stats.ColMean(a)
	meansB := stats.ColMean(b)

	scores := make([]float64, aCols)
	sum := 0.0
	for j := 0; j < aCols; j++ {
		diff := meansA[j] - meansB[j]
		d := diff * diff
		scores[j] = 1 - d
		sum += d
	}
	agreement := 1 - math.Sqrt(sum/float64(aCols))

	return agreement, scores, nil
}

// AgreementTTest is an alternative agreement statistic based on a two-sided
// one-sample t-test of b's columns against a's column means. It returns one
// boolean per feature, true where the p-value falls below alpha.
func AgreementTTest(a, b mat.Matrix, alpha float64) ([]bool, error) {
	bRows, bCols := b.Dims()
	_, aCols := a.Dims()
	if aCols != bCols {
		return nil, errors.NewDimensionError("pattern.AgreementTTest", aCols, bCols, 1)
	}
	if bRows < 2 {
		return nil, errors.NewValueError("pattern.AgreementTTest", "t-test requires at least 2 rows in the second sample")
	}

	meansA := stats.ColMean(a)
	meansB := stats.ColMean(b)
	counts := stats.ColCount(b)

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(bRows - 1)}
	agree := make([]bool, bCols)
	for j := 0; j < bCols; j++ {
		n := counts[j]
		if n < 2 {
			continue
		}
		// sample standard deviation with one delta degree of freedom
		sum := 0.0
		for i := 0; i < bRows; i++ {
			v := b.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			diff := v - meansB[j]
			sum += diff * diff
		}
		sd := math.Sqrt(sum / float64(n-1))

		var p float64
		if sd == 0 {
			if meansB[j] == meansA[j] {
				p = 1
			}
			// divergent constant column: p stays 0
		} else {
			t := (meansB[j] - meansA[j]) / (sd / math.Sqrt(float64(n)))
			p = 2 * dist.Survival(math.Abs(t))
		}
		agree[j] = p < alpha
	}
	return agree, nil
}
