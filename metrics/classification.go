// Package metrics provides evaluation metrics for fuzzygo models.
package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/fuzzyml/fuzzygo/pkg/errors"
)

// AccuracyScore returns the fraction of rows where yPred equals yTrue.
// Both arguments are n x 1 matrices of class labels.
func AccuracyScore(yTrue, yPred mat.Matrix) (float64, error) {
	tRows, tCols := yTrue.Dims()
	pRows, pCols := yPred.Dims()

	if tRows == 0 {
		return 0, errors.NewModelError("metrics.AccuracyScore", "empty input", errors.ErrEmptyData)
	}
	if tCols != 1 || pCols != 1 {
		return 0, errors.NewValueError("metrics.AccuracyScore", "labels must be column vectors")
	}
	if tRows != pRows {
		return 0, errors.NewDimensionError("metrics.AccuracyScore", tRows, pRows, 0)
	}

	correct := 0
	for i := 0; i < tRows; i++ {
		if yTrue.At(i, 0) == yPred.At(i, 0) {
			correct++
		}
	}
	return float64(correct) / float64(tRows), nil
}

// ConfusionMatrix returns the confusion matrix for the given label order.
// Entry (i, j) counts rows whose true label is classes[i] and predicted
// label is classes[j]. Labels outside classes are an error.
func ConfusionMatrix(yTrue, yPred mat.Matrix, classes []float64) (*mat.Dense, error) {
	tRows, tCols := yTrue.Dims()
	pRows, pCols := yPred.Dims()

	if tCols != 1 || pCols != 1 {
		return nil, errors.NewValueError("metrics.ConfusionMatrix", "labels must be column vectors")
	}
	if tRows != pRows {
		return nil, errors.NewDimensionError("metrics.ConfusionMatrix", tRows, pRows, 0)
	}

	index := make(map[float64]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	cm := mat.NewDense(len(classes), len(classes), nil)
	for i := 0; i < tRows; i++ {
		ti, ok := index[yTrue.At(i, 0)]
		if !ok {
			return nil, errors.NewValueError("metrics.ConfusionMatrix", "true label not in classes")
		}
		pi, ok := index[yPred.At(i, 0)]
		if !ok {
			return nil, errors.NewValueError("metrics.ConfusionMatrix", "predicted label not in classes")
		}
		cm.Set(ti, pi, cm.At(ti, pi)+1)
	}
	return cm, nil
}
