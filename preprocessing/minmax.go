// Package preprocessing provides feature scaling transformers.
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/fuzzyml/fuzzygo/core/model"
	"github.com/fuzzyml/fuzzygo/pkg/errors"
	"github.com/fuzzyml/fuzzygo/stats"
)

// MinMaxScaler rescales each feature column to a target range, by default
// [0, 1]. NaN cells are ignored when fitting the column minima and maxima
// and pass through Transform unchanged, which keeps the scaler usable in
// front of missing-value-tolerant models.
type MinMaxScaler struct {
	state *model.StateManager

	// FeatureRange is the target interval [min, max].
	FeatureRange [2]float64

	// DataMin and DataMax are the per-column extrema seen during fitting.
	DataMin []float64
	DataMax []float64
}

var _ model.TransformerMixin = (*MinMaxScaler)(nil)

// NewMinMaxScaler creates a scaler targeting the given range.
func NewMinMaxScaler(featureRange [2]float64) *MinMaxScaler {
	return &MinMaxScaler{
		state:        model.NewStateManager(),
		FeatureRange: featureRange,
	}
}

// NewMinMaxScalerDefault creates a scaler targeting [0, 1].
func NewMinMaxScalerDefault() *MinMaxScaler {
	return NewMinMaxScaler([2]float64{0, 1})
}

// Fit learns the per-column minima and maxima of X.
func (m *MinMaxScaler) Fit(X mat.Matrix) error {
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return errors.NewModelError("MinMaxScaler.Fit", "empty data", errors.ErrEmptyData)
	}
	if m.FeatureRange[0] >= m.FeatureRange[1] {
		return errors.NewValidationError("feature_range", "min must be less than max", m.FeatureRange)
	}

	m.DataMin = stats.ColMin(X)
	m.DataMax = stats.ColMax(X)
	m.state.SetDimensions(cols, rows)
	m.state.SetFitted()
	return nil
}

// Transform rescales X into the target range using the fitted extrema.
// A constant column maps to the range minimum.
func (m *MinMaxScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if err := m.state.RequireFitted("MinMaxScaler", "Transform"); err != nil {
		return nil, err
	}

	rows, cols := X.Dims()
	nFeatures, _ := m.state.Dimensions()
	if cols != nFeatures {
		return nil, errors.NewDimensionError("MinMaxScaler.Transform", nFeatures, cols, 1)
	}

	lo, hi := m.FeatureRange[0], m.FeatureRange[1]
	out := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		span := m.DataMax[j] - m.DataMin[j]
		for i := 0; i < rows; i++ {
			v := X.At(i, j)
			if math.IsNaN(v) {
				out.Set(i, j, v)
				continue
			}
			scaled := errors.SafeDivide(v-m.DataMin[j], span)
			out.Set(i, j, lo+scaled*(hi-lo))
		}
	}
	return out, nil
}

// FitTransform fits the scaler on X and transforms it in one call.
func (m *MinMaxScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := m.Fit(X); err != nil {
		return nil, err
	}
	return m.Transform(X)
}

// InverseTransform maps scaled data back to the original feature space.
func (m *MinMaxScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := m.state.RequireFitted("MinMaxScaler", "InverseTransform"); err != nil {
		return nil, err
	}

	rows, cols := X.Dims()
	nFeatures, _ := m.state.Dimensions()
	if cols != nFeatures {
		return nil, errors.NewDimensionError("MinMaxScaler.InverseTransform", nFeatures, cols, 1)
	}

	lo, hi := m.FeatureRange[0], m.FeatureRange[1]
	out := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		span := m.DataMax[j] - m.DataMin[j]
		for i := 0; i < rows; i++ {
			v := X.At(i, j)
			if math.IsNaN(v) {
				out.Set(i, j, v)
				continue
			}
			unit := errors.SafeDivide(v-lo, hi-lo)
			out.Set(i, j, m.DataMin[j]+unit*span)
		}
	}
	return out, nil
}

// GetParams returns the scaler's parameters.
func (m *MinMaxScaler) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"feature_range": m.FeatureRange,
	}
}
