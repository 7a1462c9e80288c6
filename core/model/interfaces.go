// Package model provides the common estimator plumbing shared by all
// fuzzygo models: fitted-state management and the interfaces that make
// estimators interchangeable.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter is the interface for models that learn from data.
type Fitter interface {
	// Fit trains the model on X (rows = samples, columns = features) and
	// labels y (a column vector with one row per sample).
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that produce predictions.
type Predictor interface {
	// Predict returns one prediction per row of X as an n x 1 matrix.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can evaluate themselves.
type Scorer interface {
	// Score computes an evaluation metric of the prediction against y.
	Score(X, y mat.Matrix) (float64, error)
}

// Classifier combines the interfaces a classification model satisfies.
type Classifier interface {
	Fitter
	Predictor
	Scorer

	// Classes returns the unique class labels seen during fitting, in the
	// order used internally for scoring.
	Classes() []float64
}

// TransformerMixin is the interface for feature transformers.
type TransformerMixin interface {
	// Transform applies the learned transformation to X.
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform fits the transformer and transforms X in one call.
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// ParameterGetter is the interface for models that expose hyperparameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}

// ParameterSetter is the interface for models with settable hyperparameters.
type ParameterSetter interface {
	// SetParams sets the model's hyperparameters. Unknown keys are an error.
	SetParams(params map[string]interface{}) error
}
