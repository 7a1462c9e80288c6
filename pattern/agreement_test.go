package pattern

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	fuzzyerrors "github.com/fuzzyml/fuzzygo/pkg/errors"
)

func TestAgreementFuzzy_SelfAgreement(t *testing.T) {
	A := mat.NewDense(3, 4, []float64{
		0.1, 0.2, 0.3, 0.4,
		0.5, 0.6, 0.7, 0.8,
		0.9, 1.0, 1.1, 1.2,
	})

	agreement, scores, err := AgreementFuzzy(A, A)
	require.NoError(t, err)

	// A sample agrees with itself perfectly on every feature.
	assert.Equal(t, 1.0, agreement)
	for j, s := range scores {
		assert.Equalf(t, 1.0, s, "feature %d", j)
	}
}

func TestAgreementFuzzy_KnownValues(t *testing.T) {
	A := mat.NewDense(2, 2, []float64{
		1.0, 2.0,
		1.0, 2.0,
	})
	B := mat.NewDense(2, 2, []float64{
		1.0, 2.0,
		1.0, 3.0,
	})

	// column means: A = (1, 2), B = (1, 2.5); d = (0, 0.25)
	agreement, scores, err := AgreementFuzzy(A, B)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, scores[0], 1e-12)
	assert.InDelta(t, 0.75, scores[1], 1e-12)
	assert.InDelta(t, 1.0-math.Sqrt(0.125), agreement, 1e-12)
}

func TestAgreementFuzzy_IgnoresMissing(t *testing.T) {
	nan := math.NaN()
	A := mat.NewDense(3, 1, []float64{1, nan, 3})
	B := mat.NewDense(3, 1, []float64{2, 2, nan})

	// observed means are both 2
	_, scores, err := AgreementFuzzy(A, B)
	require.NoError(t, err)
	assert.Equal(t, 1.0, scores[0])
}

func TestAgreementFuzzy_DimensionMismatch(t *testing.T) {
	A := mat.NewDense(2, 3, nil)
	B := mat.NewDense(2, 2, nil)

	_, _, err := AgreementFuzzy(A, B)
	require.Error(t, err)

	var dimErr *fuzzyerrors.DimensionError
	assert.True(t, fuzzyerrors.As(err, &dimErr))
}

func TestAgreementTTest(t *testing.T) {
	A := mat.NewDense(4, 2, []float64{
		0.0, 1.0,
		0.0, 2.0,
		0.0, 3.0,
		0.0, 4.0,
	})
	B := mat.NewDense(4, 2, []float64{
		10.0, 1.0,
		10.1, 2.0,
		9.9, 3.0,
		10.0, 4.0,
	})

	// feature 0: B's mean is 10 against A's 0 with tiny spread, p ~ 0.
	// feature 1: identical means, t = 0, p = 1.
	agree, err := AgreementTTest(A, B, 0.05)
	require.NoError(t, err)

	assert.True(t, agree[0])
	assert.False(t, agree[1])
}

func TestAgreementTTest_TooFewRows(t *testing.T) {
	A := mat.NewDense(1, 2, []float64{0, 0})
	B := mat.NewDense(1, 2, []float64{1, 1})

	_, err := AgreementTTest(A, B, 0.05)
	assert.Error(t, err)
}
