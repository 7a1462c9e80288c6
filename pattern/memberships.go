package pattern

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/fuzzyml/fuzzygo/fuzzy"
	"github.com/fuzzyml/fuzzygo/pkg/errors"
	"github.com/fuzzyml/fuzzygo/stats"
)

// FeatureMembership binds one feature column to the membership function
// learned for it.
type FeatureMembership struct {
	FeatureIndex int
	Set          fuzzy.Set
}

// Prototype is an ordered sequence of feature memberships frozen from one
// accepted agreement trial. It is immutable after fit.
type Prototype []FeatureMembership

// BuildMemberships freezes the requested feature columns of X into membership
// functions. Each selected feature gets a symmetric set centered at the
// column mean with half-width equal to half the column range, so for the
// default triangular factory: (mean - range/2, mean, mean + range/2).
// A constant column collapses to a zero-width set, a point indicator at the
// mean. NaN cells are skipped by the column statistics.
func BuildMemberships(X mat.Matrix, idxs []int, factory fuzzy.SetFactory) (Prototype, error) {
	_, cols := X.Dims()

	mins := stats.ColMin(X)
	maxs := stats.ColMax(X)
	means := stats.ColMean(X)

	proto := make(Prototype, 0, len(idxs))
	for _, i := range idxs {
		if i < 0 || i >= cols {
			return nil, errors.NewValueError("pattern.BuildMemberships",
				fmt.Sprintf("feature index %d out of range [0, %d)", i, cols))
		}
		halfWidth := (maxs[i] - mins[i]) / 2
		proto = append(proto, FeatureMembership{
			FeatureIndex: i,
			Set:          factory(means[i]-halfWidth, means[i], means[i]+halfWidth),
		})
	}
	return proto, nil
}
