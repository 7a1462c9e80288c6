// Package fuzzy provides the fuzzy-logic primitives used by the pattern
// classifiers: membership functions, set factories and aggregation operators.
package fuzzy

import (
	"fmt"
	"math"
)

// Set is a fuzzy membership function. Membership maps a crisp value to a
// degree of belonging in [0, 1].
type Set interface {
	Membership(x float64) float64
}

// SetFactory builds a Set from three breakpoints. It is the seam that lets a
// classifier freeze learned statistics into membership functions of any shape.
type SetFactory func(left, peak, right float64) Set

// TriangularSet is a triangular membership function defined by three
// breakpoints with Left <= Peak <= Right. Membership is 0 outside
// [Left, Right], 1 at Peak and linear in between. A zero-width set
// degenerates to a point indicator that is 1 only at the peak.
type TriangularSet struct {
	Left  float64
	Peak  float64
	Right float64
}

// NewTriangularSet constructs a TriangularSet. It is the default SetFactory.
func NewTriangularSet(left, peak, right float64) Set {
	return &TriangularSet{Left: left, Peak: peak, Right: right}
}

// Membership evaluates the triangular function at x.
func (t *TriangularSet) Membership(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	if x == t.Peak {
		return 1
	}
	if x <= t.Left || x >= t.Right {
		return 0
	}
	if x < t.Peak {
		return (x - t.Left) / (t.Peak - t.Left)
	}
	return (t.Right - x) / (t.Right - t.Peak)
}

// String returns a readable representation of the breakpoints.
func (t *TriangularSet) String() string {
	return fmt.Sprintf("TriangularSet(%g, %g, %g)", t.Left, t.Peak, t.Right)
}
