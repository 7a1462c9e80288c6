package fuzzy

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestFuzzify_Shape(t *testing.T) {
	// Column 0 has min 0, mean 2, max 4; column 1 has min 10, max 40.
	X := mat.NewDense(4, 2, []float64{
		0, 10,
		2, 20,
		4, 30,
		2, 40,
	})

	R, err := Fuzzify(X)
	if err != nil {
		t.Fatalf("Fuzzify failed: %v", err)
	}

	rows, cols := R.Dims()
	if rows != 4 || cols != 6 {
		t.Fatalf("Fuzzify output shape = (%d, %d), want (4, 6)", rows, cols)
	}

	// The column minimum peaks the low set, the maximum peaks the high set.
	if got := R.At(0, 0); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("low membership at column 0 min = %v, want 1", got)
	}
	if got := R.At(3, 5); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("high membership at column 1 max = %v, want 1", got)
	}

	// A row sitting exactly on the column mean peaks the middle set.
	if got := R.At(1, 1); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("middle membership at column 0 mean = %v, want 1", got)
	}

	// All degrees are valid membership values.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := R.At(i, j)
			if v < 0 || v > 1 {
				t.Errorf("degree at (%d, %d) = %v outside [0, 1]", i, j, v)
			}
		}
	}
}
