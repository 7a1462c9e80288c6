package fuzzy

// Aggregation reduces a vector of membership degrees to one scalar.
// An empty vector aggregates to 0.
type Aggregation func(degrees []float64) float64

// Mean is the arithmetic-mean aggregation. It is the default operator for
// combining per-feature memberships into a prototype match score.
func Mean(degrees []float64) float64 {
	if len(degrees) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range degrees {
		sum += d
	}
	return sum / float64(len(degrees))
}

// Min is the minimum aggregation (the classical fuzzy AND).
func Min(degrees []float64) float64 {
	if len(degrees) == 0 {
		return 0
	}
	min := degrees[0]
	for _, d := range degrees[1:] {
		if d < min {
			min = d
		}
	}
	return min
}

// Max is the maximum aggregation (the classical fuzzy OR).
func Max(degrees []float64) float64 {
	if len(degrees) == 0 {
		return 0
	}
	max := degrees[0]
	for _, d := range degrees[1:] {
		if d > max {
			max = d
		}
	}
	return max
}

// Product is the product t-norm aggregation.
func Product(degrees []float64) float64 {
	if len(degrees) == 0 {
		return 0
	}
	prod := 1.0
	for _, d := range degrees {
		prod *= d
	}
	return prod
}

// OWA returns an ordered weighted averaging operator with the given weights.
// Degrees are sorted descending before the weighted sum is taken, so the
// first weight applies to the largest degree. Weights should sum to 1.
func OWA(weights []float64) Aggregation {
	w := make([]float64, len(weights))
	copy(w, weights)
	return func(degrees []float64) float64 {
		if len(degrees) == 0 {
			return 0
		}
		sorted := make([]float64, len(degrees))
		copy(sorted, degrees)
		// insertion sort descending; degree vectors are short
		for i := 1; i < len(sorted); i++ {
			for j := i; j > 0 && sorted[j] > sorted[j-1]; j-- {
				sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
			}
		}
		sum := 0.0
		for i, d := range sorted {
			if i >= len(w) {
				break
			}
			sum += w[i] * d
		}
		return sum
	}
}
