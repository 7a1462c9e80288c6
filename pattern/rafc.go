package pattern

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/fuzzyml/fuzzygo/core/model"
	"github.com/fuzzyml/fuzzygo/core/parallel"
	"github.com/fuzzyml/fuzzygo/fuzzy"
	"github.com/fuzzyml/fuzzygo/metrics"
	"github.com/fuzzyml/fuzzygo/pkg/errors"
	"github.com/fuzzyml/fuzzygo/pkg/log"
)

// RandomAgreementClassifier learns, per class, a population of fuzzy
// prototypes by repeatedly drawing two disjoint random sub-samples of the
// class rows and testing whether they agree on their per-feature means.
// When the nAgreeing-th best per-feature agreement score of a draw reaches
// epsilon, the draw is frozen: the top-agreeing features become triangular
// membership functions and the result is kept as one prototype.
//
// Prediction fuzzifies a row through every prototype's memberships,
// aggregates the degrees into one score per prototype, takes the best
// prototype per class and returns the arg-max class.
type RandomAgreementClassifier struct {
	state *model.StateManager

	// Hyperparameters
	nSamples     int               // rows per sub-sample (each trial draws 2*nSamples rows)
	sampleLength int               // number of agreement trials per class
	nAgreeing    int               // features per prototype; 0 means all features
	epsilon      float64           // minimum per-feature agreement to accept a trial
	aggregation  fuzzy.Aggregation // reduces per-feature degrees to one score
	factory      fuzzy.SetFactory  // builds membership functions from breakpoints
	randomState  int64             // seed; negative means nondeterministic

	// Learned state
	classes_   []float64
	protos_    [][]Prototype // class index -> prototype pool
	nFeatures_ int
	nAgreeing_ int // resolved nAgreeing used during fit
}

var (
	_ model.Classifier      = (*RandomAgreementClassifier)(nil)
	_ model.ParameterGetter = (*RandomAgreementClassifier)(nil)
	_ model.ParameterSetter = (*RandomAgreementClassifier)(nil)
)

// RandomAgreementOption is a functional option for RandomAgreementClassifier.
type RandomAgreementOption func(*RandomAgreementClassifier)

// NewRandomAgreementClassifier creates a classifier with the given options.
func NewRandomAgreementClassifier(opts ...RandomAgreementOption) *RandomAgreementClassifier {
	c := &RandomAgreementClassifier{
		state:        model.NewStateManager(),
		nSamples:     10,
		sampleLength: 100,
		nAgreeing:    5,
		epsilon:      0.8,
		aggregation:  fuzzy.Mean,
		factory:      fuzzy.NewTriangularSet,
		randomState:  -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithNSamples sets the sub-sample size. Each trial draws 2*n rows.
func WithNSamples(n int) RandomAgreementOption {
	return func(c *RandomAgreementClassifier) {
		c.nSamples = n
	}
}

// WithSampleLength sets the number of agreement trials per class.
func WithSampleLength(n int) RandomAgreementOption {
	return func(c *RandomAgreementClassifier) {
		c.sampleLength = n
	}
}

// WithNAgreeing sets how many top-agreeing features each prototype keeps.
// Zero means every feature must agree.
func WithNAgreeing(n int) RandomAgreementOption {
	return func(c *RandomAgreementClassifier) {
		c.nAgreeing = n
	}
}

// WithEpsilon sets the minimum per-feature agreement score for a trial to be
// accepted as a prototype.
func WithEpsilon(eps float64) RandomAgreementOption {
	return func(c *RandomAgreementClassifier) {
		c.epsilon = eps
	}
}

// WithAggregation sets the operator that combines per-feature membership
// degrees into one prototype score.
func WithAggregation(agg fuzzy.Aggregation) RandomAgreementOption {
	return func(c *RandomAgreementClassifier) {
		c.aggregation = agg
	}
}

// WithMembershipFactory sets the factory that freezes learned breakpoints
// into membership functions.
func WithMembershipFactory(factory fuzzy.SetFactory) RandomAgreementOption {
	return func(c *RandomAgreementClassifier) {
		c.factory = factory
	}
}

// WithRandomState sets the random seed. A fixed seed makes Fit reproducible;
// a negative seed draws a fresh one per Fit call.
func WithRandomState(seed int64) RandomAgreementOption {
	return func(c *RandomAgreementClassifier) {
		c.randomState = seed
	}
}

// Fit learns the per-class prototype pools from X and y. y must be a column
// vector with one numeric label per row of X; NaN labels are rejected.
// Every class must have at least 2*nSamples rows, otherwise disjoint
// sub-samples cannot be drawn and Fit fails before any sampling begins.
func (c *RandomAgreementClassifier) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "RandomAgreementClassifier.Fit")

	start := time.Now()
	logger := log.GetLoggerWithName("pattern.rafc")

	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()

	if nSamples == 0 || nFeatures == 0 {
		return errors.NewModelError("RandomAgreementClassifier.Fit", "empty data", errors.ErrEmptyData)
	}
	if yCols != 1 {
		return errors.NewDimensionError("RandomAgreementClassifier.Fit", 1, yCols, 1)
	}
	if yRows != nSamples {
		return errors.NewDimensionError("RandomAgreementClassifier.Fit", nSamples, yRows, 0)
	}
	if c.nSamples < 1 {
		return errors.NewValidationError("n_samples", "must be at least 1", c.nSamples)
	}
	if c.sampleLength < 1 {
		return errors.NewValidationError("sample_length", "must be at least 1", c.sampleLength)
	}
	if c.epsilon < 0 || c.epsilon > 1 {
		return errors.NewValidationError("epsilon", "must be in [0, 1]", c.epsilon)
	}

	classes, yIdx, err := extractClasses(y)
	if err != nil {
		return err
	}

	nAgreeing := c.nAgreeing
	if nAgreeing <= 0 {
		nAgreeing = nFeatures
	}
	if nAgreeing > nFeatures {
		return errors.NewValidationError("n_agreeing",
			"must be less than or equal to the number of features", c.nAgreeing)
	}

	// Group row indices by class and reject classes too small to split into
	// two disjoint sub-samples. Silent truncation would skew the agreement
	// statistic, so this is a hard error.
	classRows := make([][]int, len(classes))
	for i, ci := range yIdx {
		classRows[ci] = append(classRows[ci], i)
	}
	for ci, rows := range classRows {
		if len(rows) < 2*c.nSamples {
			return errors.NewValidationError("n_samples",
				fmt.Sprintf("class %g has %d rows but 2*n_samples=%d are required per trial",
					classes[ci], len(rows), 2*c.nSamples),
				c.nSamples)
		}
	}

	// One generator per Fit call keeps results reproducible for a fixed seed
	// and avoids sharing across concurrent fits of different models.
	seed := c.randomState
	if seed < 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	protos := make([][]Prototype, len(classes))
	for ci := range classes {
		pool, err := c.samplePrototypes(X, classRows[ci], nAgreeing, rng)
		if err != nil {
			return err
		}
		protos[ci] = pool
		logger.Debug("agreement trials finished",
			log.TrialsKey, c.sampleLength,
			"class", classes[ci],
			log.PrototypesKey, len(pool),
		)
	}

	c.classes_ = classes
	c.protos_ = protos
	c.nFeatures_ = nFeatures
	c.nAgreeing_ = nAgreeing
	c.state.SetDimensions(nFeatures, nSamples)
	c.state.SetFitted()

	logger.Info("fit complete",
		log.ModelNameKey, "RandomAgreementClassifier",
		log.OperationKey, "fit",
		log.SamplesKey, nSamples,
		log.FeaturesKey, nFeatures,
		log.ClassesKey, len(classes),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// samplePrototypes runs the per-class trial loop: draw, test, freeze.
func (c *RandomAgreementClassifier) samplePrototypes(X mat.Matrix, rows []int, nAgreeing int, rng *rand.Rand) ([]Prototype, error) {
	_, nFeatures := X.Dims()
	drawSize := 2 * c.nSamples

	var pool []Prototype
	sample := mat.NewDense(drawSize, nFeatures, nil)

	for trial := 0; trial < c.sampleLength; trial++ {
		perm := rng.Perm(len(rows))
		for i := 0; i < drawSize; i++ {
			src := rows[perm[i]]
			for j := 0; j < nFeatures; j++ {
				sample.Set(i, j, X.At(src, j))
			}
		}
		sample1 := sample.Slice(0, c.nSamples, 0, nFeatures)
		sample2 := sample.Slice(c.nSamples, drawSize, 0, nFeatures)

		_, scores, err := AgreementFuzzy(sample1, sample2)
		if err != nil {
			return nil, err
		}

		ranking := rankDescending(scores)[:nAgreeing]
		lastrank := scores[ranking[nAgreeing-1]]

		// The weakest retained feature must still clear the threshold,
		// otherwise the whole draw is discarded.
		if lastrank < c.epsilon {
			continue
		}

		proto, err := BuildMemberships(sample, ranking, c.factory)
		if err != nil {
			return nil, err
		}
		pool = append(pool, proto)
	}
	return pool, nil
}

// rankDescending returns feature indices ordered by descending score.
// Equal scores keep their index order, so the ranking is deterministic for a
// given draw.
func rankDescending(scores []float64) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	return idx
}

// extractClasses maps y to sorted unique class labels and per-row class
// indices. NaN labels are a fatal input error.
func extractClasses(y mat.Matrix) ([]float64, []int, error) {
	rows, _ := y.Dims()

	labels := make([]float64, rows)
	seen := make(map[float64]bool)
	for i := 0; i < rows; i++ {
		v := y.At(i, 0)
		if math.IsNaN(v) {
			return nil, nil, errors.NewValueError("RandomAgreementClassifier.Fit",
				"NaN is not supported in class labels")
		}
		labels[i] = v
		seen[v] = true
	}

	classes := make([]float64, 0, len(seen))
	for v := range seen {
		classes = append(classes, v)
	}
	sort.Float64s(classes)

	classIdx := make(map[float64]int, len(classes))
	for i, v := range classes {
		classIdx[v] = i
	}
	yIdx := make([]int, rows)
	for i, v := range labels {
		yIdx[i] = classIdx[v]
	}
	return classes, yIdx, nil
}

// Predict returns one class label per row of X as an n x 1 matrix. The model
// must be fitted first. A class whose pool ended up empty scores 0 for every
// row; it can still win a row on which all classes score 0, because the
// arg-max is stable on the first class index.
func (c *RandomAgreementClassifier) Predict(X mat.Matrix) (result mat.Matrix, err error) {
	defer errors.Recover(&err, "RandomAgreementClassifier.Predict")

	if err := c.state.RequireFitted("RandomAgreementClassifier", "Predict"); err != nil {
		return nil, err
	}

	rows, cols := X.Dims()
	if cols != c.nFeatures_ {
		return nil, errors.NewDimensionError("RandomAgreementClassifier.Predict", c.nFeatures_, cols, 1)
	}

	scores := c.classScores(X)

	out := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		best := 0
		for ci := 1; ci < len(c.classes_); ci++ {
			if scores[ci][i] > scores[best][i] {
				best = ci
			}
		}
		out.Set(i, 0, c.classes_[best])
	}
	return out, nil
}

// classScores computes the best-prototype score per class for every row of X.
// Classes are scored in parallel; the fitted state is read-only so no
// locking is needed.
func (c *RandomAgreementClassifier) classScores(X mat.Matrix) [][]float64 {
	rows, _ := X.Dims()

	scores := make([][]float64, len(c.classes_))
	parallel.Parallelize(len(c.classes_), func(start, end int) {
		for ci := start; ci < end; ci++ {
			best := make([]float64, rows)
			degrees := make([]float64, c.nAgreeing_)
			for _, proto := range c.protos_[ci] {
				for i := 0; i < rows; i++ {
					for k, fm := range proto {
						degrees[k] = fm.Set.Membership(X.At(i, fm.FeatureIndex))
					}
					if s := c.aggregation(degrees); s > best[i] {
						best[i] = s
					}
				}
			}
			scores[ci] = best
		}
	})
	return scores
}

// PredictOne classifies a single observation.
func (c *RandomAgreementClassifier) PredictOne(x []float64) (float64, error) {
	pred, err := c.Predict(mat.NewDense(1, len(x), x))
	if err != nil {
		return 0, err
	}
	return pred.At(0, 0), nil
}

// Score returns the accuracy of Predict(X) against y.
func (c *RandomAgreementClassifier) Score(X, y mat.Matrix) (float64, error) {
	pred, err := c.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyScore(y, pred)
}

// Classes returns the class labels seen during fitting, in score order.
func (c *RandomAgreementClassifier) Classes() []float64 {
	out := make([]float64, len(c.classes_))
	copy(out, c.classes_)
	return out
}

// Prototypes returns the prototype pool learned for the given class index.
func (c *RandomAgreementClassifier) Prototypes(classIdx int) []Prototype {
	if classIdx < 0 || classIdx >= len(c.protos_) {
		return nil
	}
	out := make([]Prototype, len(c.protos_[classIdx]))
	copy(out, c.protos_[classIdx])
	return out
}

// IsFitted returns whether Fit has completed successfully.
func (c *RandomAgreementClassifier) IsFitted() bool {
	return c.state.IsFitted()
}

// GetParams returns the hyperparameters.
func (c *RandomAgreementClassifier) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"n_samples":          c.nSamples,
		"sample_length":      c.sampleLength,
		"n_agreeing":         c.nAgreeing,
		"epsilon":            c.epsilon,
		"aggregation":        c.aggregation,
		"membership_factory": c.factory,
		"random_state":       c.randomState,
	}
}

// SetParams sets hyperparameters from a map. Unknown keys or wrong types are
// a ValidationError.
func (c *RandomAgreementClassifier) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "n_samples":
			v, ok := value.(int)
			if !ok {
				return errors.NewValidationError(key, "must be an int", value)
			}
			c.nSamples = v
		case "sample_length":
			v, ok := value.(int)
			if !ok {
				return errors.NewValidationError(key, "must be an int", value)
			}
			c.sampleLength = v
		case "n_agreeing":
			v, ok := value.(int)
			if !ok {
				return errors.NewValidationError(key, "must be an int", value)
			}
			c.nAgreeing = v
		case "epsilon":
			v, ok := value.(float64)
			if !ok {
				return errors.NewValidationError(key, "must be a float64", value)
			}
			c.epsilon = v
		case "aggregation":
			v, ok := value.(fuzzy.Aggregation)
			if !ok {
				return errors.NewValidationError(key, "must be a fuzzy.Aggregation", value)
			}
			c.aggregation = v
		case "membership_factory":
			v, ok := value.(fuzzy.SetFactory)
			if !ok {
				return errors.NewValidationError(key, "must be a fuzzy.SetFactory", value)
			}
			c.factory = v
		case "random_state":
			v, ok := value.(int64)
			if !ok {
				return errors.NewValidationError(key, "must be an int64", value)
			}
			c.randomState = v
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}
	return nil
}
