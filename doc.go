// Package fuzzygo provides fuzzy pattern classification for Go with a
// scikit-learn style API over gonum matrices.
//
// The main entry point is pattern.RandomAgreementClassifier, which learns
// per-class populations of fuzzy prototypes from random agreement sampling
// and classifies by best prototype match:
//
//	clf := pattern.NewRandomAgreementClassifier(
//		pattern.WithNAgreeing(2),
//		pattern.WithRandomState(42),
//	)
//	if err := clf.Fit(X, y); err != nil {
//		log.Fatal(err)
//	}
//	pred, err := clf.Predict(XTest)
//
// Supporting packages:
//   - fuzzy: membership functions, set factories and aggregation operators
//   - stats: missing-value-tolerant column statistics
//   - preprocessing: feature scaling
//   - metrics: evaluation metrics
//   - core/model, pkg/errors, pkg/log: estimator state, structured errors
//     and structured logging shared by all models
package fuzzygo
