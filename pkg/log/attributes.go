package log

// Standard attribute keys for model operations. Using these keys keeps log
// output consistent and filterable across packages.
const (
	// ModelNameKey identifies the model type, e.g. "RandomAgreementClassifier".
	ModelNameKey = "model.name"

	// ComponentKey identifies the package or component emitting the record.
	ComponentKey = "ml.component"

	// OperationKey names the operation: "fit", "predict", "transform", "score".
	OperationKey = "ml.operation"

	// SamplesKey is the number of rows in the data being processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of columns in the data being processed.
	FeaturesKey = "data.features"

	// ClassesKey is the number of classes seen during fitting.
	ClassesKey = "data.classes"

	// PrototypesKey is the number of prototypes retained by a fit.
	PrototypesKey = "model.prototypes"

	// TrialsKey is the number of agreement trials executed per class.
	TrialsKey = "training.trials"

	// DurationMsKey is the elapsed time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey is the accuracy produced by a score operation.
	AccuracyKey = "metrics.accuracy"
)
