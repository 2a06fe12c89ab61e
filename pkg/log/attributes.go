// Package log defines standard attribute keys for numerical operations.
//
// Keys follow a hierarchical naming convention ("model.name",
// "data.samples") so records from different engines can be filtered the
// same way.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the estimator or engine.
	// Examples: "LinearRegression", "LogisticRegression", "Convolve"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "convolve", "gradient"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear", "conv", "gradient"
	ComponentKey = "ml.component"

	// StrategyKey names the update granularity of a fit.
	// Values: "batch", "minibatch", "stochastic"
	StrategyKey = "ml.strategy"
)

// Data Shape
const (
	// SamplesKey is the number of rows in the design matrix.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of columns in the design matrix.
	FeaturesKey = "data.features"

	// BatchSizeKey is the mini-batch size.
	BatchSizeKey = "data.batch_size"

	// ChannelsKey is the number of kernel/channel pairs in a convolution.
	ChannelsKey = "data.channels"

	// ShapeKey is an "RxC" rendering of a matrix shape.
	ShapeKey = "data.shape"
)

// Training and Performance
const (
	// LearningRateKey records alpha.
	LearningRateKey = "hyperparams.learning_rate"

	// EpochKey records the number of epochs.
	EpochKey = "training.epoch"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records a loss value (MSE for regression).
	LossKey = "metrics.loss"

	// AccuracyKey records classification accuracy in [0, 1].
	AccuracyKey = "metrics.accuracy"
)

// Error Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"
)

// Standard attribute values.
const (
	OperationFit      = "fit"
	OperationPredict  = "predict"
	OperationConvolve = "convolve"
	OperationGradient = "gradient"

	StrategyBatch      = "batch"
	StrategyMiniBatch  = "minibatch"
	StrategyStochastic = "stochastic"

	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorInvalidArgument   = "INVALID_ARGUMENT"
	ErrorIndexOutOfRange   = "INDEX_OUT_OF_RANGE"
)
