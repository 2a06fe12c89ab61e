// Package errors provides the error taxonomy and warning plumbing shared by
// every numerical package.
//
// Errors are created through constructors that attach a stack trace with
// cockroachdb/errors. Every structured error also matches one of the
// sentinels below through errors.Is, so callers can branch on the category
// (dimension, argument, index) without caring about the concrete type.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("numerical-warning: %v\n", w)
	}
	// set by pkg/log.Configure
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the handler used by Warn when no zerolog
// function has been registered.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc registers the structured warning sink.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn reports a non-fatal condition. The zerolog sink wins when registered.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warnings
//
// ===========================================================================

// DivergenceWarning is raised when a fit finishes with non-finite parameters.
// The fitted theta is still returned unchanged.
type DivergenceWarning struct {
	Algorithm string
	Epochs    int
	Alpha     float64
}

func (w *DivergenceWarning) Error() string {
	return fmt.Sprintf("%s diverged after %d epochs with alpha=%g. Consider a smaller learning rate.", w.Algorithm, w.Epochs, w.Alpha)
}

// MarshalZerologObject adds the warning fields to a zerolog event.
func (w *DivergenceWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("algorithm", w.Algorithm).
		Int("epochs", w.Epochs).
		Float64("alpha", w.Alpha).
		Str("type", "DivergenceWarning")
}

// NewDivergenceWarning creates a DivergenceWarning.
func NewDivergenceWarning(algorithm string, epochs int, alpha float64) *DivergenceWarning {
	return &DivergenceWarning{Algorithm: algorithm, Epochs: epochs, Alpha: alpha}
}

// ===========================================================================
//
//	Structured errors
//
// ===========================================================================

// NotFittedError is returned when an estimator is asked for its parameters
// before Fit has run.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("numerical: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError reports operand shapes that violate an operation's
// precondition.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("numerical: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName(e.Axis), e.Expected, e.Got)
}

// Is matches ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName(e.Axis)).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError reports malformed configuration such as a zero mini-batch
// size or a derivative list that does not match the variable list.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("numerical: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// Is matches ErrInvalidArgument.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// IndexError reports an access beyond a matrix bound, e.g. a row block that
// would run past the last sample.
type IndexError struct {
	Op     string
	Index  int
	Length int
	Axis   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("numerical: %s: index %d out of range on axis %d (%s) with length %d", e.Op, e.Index, e.Axis, axisName(e.Axis), e.Length)
}

// Is matches ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *IndexError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("index", e.Index).
		Int("length", e.Length).
		Int("axis", e.Axis).
		Str("type", "IndexError")
}

// NewIndexError creates an IndexError with a stack trace.
func NewIndexError(op string, index, length, axis int) error {
	err := &IndexError{Op: op, Index: index, Length: length, Axis: axis}
	return errors.WithStack(err)
}

// ModelError is a general estimator failure wrapping an underlying cause.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("numerical: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("numerical: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a ModelError with a stack trace.
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

func axisName(axis int) string {
	if axis == 0 {
		return "rows"
	}
	return "columns"
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates an error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to err.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Sentinels
//
// ===========================================================================

var (
	// ErrDimensionMismatch: input shapes are inconsistent with the operation.
	ErrDimensionMismatch = New("dimension mismatch")

	// ErrInvalidArgument: malformed configuration.
	ErrInvalidArgument = New("invalid argument")

	// ErrIndexOutOfRange: row or column access beyond matrix bounds.
	ErrIndexOutOfRange = New("index out of range")
)
