package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Fit",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "numerical: Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "ExportWeights",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "numerical: ExportWeights: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("BatchLinearRegression", 3, 2, 0)

	want := "numerical: BatchLinearRegression: dimension mismatch on axis 0 (rows). Expected 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
	if !Is(err, ErrDimensionMismatch) {
		t.Error("Expected Is(err, ErrDimensionMismatch) to be true")
	}
	if Is(err, ErrInvalidArgument) || Is(err, ErrIndexOutOfRange) {
		t.Error("DimensionError must not match other categories")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("miniBatchSize", "must be positive", 0)

	want := "numerical: validation failed for parameter 'miniBatchSize': must be positive (got: 0)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
	if !Is(err, ErrInvalidArgument) {
		t.Error("Expected Is(err, ErrInvalidArgument) to be true")
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Fatal("Error should be castable to *ValidationError")
	}
	if valErr.ParamName != "miniBatchSize" {
		t.Errorf("ParamName = %q, want miniBatchSize", valErr.ParamName)
	}
}

func TestNewIndexError(t *testing.T) {
	err := NewIndexError("matrix.Rows", 4, 3, 0)

	want := "numerical: matrix.Rows: index 4 out of range on axis 0 (rows) with length 3"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
	if !Is(err, ErrIndexOutOfRange) {
		t.Error("Expected Is(err, ErrIndexOutOfRange) to be true")
	}
	if Is(err, ErrDimensionMismatch) {
		t.Error("IndexError must not match ErrDimensionMismatch")
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("LinearRegression", "ExportWeights")

	want := "numerical: LinearRegression: this model is not fitted yet. Call Fit() before using ExportWeights()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestWrapKeepsCategory(t *testing.T) {
	base := NewValidationError("epochs", "must be non-negative", -1)
	wrapped := Wrapf(base, "in %s", "StochasticLinearRegression")

	if !Is(wrapped, ErrInvalidArgument) {
		t.Error("Expected wrapped error to still match ErrInvalidArgument")
	}
	if !strings.Contains(wrapped.Error(), "in StochasticLinearRegression") {
		t.Errorf("Expected wrapped message, got %q", wrapped.Error())
	}
}

func TestWarnRoutesToZerologFunc(t *testing.T) {
	var got []error
	SetZerologWarnFunc(func(w error) { got = append(got, w) })
	defer SetZerologWarnFunc(nil)

	Warn(NewDivergenceWarning("BatchLogisticRegression", 10, 5))

	if len(got) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(got))
	}
	want := "BatchLogisticRegression diverged after 10 epochs with alpha=5. Consider a smaller learning rate."
	if got[0].Error() != want {
		t.Errorf("warning = %q, want %q", got[0].Error(), want)
	}
}

type grid [][]float64

func (g grid) At(i, j int) float64 { return g[i][j] }
func (g grid) Dims() (int, int)     { return len(g), len(g[0]) }

func TestWarnIfDiverged(t *testing.T) {
	var count int
	SetZerologWarnFunc(func(error) { count++ })
	defer SetZerologWarnFunc(nil)

	WarnIfDiverged("finite", grid{{1, 2}}, 1, 0.1)
	if count != 0 {
		t.Fatalf("finite theta must not warn, got %d warnings", count)
	}

	WarnIfDiverged("infinite", grid{{1, math.Inf(1)}}, 1, 0.1)
	if count != 1 {
		t.Fatalf("expected one warning for non-finite theta, got %d", count)
	}
}
