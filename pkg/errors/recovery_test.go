package errors

import (
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// product multiplies a and b the way the fitting engines do, with the
// engines' recovery boundary.
func product(a, b *mat.Dense) (out *mat.Dense, err error) {
	defer Recover(&err, "linear.BatchLinearRegression")
	var c mat.Dense
	c.Mul(a, b)
	return &c, nil
}

func TestRecover_GonumShapePanic(t *testing.T) {
	a := mat.NewDense(1, 3, []float64{1, 2, 3})
	b := mat.NewDense(2, 1, []float64{4, 5})

	out, err := product(a, b)
	if out != nil {
		t.Errorf("expected nil result after a recovered panic, got %v", mat.Formatted(out))
	}

	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("expected *PanicError, got %T: %v", err, err)
	}
	if panicErr.Operation != "linear.BatchLinearRegression" {
		t.Errorf("Operation = %q", panicErr.Operation)
	}
	if !errors.Is(err, mat.ErrShape) {
		t.Errorf("expected mat.ErrShape in the chain, got %v", err)
	}
	if want := "panic in linear.BatchLinearRegression: " + mat.ErrShape.Error(); err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !strings.Contains(panicErr.String(), "Stack trace:") || panicErr.StackTrace == "" {
		t.Error("expected the stack trace to be captured")
	}
}

func TestRecover_NoPanic(t *testing.T) {
	a := mat.NewDense(1, 2, []float64{1, 2})
	b := mat.NewDense(2, 1, []float64{3, 4})

	out, err := product(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := out.At(0, 0); got != 11 {
		t.Errorf("product = %v, want 11", got)
	}
}

func TestRecover_KeepsReturnedError(t *testing.T) {
	cause := NewValidationError("epochs", "must be non-negative", -1)

	fit := func() (err error) {
		defer Recover(&err, "linear.StochasticLinearRegression")
		err = cause
		panic(mat.ErrRowAccess)
	}

	err := fit()
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected the returned error to stay in the chain, got %v", err)
	}
	if !strings.Contains(err.Error(), mat.ErrRowAccess.Error()) {
		t.Errorf("expected the panic value in the message, got %q", err.Error())
	}
}

func TestPanicError_Unwrap(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  error
	}{
		{"gonum error", mat.ErrShape, mat.ErrShape},
		{"index error", NewIndexError("matrix.Rows", 4, 3, 0), ErrIndexOutOfRange},
		{"string", "index out of range", nil},
		{"int", 7, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewPanicError("conv.Convolve", tt.value)
			if tt.want == nil {
				if err.Unwrap() != nil {
					t.Errorf("Unwrap() = %v, want nil", err.Unwrap())
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.want)
			}
		})
	}
}

func TestSafeExecute(t *testing.T) {
	returned := NewDimensionError("conv.Convolve", 3, 2, 0)
	if err := SafeExecute("conv.Convolve", func() error { return returned }); err != returned {
		t.Errorf("expected the returned error unchanged, got %v", err)
	}

	err := SafeExecute("conv.Convolve", func() error {
		mat.NewDense(2, 2, nil).RawRowView(2)
		return nil
	})
	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("expected *PanicError, got %T: %v", err, err)
	}
	if !errors.Is(err, mat.ErrRowAccess) {
		t.Errorf("expected mat.ErrRowAccess in the chain, got %v", err)
	}
}
