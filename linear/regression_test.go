package linear

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numerical/pkg/errors"
)

func housingData() (x, y, theta *mat.Dense) {
	x = mat.NewDense(3, 2, []float64{
		1, 50,
		1, 60,
		1, 100,
	})
	y = mat.NewDense(3, 1, []float64{120, 150, 250})
	theta = mat.NewDense(1, 2, []float64{1, 1})
	return x, y, theta
}

func meanSquaredError(t *testing.T, theta, x, y *mat.Dense) float64 {
	t.Helper()
	n, _ := x.Dims()
	var sum float64
	for i := 0; i < n; i++ {
		pred, err := PredictLinear(theta, x.RowView(i).T())
		if err != nil {
			t.Fatalf("PredictLinear() error: %v", err)
		}
		d := pred - y.At(i, 0)
		sum += d * d
	}
	return sum / float64(n)
}

func TestLinearRegression_Converges(t *testing.T) {
	const (
		alpha  = 0.0001
		epochs = 1000
	)

	tests := []struct {
		name string
		fit  func(x, y, theta *mat.Dense) (*mat.Dense, error)
	}{
		{"batch", func(x, y, theta *mat.Dense) (*mat.Dense, error) {
			return BatchLinearRegression(x, y, theta, alpha, epochs)
		}},
		{"minibatch size 1", func(x, y, theta *mat.Dense) (*mat.Dense, error) {
			return MiniBatchLinearRegression(x, y, theta, alpha, epochs, 1)
		}},
		{"minibatch size 3", func(x, y, theta *mat.Dense) (*mat.Dense, error) {
			return MiniBatchLinearRegression(x, y, theta, alpha, epochs, 3)
		}},
		{"stochastic", func(x, y, theta *mat.Dense) (*mat.Dense, error) {
			return StochasticLinearRegression(x, y, theta, alpha, epochs)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, initial := housingData()
			theta, err := tt.fit(x, y, initial)
			if err != nil {
				t.Fatalf("fit error: %v", err)
			}
			if r, c := theta.Dims(); r != 1 || c != 2 {
				t.Fatalf("theta shape = %dx%d, want 1x2", r, c)
			}
			if mse := meanSquaredError(t, theta, x, y); mse >= 30 {
				t.Errorf("MSE = %v, want < 30", mse)
			}
		})
	}
}

func TestMiniBatchLinearRegression_FullBlockMatchesBatch(t *testing.T) {
	x, y, initial := housingData()
	n, _ := x.Dims()

	for _, epochs := range []int{1, 7, 250} {
		batch, err := BatchLinearRegression(x, y, initial, 0.0001, epochs)
		if err != nil {
			t.Fatalf("BatchLinearRegression() error: %v", err)
		}
		mini, err := MiniBatchLinearRegression(x, y, initial, 0.0001, epochs, n)
		if err != nil {
			t.Fatalf("MiniBatchLinearRegression() error: %v", err)
		}
		if !mat.Equal(batch, mini) {
			t.Errorf("epochs=%d: mini-batch with one block = %v, batch = %v",
				epochs, mat.Formatted(mini), mat.Formatted(batch))
		}
	}
}

func TestLinearRegression_Deterministic(t *testing.T) {
	x, y, initial := housingData()

	fits := map[string]func() (*mat.Dense, error){
		"batch": func() (*mat.Dense, error) {
			return BatchLinearRegression(mat.DenseCopyOf(x), mat.DenseCopyOf(y), mat.DenseCopyOf(initial), 0.0001, 100)
		},
		"minibatch": func() (*mat.Dense, error) {
			return MiniBatchLinearRegression(mat.DenseCopyOf(x), mat.DenseCopyOf(y), mat.DenseCopyOf(initial), 0.0001, 100, 1)
		},
		"stochastic": func() (*mat.Dense, error) {
			return StochasticLinearRegression(mat.DenseCopyOf(x), mat.DenseCopyOf(y), mat.DenseCopyOf(initial), 0.0001, 100)
		},
	}

	for name, fit := range fits {
		first, err := fit()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		second, err := fit()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !mat.Equal(first, second) {
			t.Errorf("%s: repeated fits differ: %v vs %v", name, mat.Formatted(first), mat.Formatted(second))
		}
	}
}

func TestLinearRegression_DoesNotModifyInputs(t *testing.T) {
	x, y, initial := housingData()
	xCopy, yCopy, thetaCopy := mat.DenseCopyOf(x), mat.DenseCopyOf(y), mat.DenseCopyOf(initial)

	if _, err := BatchLinearRegression(x, y, initial, 0.0001, 10); err != nil {
		t.Fatal(err)
	}
	if _, err := MiniBatchLinearRegression(x, y, initial, 0.0001, 10, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := StochasticLinearRegression(x, y, initial, 0.0001, 10); err != nil {
		t.Fatal(err)
	}

	if !mat.Equal(x, xCopy) || !mat.Equal(y, yCopy) || !mat.Equal(initial, thetaCopy) {
		t.Error("fit modified its inputs")
	}
}

func TestLinearRegression_ZeroEpochs(t *testing.T) {
	x, y, initial := housingData()

	theta, err := StochasticLinearRegression(x, y, initial, 0.0001, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !mat.Equal(theta, initial) {
		t.Errorf("zero epochs should return the initial theta, got %v", mat.Formatted(theta))
	}
	if theta == initial {
		t.Error("returned theta must be a fresh matrix")
	}
}

func TestStochasticLinearRegression_SingleStep(t *testing.T) {
	// One sample, one epoch: the second coordinate sees the first update.
	x := mat.NewDense(1, 2, []float64{1, 2})
	y := mat.NewDense(1, 1, []float64{3})
	initial := mat.NewDense(1, 2, []float64{0, 0})

	theta, err := StochasticLinearRegression(x, y, initial, 0.1, 1)
	if err != nil {
		t.Fatal(err)
	}

	// theta0 = 0 - 0.1*(0-3)*1 = 0.3
	// theta1 = 0 - 0.1*(0.3-3)*2 = 0.54
	want := []float64{0.3, 0.54}
	for j, w := range want {
		if got := theta.At(0, j); math.Abs(got-w) > 1e-12 {
			t.Errorf("theta[%d] = %v, want %v", j, got, w)
		}
	}
}

func TestLinearRegression_InvalidInputs(t *testing.T) {
	x, y, initial := housingData()

	tests := []struct {
		name   string
		fit    func() (*mat.Dense, error)
		target error
	}{
		{
			name: "row mismatch",
			fit: func() (*mat.Dense, error) {
				return BatchLinearRegression(x, mat.NewDense(2, 1, []float64{1, 2}), initial, 0.1, 1)
			},
			target: errors.ErrDimensionMismatch,
		},
		{
			name: "y not a column",
			fit: func() (*mat.Dense, error) {
				return BatchLinearRegression(x, mat.NewDense(3, 2, nil), initial, 0.1, 1)
			},
			target: errors.ErrDimensionMismatch,
		},
		{
			name: "theta width",
			fit: func() (*mat.Dense, error) {
				return StochasticLinearRegression(x, y, mat.NewDense(1, 3, nil), 0.1, 1)
			},
			target: errors.ErrDimensionMismatch,
		},
		{
			name: "negative epochs",
			fit: func() (*mat.Dense, error) {
				return BatchLinearRegression(x, y, initial, 0.1, -1)
			},
			target: errors.ErrInvalidArgument,
		},
		{
			name: "zero batch size",
			fit: func() (*mat.Dense, error) {
				return MiniBatchLinearRegression(x, y, initial, 0.1, 1, 0)
			},
			target: errors.ErrInvalidArgument,
		},
		{
			name: "batch size does not divide rows",
			fit: func() (*mat.Dense, error) {
				return MiniBatchLinearRegression(x, y, initial, 0.1, 1, 2)
			},
			target: errors.ErrIndexOutOfRange,
		},
		{
			name: "batch size larger than rows",
			fit: func() (*mat.Dense, error) {
				return MiniBatchLinearRegression(x, y, initial, 0.1, 1, 4)
			},
			target: errors.ErrIndexOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theta, err := tt.fit()
			if err == nil {
				t.Fatalf("expected error, got theta %v", mat.Formatted(theta))
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("error = %v, want category %v", err, tt.target)
			}
		})
	}
}

func TestMiniBatchLinearRegression_NonDivisibleIndex(t *testing.T) {
	x := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})
	y := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})
	initial := mat.NewDense(1, 1, []float64{0})

	_, err := MiniBatchLinearRegression(x, y, initial, 0.01, 1, 2)
	var idx *errors.IndexError
	if !errors.As(err, &idx) {
		t.Fatalf("expected *IndexError, got %v", err)
	}
	// The third block would start at row 4 and need row 5.
	if idx.Index != 5 || idx.Length != 5 || idx.Axis != 0 {
		t.Errorf("unexpected IndexError: %+v", idx)
	}
}

func TestPredictLinear(t *testing.T) {
	theta := mat.NewDense(1, 2, []float64{1, 2})

	got, err := PredictLinear(theta, mat.NewDense(1, 2, []float64{1, 50}))
	if err != nil {
		t.Fatal(err)
	}
	if got != 101 {
		t.Errorf("PredictLinear() = %v, want 101", got)
	}

	if _, err := PredictLinear(theta, mat.NewDense(1, 3, nil)); !errors.Is(err, errors.ErrDimensionMismatch) {
		t.Errorf("expected dimension mismatch, got %v", err)
	}
	if _, err := PredictLinear(theta, mat.NewDense(2, 2, nil)); !errors.Is(err, errors.ErrDimensionMismatch) {
		t.Errorf("expected dimension mismatch for multi-row sample, got %v", err)
	}
}
