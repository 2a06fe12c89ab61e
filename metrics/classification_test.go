package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{name: "all correct", yTrue: []float64{0, 0, 0, 1}, yPred: []float64{0, 0, 0, 1}, want: 1},
		{name: "three of four", yTrue: []float64{0, 0, 0, 1}, yPred: []float64{0, 1, 0, 1}, want: 0.75},
		{name: "none correct", yTrue: []float64{0, 0}, yPred: []float64{1, 1}, want: 0},
		{name: "empty", wantErr: true},
		{name: "length mismatch", yTrue: []float64{0, 1}, yPred: []float64{0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var yTrue, yPred *mat.VecDense
			if len(tt.yTrue) > 0 {
				yTrue = mat.NewVecDense(len(tt.yTrue), tt.yTrue)
			}
			if len(tt.yPred) > 0 {
				yPred = mat.NewVecDense(len(tt.yPred), tt.yPred)
			}

			got, err := Accuracy(yTrue, yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Accuracy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Accuracy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBinaryAccuracy(t *testing.T) {
	labels := mat.NewVecDense(4, []float64{0, 0, 0, 1})

	got, err := BinaryAccuracy(labels, []bool{false, false, false, true})
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("BinaryAccuracy() = %v, want 1", got)
	}

	got, err = BinaryAccuracy(labels, []bool{true, false, false, false})
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.5 {
		t.Errorf("BinaryAccuracy() = %v, want 0.5", got)
	}

	if _, err := BinaryAccuracy(labels, []bool{true}); err == nil {
		t.Error("expected length mismatch error")
	}
}
