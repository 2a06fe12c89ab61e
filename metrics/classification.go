package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numerical/pkg/errors"
)

// Accuracy は正解率を計算する
//
// ラベルは値が完全に一致した場合に正解とみなす。
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkVectors("Accuracy", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var correct int
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// BinaryAccuracy は bool の予測と 0/1 ラベルの正解率を計算する
func BinaryAccuracy(yTrue mat.Vector, yPred []bool) (float64, error) {
	if yTrue == nil || yTrue.Len() == 0 {
		return 0, errors.NewValidationError("yTrue", "empty vector", 0)
	}
	n := yTrue.Len()
	if len(yPred) != n {
		return 0, errors.NewDimensionError("BinaryAccuracy", n, len(yPred), 0)
	}

	labels := mat.NewVecDense(n, nil)
	for i, p := range yPred {
		if p {
			labels.SetVec(i, 1)
		}
	}
	return Accuracy(mat.VecDenseCopyOf(yTrue), labels)
}
