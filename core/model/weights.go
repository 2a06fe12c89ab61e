package model

import (
	"encoding/json"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numerical/pkg/errors"
)

// WeightsVersion は ThetaWeights のフォーマットバージョン
const WeightsVersion = "1.0.0"

// ThetaWeights は学習済み theta を表す構造体（シリアライゼーション用）
type ThetaWeights struct {
	// ModelType はモデルの種類（LinearRegression, LogisticRegression）
	ModelType string `json:"model_type"`

	// Version はフォーマットのバージョン（互換性チェック用）
	Version string `json:"version"`

	// Theta は 1×k のパラメータ行
	Theta []float64 `json:"theta"`

	// Hyperparameters は学習時のハイパーパラメータ
	Hyperparameters map[string]interface{} `json:"hyperparameters"`

	// Metadata は追加のメタデータ（学習時の統計等）
	Metadata map[string]interface{} `json:"metadata,omitempty"`

	// IsFitted はモデルが学習済みかどうか
	IsFitted bool `json:"is_fitted"`
}

// NewThetaWeights は theta の行をコピーして ThetaWeights を作成する
func NewThetaWeights(modelType string, theta mat.Matrix) *ThetaWeights {
	_, k := theta.Dims()
	values := make([]float64, k)
	for j := 0; j < k; j++ {
		values[j] = theta.At(0, j)
	}
	return &ThetaWeights{
		ModelType:       modelType,
		Version:         WeightsVersion,
		Theta:           values,
		Hyperparameters: make(map[string]interface{}),
		Metadata:        make(map[string]interface{}),
		IsFitted:        true,
	}
}

// ToJSON はThetaWeightsをJSON形式にシリアライズ
func (w *ThetaWeights) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode weights")
	}
	return data, nil
}

// FromJSON はJSON形式からThetaWeightsをデシリアライズ
func (w *ThetaWeights) FromJSON(data []byte) error {
	if err := json.Unmarshal(data, w); err != nil {
		return errors.Wrap(err, "failed to decode weights")
	}
	return nil
}

// Validate はThetaWeightsの妥当性を検証
func (w *ThetaWeights) Validate() error {
	if w.ModelType == "" {
		return errors.NewValidationError("model_type", "is required", w.ModelType)
	}
	if w.Version == "" {
		return errors.NewValidationError("version", "is required", w.Version)
	}
	if !w.IsFitted && len(w.Theta) > 0 {
		return errors.NewValidationError("theta", "unfitted model should not have theta", len(w.Theta))
	}
	if w.IsFitted && len(w.Theta) == 0 {
		return errors.NewValidationError("theta", "fitted model must have theta", 0)
	}
	return nil
}

// Matrix は theta を 1×k の行列として返す
func (w *ThetaWeights) Matrix() (*mat.Dense, error) {
	if len(w.Theta) == 0 {
		return nil, errors.NewValidationError("theta", "must not be empty", 0)
	}
	data := make([]float64, len(w.Theta))
	copy(data, w.Theta)
	return mat.NewDense(1, len(data), data), nil
}

// Clone はThetaWeightsのディープコピーを作成
func (w *ThetaWeights) Clone() *ThetaWeights {
	clone := &ThetaWeights{
		ModelType:       w.ModelType,
		Version:         w.Version,
		IsFitted:        w.IsFitted,
		Theta:           make([]float64, len(w.Theta)),
		Hyperparameters: make(map[string]interface{}),
		Metadata:        make(map[string]interface{}),
	}

	copy(clone.Theta, w.Theta)

	for k, v := range w.Hyperparameters {
		clone.Hyperparameters[k] = v
	}

	for k, v := range w.Metadata {
		clone.Metadata[k] = v
	}

	return clone
}
