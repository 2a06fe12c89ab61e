package model

import (
	"github.com/YuminosukeSato/numerical/pkg/errors"
)

// BaseEstimator は全てのモデルの基底となる構造体
//
// モデル名と学習状態を保持し、未学習時のエラーを統一する。
type BaseEstimator struct {
	name  string
	State *StateManager
}

// NewBaseEstimator は名前付きの BaseEstimator を作成する
func NewBaseEstimator(name string) BaseEstimator {
	return BaseEstimator{name: name, State: NewStateManager()}
}

// Name はモデル名を返す
func (e *BaseEstimator) Name() string {
	return e.name
}

// IsFitted はモデルが学習済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.State.IsFitted()
}

// RequireFitted は未学習の場合に NotFittedError を返す
func (e *BaseEstimator) RequireFitted(method string) error {
	if !e.State.IsFitted() {
		return errors.NewNotFittedError(e.name, method)
	}
	return nil
}

// Reset はモデルを初期状態にリセットする
func (e *BaseEstimator) Reset() {
	e.State.Reset()
}
